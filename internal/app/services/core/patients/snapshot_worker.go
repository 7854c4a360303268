package patients

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/pkg/constvars"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const snapshotLeaderLockTTL = 2 * time.Minute

// SnapshotWorker uploads the whole patient store on a cron schedule. When a
// locker is configured only the instance holding the leader lock uploads.
type SnapshotWorker struct {
	log       *zap.Logger
	spec      string
	repo      contracts.PatientRepository
	snapshots contracts.PatientSnapshotStorage
	locker    contracts.LockerService
	cron      *cron.Cron
	runCtx    context.Context
	cancel    context.CancelFunc
}

func NewSnapshotWorker(
	logger *zap.Logger,
	spec string,
	patientRepository contracts.PatientRepository,
	snapshotStorage contracts.PatientSnapshotStorage,
	lockerService contracts.LockerService,
) *SnapshotWorker {
	return &SnapshotWorker{
		log:       logger,
		spec:      spec,
		repo:      patientRepository,
		snapshots: snapshotStorage,
		locker:    lockerService,
	}
}

func (w *SnapshotWorker) Start(ctx context.Context) {
	w.runCtx, w.cancel = context.WithCancel(ctx)
	c := cron.New()
	_, err := c.AddFunc(w.spec, func() { w.RunOnce(w.runCtx) })
	if err != nil {
		w.log.Warn("SnapshotWorker.Start invalid cron spec, falling back to @hourly",
			zap.String(constvars.LoggingCronSpecKey, w.spec),
			zap.Error(err),
		)
		c = cron.New()
		_, _ = c.AddFunc("@hourly", func() { w.RunOnce(w.runCtx) })
	}
	c.Start()
	w.cron = c
	w.log.Info("SnapshotWorker.Start scheduled", zap.String(constvars.LoggingCronSpecKey, w.spec))
}

// Stop cancels the run context and waits for a running upload to return.
func (w *SnapshotWorker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	if w.cron != nil {
		<-w.cron.Stop().Done()
	}
}

func (w *SnapshotWorker) RunOnce(ctx context.Context) {
	if w.locker != nil {
		acquired, token, err := w.locker.TryLock(ctx, constvars.RedisKeySnapshotLeaderLock, snapshotLeaderLockTTL)
		if err != nil {
			w.log.Warn("SnapshotWorker.RunOnce leader lock attempt failed", zap.Error(err))
			return
		}
		if !acquired {
			w.log.Info("SnapshotWorker.RunOnce leader lock held by another instance")
			return
		}
		defer func() {
			err := w.locker.Unlock(context.WithoutCancel(ctx), constvars.RedisKeySnapshotLeaderLock, token)
			if err != nil {
				w.log.Warn("SnapshotWorker.RunOnce error releasing leader lock", zap.Error(err))
			}
		}()
	}

	patients, err := w.repo.FindAll(ctx)
	if err != nil {
		w.log.Error("SnapshotWorker.RunOnce error loading patient store", zap.Error(err))
		return
	}

	objectName, err := w.snapshots.UploadSnapshot(ctx, patients)
	if err != nil {
		w.log.Error("SnapshotWorker.RunOnce error uploading snapshot", zap.Error(err))
		return
	}

	w.log.Info("SnapshotWorker.RunOnce succeeded",
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
}
