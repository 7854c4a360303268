package patients

import (
	"context"
	"errors"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestSnapshotWorker_RunOnce(t *testing.T) {
	store := map[string]models.Patient{"P001": newTestPatient("Ravi", 1.75, 72)}

	t.Run("Leader uploads the store", func(t *testing.T) {
		repo := new(MockPatientRepository)
		snapshots := new(MockPatientSnapshotStorage)
		lockerService := new(MockLockerService)

		lockerService.On("TryLock", mock.Anything, constvars.RedisKeySnapshotLeaderLock, snapshotLeaderLockTTL).Return(true, "token-1", nil).Once()
		lockerService.On("Unlock", mock.Anything, constvars.RedisKeySnapshotLeaderLock, "token-1").Return(nil).Once()
		repo.On("FindAll", mock.Anything).Return(store, nil).Once()
		snapshots.On("UploadSnapshot", mock.Anything, store).Return("snapshots/patients-1.json", nil).Once()

		NewSnapshotWorker(zap.NewNop(), "@hourly", repo, snapshots, lockerService).RunOnce(context.Background())

		repo.AssertExpectations(t)
		snapshots.AssertExpectations(t)
		lockerService.AssertExpectations(t)
	})

	t.Run("Skips when another instance leads", func(t *testing.T) {
		repo := new(MockPatientRepository)
		snapshots := new(MockPatientSnapshotStorage)
		lockerService := new(MockLockerService)

		lockerService.On("TryLock", mock.Anything, constvars.RedisKeySnapshotLeaderLock, snapshotLeaderLockTTL).Return(false, "", nil).Once()

		NewSnapshotWorker(zap.NewNop(), "@hourly", repo, snapshots, lockerService).RunOnce(context.Background())

		repo.AssertNotCalled(t, "FindAll", mock.Anything)
		snapshots.AssertNotCalled(t, "UploadSnapshot", mock.Anything, mock.Anything)
	})

	t.Run("Store error skips the upload", func(t *testing.T) {
		repo := new(MockPatientRepository)
		snapshots := new(MockPatientSnapshotStorage)

		repo.On("FindAll", mock.Anything).Return(map[string]models.Patient(nil), errors.New("disk gone")).Once()

		NewSnapshotWorker(zap.NewNop(), "@hourly", repo, snapshots, nil).RunOnce(context.Background())

		repo.AssertExpectations(t)
		snapshots.AssertNotCalled(t, "UploadSnapshot", mock.Anything, mock.Anything)
	})
}

func TestSnapshotWorker_StartStop(t *testing.T) {
	worker := NewSnapshotWorker(zap.NewNop(), "not a cron spec", new(MockPatientRepository), new(MockPatientSnapshotStorage), nil)
	worker.Start(context.Background())
	worker.Stop()
}
