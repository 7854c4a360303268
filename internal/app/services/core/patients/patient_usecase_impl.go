package patients

import (
	"context"
	"errors"
	"patient-service/internal/app/config"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/app/services/shared/locker"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/dto/responses"
	"patient-service/internal/pkg/exceptions"
	"patient-service/internal/pkg/utils"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type patientUsecase struct {
	// serialises load-check-modify-save inside this process
	mu sync.Mutex
	// cacheMu guards viewGeneration, which every committed mutation bumps. A
	// view read under an older generation is not written back to the cache.
	cacheMu           sync.Mutex
	viewGeneration    uint64
	PatientRepository contracts.PatientRepository
	RedisRepository   contracts.RedisRepository
	LockerService     contracts.LockerService
	EventPublisher    contracts.PatientEventPublisher
	SnapshotStorage   contracts.PatientSnapshotStorage
	StoreConfig       config.AppStore
	Log               *zap.Logger
	now               func() time.Time
}

// NewPatientUsecase only requires the repository. Redis, the lock, the event
// publisher and the snapshot storage are skipped when nil.
func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	eventPublisher contracts.PatientEventPublisher,
	snapshotStorage contracts.PatientSnapshotStorage,
	storeConfig config.AppStore,
	logger *zap.Logger,
) contracts.PatientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepository,
		RedisRepository:   redisRepository,
		LockerService:     lockerService,
		EventPublisher:    eventPublisher,
		SnapshotStorage:   snapshotStorage,
		StoreConfig:       storeConfig,
		Log:               logger,
		now:               time.Now,
	}
}

func (uc *patientUsecase) FindAll(ctx context.Context) (map[string]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	patients, err := uc.loadView(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAll error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("patientUsecase.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return patients, nil
}

func (uc *patientUsecase) FindByID(ctx context.Context, patientID string) (*responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)

	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.FindByID error fetching patient from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, err
	}

	if patient == nil {
		uc.Log.Info("patientUsecase.FindByID patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return nil, exceptions.ErrPatientIDNotFound(nil, patientID)
	}

	patient.RefreshDerivedFields()
	response := patient.ConvertIntoResponse(patientID)

	uc.Log.Info("patientUsecase.FindByID succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return &response, nil
}

// FindAllSorted orders records by height, weight or bmi. The sort is stable
// and runs over records already ordered by id, so equal values keep ascending
// id order in both directions.
func (uc *patientUsecase) FindAllSorted(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.FindAllSorted called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSortByKey, request.SortBy),
		zap.String(constvars.LoggingSortOrderKey, request.Order),
	)

	if !slices.Contains(constvars.ValidSortFields, request.SortBy) {
		uc.Log.Error("patientUsecase.FindAllSorted invalid sort field",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSortByKey, request.SortBy),
		)
		return nil, exceptions.ErrInvalidSortField(nil, request.SortBy)
	}

	order := request.Order
	if order == "" {
		order = constvars.SortOrderAsc
	}
	if order != constvars.SortOrderAsc && order != constvars.SortOrderDesc {
		uc.Log.Error("patientUsecase.FindAllSorted invalid sort order",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingSortOrderKey, order),
		)
		return nil, exceptions.ErrInvalidSortOrder(nil, order)
	}

	patients, err := uc.loadView(ctx)
	if err != nil {
		uc.Log.Error("patientUsecase.FindAllSorted error loading patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	patientIDs := make([]string, 0, len(patients))
	for patientID := range patients {
		patientIDs = append(patientIDs, patientID)
	}
	sort.Strings(patientIDs)

	descending := order == constvars.SortOrderDesc
	sort.SliceStable(patientIDs, func(i, j int) bool {
		left := patients[patientIDs[i]].SortValue(request.SortBy)
		right := patients[patientIDs[j]].SortValue(request.SortBy)
		if descending {
			return left > right
		}
		return left < right
	})

	response := make([]responses.Patient, 0, len(patientIDs))
	for _, patientID := range patientIDs {
		response = append(response, patients[patientID].ConvertIntoResponse(patientID))
	}

	uc.Log.Info("patientUsecase.FindAllSorted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingPatientCountKey, len(response)),
	)
	return response, nil
}

func (uc *patientUsecase) Create(ctx context.Context, request *requests.CreatePatient) (*responses.PatientCreated, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)

	err := utils.ValidateStruct(request)
	if err != nil {
		uc.Log.Error("patientUsecase.Create validation failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrInputValidation(err)
	}

	release, err := uc.lockStore(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	existing, err := uc.PatientRepository.FindByID(ctx, request.ID)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error checking existing patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.ID),
			zap.Error(err),
		)
		return nil, err
	}
	if existing != nil {
		uc.Log.Info("patientUsecase.Create patient already exists",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.ID),
		)
		return nil, exceptions.ErrPatientAlreadyExists(nil, request.ID)
	}

	patient := models.NewPatientFromRequest(request)
	err = uc.PatientRepository.Insert(ctx, request.ID, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Create error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, request.ID),
			zap.Error(err),
		)
		if errors.Is(err, ErrPatientDuplicate) {
			return nil, exceptions.ErrPatientAlreadyExists(err, request.ID)
		}
		return nil, err
	}

	uc.afterMutation(ctx, constvars.PatientEventCreated, request.ID, patient)

	uc.Log.Info("patientUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, request.ID),
	)
	return &responses.PatientCreated{ID: request.ID}, nil
}

// Update merges the sent fields onto the stored record and validates the
// result as a full record. A field sent as null is cleared and so fails the
// required check.
func (uc *patientUsecase) Update(ctx context.Context, patientID string, request *requests.UpdatePatient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("patientUsecase.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
		zap.Strings(constvars.LoggingPatchFieldsKey, request.PresentFields()),
	)

	release, err := uc.lockStore(ctx)
	if err != nil {
		return err
	}
	defer release()

	existing, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error fetching patient from repository",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return err
	}
	if existing == nil {
		uc.Log.Info("patientUsecase.Update patient not found",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
		)
		return exceptions.ErrPatientNotFound(nil, patientID)
	}

	candidate := existing.ToCandidate(patientID)
	request.Name.Apply(&candidate.Name)
	request.City.Apply(&candidate.City)
	request.Age.Apply(&candidate.Age)
	request.Gender.Apply(&candidate.Gender)
	request.Height.Apply(&candidate.Height)
	request.Weight.Apply(&candidate.Weight)

	err = utils.ValidateStruct(candidate)
	if err != nil {
		uc.Log.Error("patientUsecase.Update merged record failed validation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return exceptions.ErrInputValidation(err)
	}

	patient := models.NewPatientFromRequest(candidate)
	err = uc.PatientRepository.Update(ctx, patientID, patient)
	if err != nil {
		uc.Log.Error("patientUsecase.Update error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		if errors.Is(err, ErrPatientMissing) {
			return exceptions.ErrPatientNotFound(err, patientID)
		}
		return err
	}

	uc.afterMutation(ctx, constvars.PatientEventUpdated, patientID, patient)

	uc.Log.Info("patientUsecase.Update succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patientID),
	)
	return nil
}

// lockStore takes the in-process mutex and, when a locker is configured, the
// shared store lock. The returned func releases both.
func (uc *patientUsecase) lockStore(ctx context.Context) (func(), error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.mu.Lock()
	if uc.LockerService == nil {
		return uc.mu.Unlock, nil
	}

	lockValue, err := locker.AcquireWithRetry(
		ctx,
		uc.LockerService,
		constvars.RedisKeyPatientStoreLock,
		time.Duration(uc.StoreConfig.LockTTLInSeconds)*time.Second,
		uc.StoreConfig.LockMaxAttempts,
		time.Duration(uc.StoreConfig.LockRetryInMillis)*time.Millisecond,
	)
	if err != nil {
		uc.mu.Unlock()
		uc.Log.Error("patientUsecase.lockStore error acquiring store lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, constvars.RedisKeyPatientStoreLock),
			zap.Error(err),
		)
		return nil, err
	}

	return func() {
		err := uc.LockerService.Unlock(context.WithoutCancel(ctx), constvars.RedisKeyPatientStoreLock, lockValue)
		if err != nil {
			uc.Log.Warn("patientUsecase.lockStore error releasing store lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
		uc.mu.Unlock()
	}, nil
}

// loadView returns the keyed view with derived fields refreshed, served from
// Redis when a cached copy exists. Cache failures fall through to the store.
func (uc *patientUsecase) loadView(ctx context.Context) (map[string]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if uc.RedisRepository != nil {
		cached, err := uc.RedisRepository.Get(ctx, constvars.RedisKeyPatientList)
		if err != nil {
			uc.Log.Warn("patientUsecase.loadView error retrieving data from Redis",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if cached != "" {
			var patients map[string]models.Patient
			err = json.Unmarshal([]byte(cached), &patients)
			if err == nil {
				return patients, nil
			}
			uc.Log.Warn("patientUsecase.loadView error unmarshaling cached patients",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	uc.cacheMu.Lock()
	generation := uc.viewGeneration
	uc.cacheMu.Unlock()

	patients, err := uc.PatientRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for patientID, patient := range patients {
		patient.RefreshDerivedFields()
		patients[patientID] = patient
	}

	if uc.RedisRepository != nil {
		uc.cacheView(ctx, generation, patients)
	}
	return patients, nil
}

// cacheView stores the view unless a mutation committed after it was read.
func (uc *patientUsecase) cacheView(ctx context.Context, generation uint64, patients map[string]models.Patient) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	if generation != uc.viewGeneration {
		uc.Log.Debug("patientUsecase.cacheView skipped, store changed during read",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return
	}

	ttl := time.Duration(uc.StoreConfig.ViewCacheTTLInSecs) * time.Second
	err := uc.RedisRepository.Set(ctx, constvars.RedisKeyPatientList, patients, ttl)
	if err != nil {
		uc.Log.Warn("patientUsecase.cacheView error caching patients in Redis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

func (uc *patientUsecase) invalidateView(ctx context.Context) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.cacheMu.Lock()
	defer uc.cacheMu.Unlock()

	uc.viewGeneration++
	if uc.RedisRepository == nil {
		return
	}
	err := uc.RedisRepository.Delete(ctx, constvars.RedisKeyPatientList)
	if err != nil {
		uc.Log.Warn("patientUsecase.invalidateView error invalidating cached patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}
}

// afterMutation runs the side effects of a committed write. None of them can
// fail the request.
func (uc *patientUsecase) afterMutation(ctx context.Context, event, patientID string, patient models.Patient) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	uc.invalidateView(ctx)

	if uc.EventPublisher != nil {
		err := uc.EventPublisher.Publish(ctx, models.PatientEvent{
			Event:      event,
			PatientID:  patientID,
			OccurredAt: uc.now().UTC(),
			Patient:    patient,
		})
		if err != nil {
			uc.Log.Warn("patientUsecase.afterMutation error publishing patient event",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingEventKey, event),
				zap.Error(err),
			)
		}
	}

	if uc.SnapshotStorage != nil {
		patients, err := uc.PatientRepository.FindAll(ctx)
		if err == nil {
			_, err = uc.SnapshotStorage.UploadSnapshot(ctx, patients)
		}
		if err != nil {
			uc.Log.Warn("patientUsecase.afterMutation error uploading store snapshot",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}
}
