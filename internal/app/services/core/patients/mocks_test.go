package patients

import (
	"context"
	"patient-service/internal/app/models"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) FindAll(ctx context.Context) (map[string]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).(map[string]models.Patient)
	return patients, args.Error(1)
}

func (m *MockPatientRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	args := m.Called(ctx, patientID)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *MockPatientRepository) Insert(ctx context.Context, patientID string, patient models.Patient) error {
	args := m.Called(ctx, patientID, patient)
	return args.Error(0)
}

func (m *MockPatientRepository) Update(ctx context.Context, patientID string, patient models.Patient) error {
	args := m.Called(ctx, patientID, patient)
	return args.Error(0)
}

type MockRedisRepository struct {
	mock.Mock
}

func (m *MockRedisRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	args := m.Called(ctx, key, value, exp)
	return args.Error(0)
}

func (m *MockRedisRepository) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, exp time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, exp)
	return args.Bool(0), args.Error(1)
}

type MockLockerService struct {
	mock.Mock
}

func (m *MockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *MockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type MockPatientEventPublisher struct {
	mock.Mock
}

func (m *MockPatientEventPublisher) Publish(ctx context.Context, event models.PatientEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

type MockPatientSnapshotStorage struct {
	mock.Mock
}

func (m *MockPatientSnapshotStorage) UploadSnapshot(ctx context.Context, patients map[string]models.Patient) (string, error) {
	args := m.Called(ctx, patients)
	return args.String(0), args.Error(1)
}
