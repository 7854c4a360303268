package contracts

import (
	"context"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/dto/requests"
	"patient-service/internal/pkg/dto/responses"
)

type PatientUsecase interface {
	FindAll(ctx context.Context) (map[string]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*responses.Patient, error)
	FindAllSorted(ctx context.Context, request *requests.SortPatients) ([]responses.Patient, error)
	Create(ctx context.Context, request *requests.CreatePatient) (*responses.PatientCreated, error)
	Update(ctx context.Context, patientID string, request *requests.UpdatePatient) error
}

// PatientRepository persists the keyed patient store. Insert fails with
// ErrPatientDuplicate and Update with ErrPatientMissing; FindByID returns nil
// without error for an unknown id.
type PatientRepository interface {
	FindAll(ctx context.Context) (map[string]models.Patient, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	Insert(ctx context.Context, patientID string, patient models.Patient) error
	Update(ctx context.Context, patientID string, patient models.Patient) error
}

type PatientEventPublisher interface {
	Publish(ctx context.Context, event models.PatientEvent) error
}

type PatientSnapshotStorage interface {
	UploadSnapshot(ctx context.Context, patients map[string]models.Patient) (string, error)
}
