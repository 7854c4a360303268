package patients

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"sync"

	"github.com/goccy/go-json"
)

// PatientFileRepository keeps the whole store as one JSON object keyed by
// patient id. Every call reads the full document and every mutation rewrites it.
type PatientFileRepository struct {
	mu       sync.Mutex
	FilePath string
}

func NewPatientFileRepository(filePath string) contracts.PatientRepository {
	return &PatientFileRepository{
		FilePath: filePath,
	}
}

func (repo *PatientFileRepository) FindAll(ctx context.Context) (map[string]models.Patient, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	return repo.load()
}

func (repo *PatientFileRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	patients, err := repo.load()
	if err != nil {
		return nil, err
	}

	patient, ok := patients[patientID]
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (repo *PatientFileRepository) Insert(ctx context.Context, patientID string, patient models.Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	patients, err := repo.load()
	if err != nil {
		return err
	}
	if _, ok := patients[patientID]; ok {
		return ErrPatientDuplicate
	}

	patients[patientID] = patient
	return repo.save(patients)
}

func (repo *PatientFileRepository) Update(ctx context.Context, patientID string, patient models.Patient) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	patients, err := repo.load()
	if err != nil {
		return err
	}
	if _, ok := patients[patientID]; !ok {
		return ErrPatientMissing
	}

	patients[patientID] = patient
	return repo.save(patients)
}

// load treats a missing or empty file as an empty store.
func (repo *PatientFileRepository) load() (map[string]models.Patient, error) {
	patients := make(map[string]models.Patient)

	data, err := os.ReadFile(repo.FilePath)
	if errors.Is(err, fs.ErrNotExist) {
		return patients, nil
	}
	if err != nil {
		return nil, exceptions.ErrStoreReadFile(err, repo.FilePath)
	}
	if len(data) == 0 {
		return patients, nil
	}

	err = json.Unmarshal(data, &patients)
	if err != nil {
		return nil, exceptions.ErrStoreDecodeFile(err, repo.FilePath)
	}
	return patients, nil
}

// save writes to a temp file next to the store and renames it over the old
// document, so a failed write never leaves a half written store behind.
func (repo *PatientFileRepository) save(patients map[string]models.Patient) error {
	data, err := json.MarshalIndent(patients, "", "  ")
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(repo.FilePath), constvars.PatientStoreFileTempGlob)
	if err != nil {
		return exceptions.ErrStoreWriteFile(err, repo.FilePath)
	}
	tempPath := tempFile.Name()

	err = writeAndSync(tempFile, data)
	if err != nil {
		os.Remove(tempPath)
		return exceptions.ErrStoreWriteFile(err, repo.FilePath)
	}

	err = os.Rename(tempPath, repo.FilePath)
	if err != nil {
		os.Remove(tempPath)
		return exceptions.ErrStoreWriteFile(err, repo.FilePath)
	}
	return nil
}

func writeAndSync(file *os.File, data []byte) error {
	_, err := file.Write(data)
	if err != nil {
		file.Close()
		return err
	}
	err = file.Sync()
	if err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
