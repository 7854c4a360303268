package storage

import (
	"bytes"
	"context"
	"fmt"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"
	"time"

	"github.com/goccy/go-json"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

type minioSnapshotStorage struct {
	MinioClient *minio.Client
	BucketName  string
	Log         *zap.Logger
	now         func() time.Time
}

func NewMinioSnapshotStorage(minioClient *minio.Client, bucketName string, logger *zap.Logger) contracts.PatientSnapshotStorage {
	return &minioSnapshotStorage{
		MinioClient: minioClient,
		BucketName:  bucketName,
		Log:         logger,
		now:         time.Now,
	}
}

// UploadSnapshot stores the whole keyed patient store as one JSON object and
// returns the object name.
func (m *minioSnapshotStorage) UploadSnapshot(ctx context.Context, patients map[string]models.Patient) (string, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	body, err := json.Marshal(patients)
	if err != nil {
		return "", exceptions.ErrCannotMarshalJSON(err)
	}

	objectName := fmt.Sprintf(constvars.PatientStoreSnapshotPath, m.now().UnixNano())
	_, err = m.MinioClient.PutObject(ctx, m.BucketName, objectName, bytes.NewReader(body), int64(len(body)), minio.PutObjectOptions{
		ContentType: constvars.MIMEApplicationJSON,
	})
	if err != nil {
		m.Log.Error("minioSnapshotStorage.UploadSnapshot error putting object",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingBucketNameKey, m.BucketName),
			zap.String(constvars.LoggingObjectNameKey, objectName),
			zap.Error(err),
		)
		return "", exceptions.ErrMinioCreateObject(err, m.BucketName)
	}

	m.Log.Info("minioSnapshotStorage.UploadSnapshot succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingObjectNameKey, objectName),
		zap.Int(constvars.LoggingPatientCountKey, len(patients)),
	)
	return objectName, nil
}
