package config

import (
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Enabled:  utils.GetEnvBool("MONGODB_ENABLED", false),
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "patients"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Redis: Redis{
			Enabled:  utils.GetEnvBool("REDIS_ENABLED", false),
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Enabled:  utils.GetEnvBool("RABBITMQ_ENABLED", false),
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Enabled:    utils.GetEnvBool("MINIO_ENABLED", false),
			Port:       utils.GetEnvString("MINIO_PORT", "9000"),
			Host:       utils.GetEnvString("MINIO_HOST", "localhost"),
			Username:   utils.GetEnvString("MINIO_USERNAME", "defaultUsername"),
			Password:   utils.GetEnvString("MINIO_PASSWORD", "defaultPassword"),
			BucketName: utils.GetEnvString("MINIO_BUCKET_NAME", "patient-store"),
			UseSSL:     utils.GetEnvBool("MINIO_USE_SSL", false),
		},
		Predictor: Predictor{
			BaseUrl:              utils.GetEnvString("PREDICTOR_BASE_URL", "http://localhost:8000"),
			HTTPTimeoutInSeconds: utils.GetEnvInt("PREDICTOR_TIMEOUT_IN_SECONDS", 10),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                         utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Port:                        utils.GetEnvString("APP_PORT", ":8080"),
			Version:                     utils.GetEnvString("APP_VERSION", "v1.0"),
			Tag:                         utils.GetEnvString("APP_TAG", "0.0.1-rc"),
			Timezone:                    utils.GetEnvString("APP_TIMEZONE", "Asia/Kolkata"),
			MaxRequests:                 utils.GetEnvInt("APP_MAX_REQUEST", 10),
			ShutdownTimeoutInSeconds:    utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			RequestBodyLimitInMegabyte:  utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_MEGABYTE", 1),
			PredictMaxRequestsPerMinute: utils.GetEnvInt("APP_PREDICT_MAX_REQUESTS_PER_MINUTE", 30),
			PredictBlockTimeInSeconds:   utils.GetEnvInt("APP_PREDICT_BLOCK_TIME_IN_SECONDS", 60),
		},
		Store: AppStore{
			Driver:             utils.GetEnvString("APP_STORE_DRIVER", constvars.StoreDriverFile),
			FilePath:           utils.GetEnvString("APP_STORE_FILE_PATH", "patients.json"),
			LockTTLInSeconds:   utils.GetEnvInt("APP_STORE_LOCK_TTL_IN_SECONDS", 10),
			LockMaxAttempts:    utils.GetEnvInt("APP_STORE_LOCK_MAX_ATTEMPTS", 20),
			LockRetryInMillis:  utils.GetEnvInt("APP_STORE_LOCK_RETRY_IN_MILLIS", 50),
			ViewCacheTTLInSecs: utils.GetEnvInt("APP_STORE_VIEW_CACHE_TTL_IN_SECONDS", 300),
			SnapshotCronSpec:   utils.GetEnvString("APP_STORE_SNAPSHOT_CRON_SPEC", "@hourly"),
		},
		RabbitMQ: AppRabbitMQ{
			PatientEventQueue: utils.GetEnvString("APP_RABBITMQ_PATIENT_EVENT_QUEUE", "patient_events"),
		},
	}
}
