package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"patient-service/internal/app/config"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/delivery/http/controllers"
	"patient-service/internal/app/delivery/http/middlewares"
	"patient-service/internal/app/delivery/http/routers"
	"patient-service/internal/app/drivers/database"
	"patient-service/internal/app/drivers/logger"
	"patient-service/internal/app/drivers/messaging"
	"patient-service/internal/app/drivers/storage"
	"patient-service/internal/app/services/core/patients"
	"patient-service/internal/app/services/core/predictions"
	"patient-service/internal/app/services/shared/locker"
	sharedMessaging "patient-service/internal/app/services/shared/messaging"
	"patient-service/internal/app/services/shared/redis"
	sharedStorage "patient-service/internal/app/services/shared/storage"
	"patient-service/internal/pkg/constvars"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Version and Tag are set at build time with -ldflags and take precedence over
// APP_VERSION and APP_TAG.
var (
	Version = ""
	Tag     = ""
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	if Version != "" {
		internalConfig.App.Version = Version
	}
	if Tag != "" {
		internalConfig.App.Tag = Tag
	}

	log := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatal("Error loading location", zap.String("timezone", internalConfig.App.Timezone), zap.Error(err))
	}
	time.Local = location

	bootstrap := config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	if driverConfig.MongoDB.Enabled {
		bootstrap.MongoDB = database.NewMongoDB(driverConfig, log)
	}
	if driverConfig.Redis.Enabled {
		bootstrap.Redis = database.NewRedisClient(driverConfig, log)
	}
	if driverConfig.RabbitMQ.Enabled {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig, log)
	}

	bootstrapingTheApp(&bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Server listening", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Error("Failed to close drivers", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) {
	log := bootstrap.Logger

	// Patient store
	var patientRepository contracts.PatientRepository
	switch bootstrap.InternalConfig.Store.Driver {
	case constvars.StoreDriverMongo:
		if bootstrap.MongoDB == nil {
			log.Fatal("APP_STORE_DRIVER is mongo but MONGODB_ENABLED is false")
		}
		patientRepository = patients.NewPatientMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	case constvars.StoreDriverFile:
		patientRepository = patients.NewPatientFileRepository(bootstrap.InternalConfig.Store.FilePath)
	default:
		log.Fatal("Unknown patient store driver", zap.String(constvars.LoggingStoreDriverKey, bootstrap.InternalConfig.Store.Driver))
	}
	log.Info("Patient store selected", zap.String(constvars.LoggingStoreDriverKey, bootstrap.InternalConfig.Store.Driver))

	// Redis view cache and store lock
	var redisRepository contracts.RedisRepository
	var lockerService contracts.LockerService
	if bootstrap.Redis != nil {
		redisRepository = redis.NewRedisRepository(bootstrap.Redis)
		lockerService = locker.NewLockService(redisRepository, log)
	}

	// Patient events
	var eventPublisher contracts.PatientEventPublisher
	if bootstrap.RabbitMQ != nil {
		publisher, err := sharedMessaging.NewRabbitMQPatientEventPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.RabbitMQ.PatientEventQueue, log)
		if err != nil {
			log.Fatal("Failed to initialize patient event publisher", zap.Error(err))
		}
		eventPublisher = publisher
	}

	// Store snapshots
	var snapshotStorage contracts.PatientSnapshotStorage
	if bootstrap.DriverConfig.Minio.Enabled {
		minioClient := storage.NewMinio(bootstrap.DriverConfig, log)
		snapshotStorage = sharedStorage.NewMinioSnapshotStorage(minioClient, bootstrap.DriverConfig.Minio.BucketName, log)

		if spec := bootstrap.InternalConfig.Store.SnapshotCronSpec; spec != "" {
			snapshotWorker := patients.NewSnapshotWorker(log, spec, patientRepository, snapshotStorage, lockerService)
			snapshotWorker.Start(context.Background())
			bootstrap.WorkerStop = snapshotWorker.Stop
		}
	}

	// Patient
	patientUsecase := patients.NewPatientUsecase(
		patientRepository,
		redisRepository,
		lockerService,
		eventPublisher,
		snapshotStorage,
		bootstrap.InternalConfig.Store,
		log,
	)
	patientController := controllers.NewPatientController(log, patientUsecase)

	// Prediction
	premiumPredictor := predictions.NewHTTPPremiumPredictor(
		bootstrap.DriverConfig.Predictor.BaseUrl,
		time.Duration(bootstrap.DriverConfig.Predictor.HTTPTimeoutInSeconds)*time.Second,
		log,
	)
	predictionUsecase := predictions.NewPredictionUsecase(premiumPredictor, log)
	predictionController := controllers.NewPredictionController(log, predictionUsecase)

	homeController := controllers.NewHomeController(bootstrap.InternalConfig)
	middlewares := middlewares.NewMiddlewares(log, bootstrap.InternalConfig)

	routers.SetupRoutes(bootstrap.Router, middlewares, homeController, patientController, predictionController)
}
