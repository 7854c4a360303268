package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"patient-service/internal/app/config"
	"patient-service/internal/app/drivers/database"
	"patient-service/internal/app/drivers/logger"
	"patient-service/internal/app/services/core/patients"
	"patient-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

// Imports a patients.json store file into the mongo patients collection.
// Ids already present in mongo are skipped.
func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	filePath := flag.String("file", internalConfig.Store.FilePath, "patient store file to import")
	flag.Parse()

	if _, err := os.Stat(*filePath); err != nil {
		log.Fatal("Patient store file not readable", zap.String(constvars.LoggingFilePathKey, *filePath), zap.Error(err))
	}

	mongoClient := database.NewMongoDB(driverConfig, log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()
	defer mongoClient.Disconnect(ctx)

	source := patients.NewPatientFileRepository(*filePath)
	target := patients.NewPatientMongoRepository(mongoClient, driverConfig.MongoDB.DbName)

	records, err := source.FindAll(ctx)
	if err != nil {
		log.Fatal("Failed to load patient store file", zap.String(constvars.LoggingFilePathKey, *filePath), zap.Error(err))
	}

	var imported, skipped int
	for patientID, patient := range records {
		patient.RefreshDerivedFields()
		err := target.Insert(ctx, patientID, patient)
		if errors.Is(err, patients.ErrPatientDuplicate) {
			skipped++
			continue
		}
		if err != nil {
			log.Fatal("Failed to import patient", zap.String(constvars.LoggingPatientIDKey, patientID), zap.Error(err))
		}
		imported++
	}

	log.Info("Patient import finished",
		zap.String(constvars.LoggingFilePathKey, *filePath),
		zap.Int("imported", imported),
		zap.Int("skipped", skipped),
	)
}
