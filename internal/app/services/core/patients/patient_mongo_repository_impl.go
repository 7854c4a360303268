package patients

import (
	"context"
	"patient-service/internal/app/contracts"
	"patient-service/internal/app/models"
	"patient-service/internal/pkg/constvars"
	"patient-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// patientDocument stores the patient id as the document _id.
type patientDocument struct {
	ID             string `bson:"_id"`
	models.Patient `bson:",inline"`
}

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (repo *PatientMongoRepository) FindAll(ctx context.Context) (map[string]models.Patient, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}

	var documents []patientDocument
	err = cursor.All(ctx, &documents)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}

	patients := make(map[string]models.Patient, len(documents))
	for _, document := range documents {
		patients[document.ID] = document.Patient
	}
	return patients, nil
}

func (repo *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	var document patientDocument
	err := repo.Collection.FindOne(ctx, bson.M{"_id": patientID}).Decode(&document)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &document.Patient, nil
}

func (repo *PatientMongoRepository) Insert(ctx context.Context, patientID string, patient models.Patient) error {
	_, err := repo.Collection.InsertOne(ctx, patientDocument{ID: patientID, Patient: patient})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrPatientDuplicate
		}
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (repo *PatientMongoRepository) Update(ctx context.Context, patientID string, patient models.Patient) error {
	result, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": patientID}, patientDocument{ID: patientID, Patient: patient})
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	if result.MatchedCount == 0 {
		return ErrPatientMissing
	}
	return nil
}
