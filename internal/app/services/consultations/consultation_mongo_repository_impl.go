package consultations

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (repo *ConsultationMongoRepository) CreateConsultation(ctx context.Context, consultationModel *models.Consultation) (consultationID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, consultationModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ConsultationMongoRepository) FindConsultationByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (repo *ConsultationMongoRepository) FindConsultationsByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	var consultations []models.Consultation
	cursor, err := repo.Collection.Find(ctx, bson.M{"patientId": patientID})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &consultations)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (repo *ConsultationMongoRepository) FindAllConsultations(ctx context.Context) ([]models.Consultation, error) {
	var consultations []models.Consultation
	cursor, err := repo.Collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &consultations)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (repo *ConsultationMongoRepository) UpdateConsultationTriage(ctx context.Context, consultationID string, triageLevel models.TriageLevel, triageScore float64, aiAssessment string) error {
	objectID, err := primitive.ObjectIDFromHex(consultationID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	update := bson.M{
		"$set": bson.M{
			"triageLevel":  triageLevel,
			"triageScore":  triageScore,
			"aiAssessment": aiAssessment,
			"updatedAt":    time.Now(),
		},
	}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
