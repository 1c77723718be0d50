package patients

import (
	"context"
	"medflow-service/internal/app/contracts"
	"medflow-service/internal/app/models"
	"medflow-service/internal/pkg/constvars"
	"medflow-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientProfileMongoRepository(db *mongo.Client, dbName string) contracts.PatientProfileRepository {
	return &PatientProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientProfiles),
	}
}

func (repo *PatientProfileMongoRepository) CreatePatientProfile(ctx context.Context, profileModel *models.PatientProfile) (profileID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, profileModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *PatientProfileMongoRepository) FindPatientProfileByUserID(ctx context.Context, userID string) (*models.PatientProfile, error) {
	var profile models.PatientProfile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
