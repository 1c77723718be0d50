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

type ProviderProfileMongoRepository struct {
	Collection *mongo.Collection
}

func NewProviderProfileMongoRepository(db *mongo.Client, dbName string) contracts.ProviderProfileRepository {
	return &ProviderProfileMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionProviderProfiles),
	}
}

func (repo *ProviderProfileMongoRepository) CreateProviderProfile(ctx context.Context, profileModel *models.ProviderProfile) (profileID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, profileModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (r *ProviderProfileMongoRepository) FindProviderProfileByUserID(ctx context.Context, userID string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.Collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &profile, nil
}
