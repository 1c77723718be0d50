package imaging

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MedicalImageMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalImageMongoRepository(db *mongo.Client, dbName string) contracts.MedicalImageRepository {
	return &MedicalImageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalImages),
	}
}

func (repo *MedicalImageMongoRepository) CreateMedicalImage(ctx context.Context, imageModel *models.MedicalImage) (documentID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, imageModel)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *MedicalImageMongoRepository) FindMedicalImageByImageID(ctx context.Context, imageID string) (*models.MedicalImage, error) {
	var image models.MedicalImage
	err := repo.Collection.FindOne(ctx, bson.M{"imageId": imageID}).Decode(&image)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &image, nil
}

func (repo *MedicalImageMongoRepository) UpdateAnalysisStatus(ctx context.Context, imageID string, status models.AnalysisStatus) error {
	filter := bson.M{"imageId": imageID}
	update := bson.M{"$set": bson.M{
		"analysisStatus": status,
		"updatedAt":      time.Now(),
	}}

	_, err := repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
