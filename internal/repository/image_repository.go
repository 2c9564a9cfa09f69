package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Phutanet200102/api-mongoDB/internal/model"
	"github.com/Phutanet200102/api-mongoDB/internal/store"
)

type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) (bson.ObjectID, error)
}

type mongoImageRepository struct {
	col *mongo.Collection
}

func NewMongoImageRepository(s *store.Store) ImageRepository {
	return &mongoImageRepository{col: s.Images()}
}

func (r *mongoImageRepository) Create(ctx context.Context, image *model.Image) (bson.ObjectID, error) {
	result, err := r.col.InsertOne(ctx, image)
	if err != nil {
		return bson.NilObjectID, err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.NilObjectID, nil
	}

	return id, nil
}
