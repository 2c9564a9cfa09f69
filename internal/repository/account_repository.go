package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/Phutanet200102/api-mongoDB/internal/model"
	"github.com/Phutanet200102/api-mongoDB/internal/store"
)

type AccountRepository interface {
	FindAll(ctx context.Context) ([]bson.M, error)
	FindByID(ctx context.Context, id bson.ObjectID) (bson.M, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, doc bson.M) error
	Update(ctx context.Context, id bson.ObjectID, fields bson.M) (int64, error)
}

type mongoAccountRepository struct {
	col *mongo.Collection
}

func NewMongoAccountRepository(s *store.Store) AccountRepository {
	return &mongoAccountRepository{col: s.Accounts()}
}

// redactPassword keeps password hashes out of every read path; only
// FindCredentialsByEmail sees the stored hash.
var redactPassword = bson.M{"password": 0}

func (r *mongoAccountRepository) FindAll(ctx context.Context) ([]bson.M, error) {
	cursor, err := r.col.Find(ctx, bson.M{}, options.Find().SetProjection(redactPassword))
	if err != nil {
		return nil, err
	}

	accounts := []bson.M{}
	if err := cursor.All(ctx, &accounts); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (r *mongoAccountRepository) FindByID(ctx context.Context, id bson.ObjectID) (bson.M, error) {
	var account bson.M
	err := r.col.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(redactPassword)).Decode(&account)
	if err != nil {
		return nil, err
	}

	return account, nil
}

func (r *mongoAccountRepository) FindCredentialsByEmail(ctx context.Context, email string) (*model.Credentials, error) {
	var creds model.Credentials
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&creds)
	if err != nil {
		return nil, err
	}

	return &creds, nil
}

func (r *mongoAccountRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"email": email}, options.FindOne().SetProjection(bson.M{"_id": 1})).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return true, nil
}

func (r *mongoAccountRepository) Create(ctx context.Context, doc bson.M) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *mongoAccountRepository) Update(ctx context.Context, id bson.ObjectID, fields bson.M) (int64, error) {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if err != nil {
		return 0, err
	}

	return result.MatchedCount, nil
}
