package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const (
	accountCollection = "account"
	imageCollection   = "images"
)

// Store owns the single MongoDB client shared by every request for the
// lifetime of the process. The driver handles connection pooling.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to reach mongo: %w", err)
	}

	return &Store{client: client, db: client.Database(dbName)}, nil
}

func (s *Store) Accounts() *mongo.Collection {
	return s.db.Collection(accountCollection)
}

func (s *Store) Images() *mongo.Collection {
	return s.db.Collection(imageCollection)
}

// EnsureIndexes creates the unique index on account email. The index is
// the actual uniqueness guarantee; the existence pre-check in the account
// service is only a fast path for a friendlier error.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.Accounts().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create email index: %w", err)
	}

	return nil
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
