package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const (
	mongoMaxPoolSize = 10
	mongoMinPoolSize = 2
)

func NewMongoClient(ctx context.Context, mongoURL string) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(mongoURL).
		SetMaxPoolSize(mongoMaxPoolSize).
		SetMinPoolSize(mongoMinPoolSize).
		SetMaxConnIdleTime(MaxConnIdleTime)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("error creating mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("error pinging mongo: %w", err)
	}

	return client, nil
}

// EnsureAccountIndexes creates the unique email index. Only documents whose
// deletedAt is null take part, so a soft-deleted account frees its email.
func EnsureAccountIndexes(ctx context.Context, db *mongo.Database) error {
	model := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetName(AccountsEmailIndex).
			SetUnique(true).
			SetPartialFilterExpression(bson.D{
				{Key: "deletedAt", Value: bson.D{{Key: "$type", Value: "null"}}},
			}),
	}

	if _, err := db.Collection(AccountsCollection).Indexes().CreateOne(ctx, model); err != nil {
		return fmt.Errorf("error creating accounts indexes: %w", err)
	}
	return nil
}
