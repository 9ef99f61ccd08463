package database

import (
	"context"
	"fmt"
	"time"

	"superhero-backend/internal/config"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoDB wraps the driver client together with the database handle
// the application works against.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
	cfg      config.MongoConfig
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping.
func NewMongoDB(cfg config.MongoConfig) (*MongoDB, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.TimeoutSec)*time.Second)
	defer cancel()

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping mongo at %s: %w", cfg.URI, err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database),
		cfg:      cfg,
	}, nil
}

// Collection returns the application's working collection.
func (db *MongoDB) Collection() *mongo.Collection {
	return db.Database.Collection(db.cfg.Collection)
}

// EnsureIndexes creates the unique nickname index. The index is the
// only concurrency safeguard for nickname collisions, so startup fails
// if it cannot be created.
func (db *MongoDB) EnsureIndexes(ctx context.Context) error {
	_, err := db.Collection().Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "nickname", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create nickname index: %w", err)
	}
	return nil
}

// Close disconnects the underlying client.
func (db *MongoDB) Close(ctx context.Context) error {
	return db.Client.Disconnect(ctx)
}
