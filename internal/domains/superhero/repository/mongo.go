package repository

import (
	"context"
	"errors"
	"fmt"

	"superhero-backend/internal/domains/superhero"
	"superhero-backend/internal/infrastructure/database"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MongoRepository persists superheroes in a MongoDB collection.
// A unique index on nickname (created at startup) is what turns a
// racing duplicate create into exactly one success and one
// ErrDuplicateNickname.
type MongoRepository struct {
	coll *mongo.Collection
}

func NewMongoRepository(db *database.MongoDB) superhero.Repository {
	return &MongoRepository{coll: db.Collection()}
}

func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("failed to count superheroes: %w", err)
	}
	return total, nil
}

func (r *MongoRepository) List(ctx context.Context, offset, limit int64) ([]superhero.Superhero, error) {
	// Sort by _id: ObjectIDs are monotonic, so pages stay stable in
	// creation order across calls at a fixed page size.
	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: 1}}).
		SetSkip(offset).
		SetLimit(limit).
		SetProjection(bson.D{{Key: "nickname", Value: 1}, {Key: "images", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list superheroes: %w", err)
	}
	defer cursor.Close(ctx)

	heroes := []superhero.Superhero{}
	if err := cursor.All(ctx, &heroes); err != nil {
		return nil, fmt.Errorf("failed to decode superheroes: %w", err)
	}
	return heroes, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*superhero.Superhero, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var hero superhero.Superhero
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&hero)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, superhero.ErrSuperheroNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get superhero %s: %w", id, err)
	}

	if hero.Images == nil {
		hero.Images = []superhero.Image{}
	}
	return &hero, nil
}

func (r *MongoRepository) Insert(ctx context.Context, hero *superhero.Superhero) error {
	if hero.Images == nil {
		hero.Images = []superhero.Image{}
	}

	result, err := r.coll.InsertOne(ctx, hero)
	if mongo.IsDuplicateKeyError(err) {
		return superhero.ErrDuplicateNickname
	}
	if err != nil {
		return fmt.Errorf("failed to insert superhero: %w", err)
	}

	if oid, ok := result.InsertedID.(bson.ObjectID); ok {
		hero.ID = oid
	}
	return nil
}

func (r *MongoRepository) Update(ctx context.Context, hero *superhero.Superhero) error {
	result, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: hero.ID}}, hero)
	if mongo.IsDuplicateKeyError(err) {
		return superhero.ErrDuplicateNickname
	}
	if err != nil {
		return fmt.Errorf("failed to update superhero %s: %w", hero.ID.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return superhero.ErrSuperheroNotFound
	}
	return nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := parseID(id)
	if err != nil {
		return false, err
	}

	result, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return false, fmt.Errorf("failed to delete superhero %s: %w", id, err)
	}
	return result.DeletedCount > 0, nil
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, superhero.ErrInvalidID
	}
	return oid, nil
}
