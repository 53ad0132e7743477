package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"photoalbum/models"
)

// PhotoRepository persists photo records in the images collection.
// Every query filters by owner_id so one owner can never read
// another's records.
type PhotoRepository struct {
	collection *mongo.Collection
}

func NewPhotoRepository(db *mongo.Database) *PhotoRepository {
	return &PhotoRepository{
		collection: db.Collection("images"),
	}
}

// Insert persists a new record and returns its id. Records are never
// updated after insertion.
func (r *PhotoRepository) Insert(ctx context.Context, photo *models.PhotoRecord) (string, error) {
	result, err := r.collection.InsertOne(ctx, photo)
	if err != nil {
		return "", fmt.Errorf("%w: insert photo record: %v", models.ErrStoreUnavailable, err)
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: unexpected inserted id type %T", models.ErrStoreUnavailable, result.InsertedID)
	}
	return id.Hex(), nil
}

// ListByOwner returns all of one owner's records, newest year first,
// newest upload first within a year. An empty gallery is a valid
// empty slice, not an error.
func (r *PhotoRepository) ListByOwner(ctx context.Context, ownerID string) ([]models.PhotoRecord, error) {
	filter := bson.M{"owner_id": ownerID}
	findOptions := options.Find().SetSort(bson.D{
		{Key: "year", Value: -1},
		{Key: "created_at", Value: -1},
	})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: list photos: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var photos []models.PhotoRecord
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("%w: decode photos: %v", models.ErrStoreUnavailable, err)
	}

	return photos, nil
}

// ListByOwnerYearLocation returns one owner's records for a single
// year and location name, newest upload first. An empty result is
// models.ErrNoRecords, which backs the drill-down not-found page.
func (r *PhotoRepository) ListByOwnerYearLocation(ctx context.Context, ownerID string, year int, locationName string) ([]models.PhotoRecord, error) {
	filter := bson.M{
		"owner_id":      ownerID,
		"year":          year,
		"location.name": locationName,
	}
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, fmt.Errorf("%w: list photos: %v", models.ErrStoreUnavailable, err)
	}
	defer cursor.Close(ctx)

	var photos []models.PhotoRecord
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("%w: decode photos: %v", models.ErrStoreUnavailable, err)
	}

	if len(photos) == 0 {
		return nil, models.ErrNoRecords
	}
	return photos, nil
}
