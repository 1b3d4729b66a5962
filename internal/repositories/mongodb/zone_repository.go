package mongodb

import (
	"context"
	"fmt"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type zoneRepository struct {
	collection *mongo.Collection
}

func NewZoneRepository(db *mongo.Database) interfaces.ZoneRepository {
	return &zoneRepository{
		collection: db.Collection("zones"),
	}
}

func (r *zoneRepository) GetAll(ctx context.Context) ([]*models.Zone, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query zones: %w", err)
	}
	defer cursor.Close(ctx)

	var zones []*models.Zone
	if err := cursor.All(ctx, &zones); err != nil {
		return nil, fmt.Errorf("failed to decode zones: %w", err)
	}

	return zones, nil
}

func (r *zoneRepository) GetByName(ctx context.Context, name string) (*models.Zone, error) {
	var zone models.Zone
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&zone)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("zone not found")
		}
		return nil, fmt.Errorf("failed to get zone: %w", err)
	}

	return &zone, nil
}

func (r *zoneRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count zones: %w", err)
	}

	return count, nil
}
