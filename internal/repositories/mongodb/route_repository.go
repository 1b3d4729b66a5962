package mongodb

import (
	"context"
	"fmt"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type routeRepository struct {
	collection *mongo.Collection
}

func NewRouteRepository(db *mongo.Database) interfaces.RouteRepository {
	return &routeRepository{
		collection: db.Collection("response_routes"),
	}
}

func (r *routeRepository) Create(ctx context.Context, route *models.ResponseRoute) error {
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, route)
	if err != nil {
		return fmt.Errorf("failed to create response route: %w", err)
	}

	return nil
}

func (r *routeRepository) GetByIncidentID(ctx context.Context, incidentID primitive.ObjectID) ([]*models.ResponseRoute, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"incident_id": incidentID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query response routes: %w", err)
	}
	defer cursor.Close(ctx)

	var routes []*models.ResponseRoute
	if err := cursor.All(ctx, &routes); err != nil {
		return nil, fmt.Errorf("failed to decode response routes: %w", err)
	}

	return routes, nil
}

func (r *routeRepository) GetLatestByIncidentID(ctx context.Context, incidentID primitive.ObjectID) (*models.ResponseRoute, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "created_at", Value: -1}})

	var route models.ResponseRoute
	err := r.collection.FindOne(ctx, bson.M{"incident_id": incidentID}, opts).Decode(&route)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("no route found for incident")
		}
		return nil, fmt.Errorf("failed to get latest route: %w", err)
	}

	return &route, nil
}
