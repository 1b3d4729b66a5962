package interfaces

import (
	"context"

	"cityresponse/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RouteRepository is append-only: routes are inserted and read, never
// mutated or deleted.
type RouteRepository interface {
	Create(ctx context.Context, route *models.ResponseRoute) error
	GetByIncidentID(ctx context.Context, incidentID primitive.ObjectID) ([]*models.ResponseRoute, error)
	GetLatestByIncidentID(ctx context.Context, incidentID primitive.ObjectID) (*models.ResponseRoute, error)
}
