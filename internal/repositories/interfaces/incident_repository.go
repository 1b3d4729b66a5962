package interfaces

import (
	"context"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncidentFilter struct {
	Status   models.IncidentStatus
	ZoneName string
	Priority models.IncidentPriority
}

type IncidentRepository interface {
	Create(ctx context.Context, incident *models.IncidentReport) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error)
	List(ctx context.Context, filter *IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error)

	// GetSchedulable returns every non-terminal incident (pending or
	// active) for a scheduler pass.
	GetSchedulable(ctx context.Context) ([]*models.IncidentReport, error)

	// MarkActive advances pending -> active with a status-guarded update.
	// It reports false when the incident was no longer pending, which makes
	// the transition idempotent under repeated polling.
	MarkActive(ctx context.Context, id primitive.ObjectID, startedAt time.Time) (bool, error)

	// MarkResolved advances a non-resolved incident to resolved, same
	// guarded-update semantics as MarkActive.
	MarkResolved(ctx context.Context, id primitive.ObjectID, resolvedAt time.Time) (bool, error)

	SetSchedule(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error

	// UpdateETA overwrites the incident's current ETA fields after a route
	// recalculation.
	UpdateETA(ctx context.Context, id primitive.ObjectID, etaMinutes float64, arrival time.Time) error
}
