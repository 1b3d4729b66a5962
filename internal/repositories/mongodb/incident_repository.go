package mongodb

import (
	"context"
	"fmt"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Cache is the slice of the redis client the repositories need. A nil cache
// disables caching without changing repository behavior.
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type incidentRepository struct {
	collection *mongo.Collection
	cache      Cache
}

func NewIncidentRepository(db *mongo.Database, cache Cache) interfaces.IncidentRepository {
	return &incidentRepository{
		collection: db.Collection("incidents"),
		cache:      cache,
	}
}

func (r *incidentRepository) Create(ctx context.Context, incident *models.IncidentReport) error {
	incident.ID = primitive.NewObjectID()
	if incident.Status == "" {
		incident.Status = models.IncidentStatusPending
	}
	if incident.Priority == "" {
		incident.Priority = models.IncidentPriorityMedium
	}
	incident.CreatedAt = time.Now()
	incident.UpdatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, incident)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	return nil
}

func (r *incidentRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error) {
	if r.cache != nil {
		var cached models.IncidentReport
		if err := r.cache.Get(ctx, incidentCacheKey(id), &cached); err == nil {
			return &cached, nil
		}
	}

	var incident models.IncidentReport
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&incident)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("incident not found")
		}
		return nil, fmt.Errorf("failed to get incident: %w", err)
	}

	if r.cache != nil {
		r.cache.Set(ctx, incidentCacheKey(id), &incident, utils.DefaultIncidentCacheTTL)
	}

	return &incident, nil
}

func (r *incidentRepository) List(ctx context.Context, filter *interfaces.IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error) {
	query := bson.M{}
	if filter != nil {
		if filter.Status != "" {
			query["status"] = filter.Status
		}
		if filter.ZoneName != "" {
			query["zone_name"] = filter.ZoneName
		}
		if filter.Priority != "" {
			query["priority"] = filter.Priority
		}
	}

	if params == nil {
		params = utils.DefaultPaginationParams()
	}

	total, err := r.collection.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count incidents: %w", err)
	}

	cursor, err := r.collection.Find(ctx, query, params.MongoFindOptions())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer cursor.Close(ctx)

	var incidents []*models.IncidentReport
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, 0, fmt.Errorf("failed to decode incidents: %w", err)
	}

	return incidents, total, nil
}

func (r *incidentRepository) GetSchedulable(ctx context.Context) ([]*models.IncidentReport, error) {
	filter := bson.M{
		"status": bson.M{"$in": []models.IncidentStatus{
			models.IncidentStatusPending,
			models.IncidentStatusActive,
		}},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query schedulable incidents: %w", err)
	}
	defer cursor.Close(ctx)

	var incidents []*models.IncidentReport
	if err := cursor.All(ctx, &incidents); err != nil {
		return nil, fmt.Errorf("failed to decode schedulable incidents: %w", err)
	}

	return incidents, nil
}

func (r *incidentRepository) MarkActive(ctx context.Context, id primitive.ObjectID, startedAt time.Time) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": models.IncidentStatusPending},
		bson.M{"$set": bson.M{
			"status":                  models.IncidentStatusActive,
			"actual_response_started": startedAt,
			"updated_at":              time.Now(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark incident active: %w", err)
	}

	r.invalidate(ctx, id)
	return result.ModifiedCount > 0, nil
}

func (r *incidentRepository) MarkResolved(ctx context.Context, id primitive.ObjectID, resolvedAt time.Time) (bool, error) {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.IncidentStatusResolved}},
		bson.M{"$set": bson.M{
			"status":               models.IncidentStatusResolved,
			"actual_resolved_time": resolvedAt,
			"updated_at":           time.Now(),
		}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to mark incident resolved: %w", err)
	}

	r.invalidate(ctx, id)
	return result.ModifiedCount > 0, nil
}

func (r *incidentRepository) SetSchedule(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"scheduled_response_time": scheduledResponseTime,
			"updated_at":              time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to set incident schedule: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident not found")
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *incidentRepository) UpdateETA(ctx context.Context, id primitive.ObjectID, etaMinutes float64, arrival time.Time) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"current_eta_minutes":    etaMinutes,
			"estimated_arrival_time": arrival,
			"updated_at":             time.Now(),
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update incident ETA: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("incident not found")
	}

	r.invalidate(ctx, id)
	return nil
}

func (r *incidentRepository) invalidate(ctx context.Context, id primitive.ObjectID) {
	if r.cache != nil {
		r.cache.Delete(ctx, incidentCacheKey(id))
	}
}

func incidentCacheKey(id primitive.ObjectID) string {
	return utils.IncidentCacheKeyPrefix + id.Hex()
}
