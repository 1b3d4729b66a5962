package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var errFakeNotFound = errors.New("incident not found")

// fakeIncidentRepo is an in-memory IncidentRepository with the same guarded
// update semantics as the mongo implementation.
type fakeIncidentRepo struct {
	mu        sync.Mutex
	incidents map[primitive.ObjectID]*models.IncidentReport

	failCreate bool
}

func newFakeIncidentRepo() *fakeIncidentRepo {
	return &fakeIncidentRepo{
		incidents: make(map[primitive.ObjectID]*models.IncidentReport),
	}
}

func (r *fakeIncidentRepo) put(incident *models.IncidentReport) *models.IncidentReport {
	r.mu.Lock()
	defer r.mu.Unlock()
	if incident.ID.IsZero() {
		incident.ID = primitive.NewObjectID()
	}
	copied := *incident
	r.incidents[incident.ID] = &copied
	return incident
}

func (r *fakeIncidentRepo) Create(ctx context.Context, incident *models.IncidentReport) error {
	if r.failCreate {
		return errors.New("write failed")
	}
	if incident.Status == "" {
		incident.Status = models.IncidentStatusPending
	}
	incident.CreatedAt = time.Now()
	r.put(incident)
	return nil
}

func (r *fakeIncidentRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return nil, errFakeNotFound
	}
	copied := *incident
	return &copied, nil
}

func (r *fakeIncidentRepo) List(ctx context.Context, filter *interfaces.IncidentFilter, params *utils.PaginationParams) ([]*models.IncidentReport, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.IncidentReport
	for _, incident := range r.incidents {
		if filter != nil {
			if filter.Status != "" && incident.Status != filter.Status {
				continue
			}
			if filter.ZoneName != "" && incident.ZoneName != filter.ZoneName {
				continue
			}
			if filter.Priority != "" && incident.Priority != filter.Priority {
				continue
			}
		}
		copied := *incident
		out = append(out, &copied)
	}
	return out, int64(len(out)), nil
}

func (r *fakeIncidentRepo) GetSchedulable(ctx context.Context) ([]*models.IncidentReport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.IncidentReport
	for _, incident := range r.incidents {
		if incident.Status == models.IncidentStatusResolved {
			continue
		}
		copied := *incident
		out = append(out, &copied)
	}
	return out, nil
}

func (r *fakeIncidentRepo) MarkActive(ctx context.Context, id primitive.ObjectID, startedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok || incident.Status != models.IncidentStatusPending {
		return false, nil
	}
	incident.Status = models.IncidentStatusActive
	incident.ActualResponseStarted = &startedAt
	return true, nil
}

func (r *fakeIncidentRepo) MarkResolved(ctx context.Context, id primitive.ObjectID, resolvedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok || incident.Status == models.IncidentStatusResolved {
		return false, nil
	}
	incident.Status = models.IncidentStatusResolved
	incident.ActualResolvedTime = &resolvedAt
	return true, nil
}

func (r *fakeIncidentRepo) SetSchedule(ctx context.Context, id primitive.ObjectID, scheduledResponseTime string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return errFakeNotFound
	}
	incident.ScheduledResponseTime = &scheduledResponseTime
	return nil
}

func (r *fakeIncidentRepo) UpdateETA(ctx context.Context, id primitive.ObjectID, etaMinutes float64, arrival time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	incident, ok := r.incidents[id]
	if !ok {
		return errFakeNotFound
	}
	incident.CurrentETAMinutes = &etaMinutes
	incident.EstimatedArrivalTime = &arrival
	return nil
}

// fakeNotificationRepo is an in-memory NotificationRepository.
type fakeNotificationRepo struct {
	mu            sync.Mutex
	notifications []*models.Notification
}

func newFakeNotificationRepo() *fakeNotificationRepo {
	return &fakeNotificationRepo{}
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *models.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	notification.ID = primitive.NewObjectID()
	notification.CreatedAt = time.Now()
	copied := *notification
	r.notifications = append(r.notifications, &copied)
	return nil
}

func (r *fakeNotificationRepo) ExistsByReportAndTrigger(ctx context.Context, reportID primitive.ObjectID, trigger models.NotificationTrigger) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.RelatedReportID != nil && *n.RelatedReportID == reportID && n.TriggerType == trigger {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeNotificationRepo) GetByRecipient(ctx context.Context, recipientID primitive.ObjectID, params *utils.PaginationParams) ([]*models.Notification, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			out = append(out, n)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeNotificationRepo) GetUnreadCount(ctx context.Context, recipientID primitive.ObjectID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, n := range r.notifications {
		if n.RecipientID == recipientID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (r *fakeNotificationRepo) MarkAsRead(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.ID == id {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) MarkAllAsRead(ctx context.Context, recipientID primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, n := range r.notifications {
		if n.RecipientID == recipientID {
			n.IsRead = true
		}
	}
	return nil
}

func (r *fakeNotificationRepo) byTrigger(trigger models.NotificationTrigger) []*models.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.TriggerType == trigger {
			out = append(out, n)
		}
	}
	return out
}

// fakeRouteRepo is an in-memory RouteRepository.
type fakeRouteRepo struct {
	mu         sync.Mutex
	routes     []*models.ResponseRoute
	failCreate bool
}

func newFakeRouteRepo() *fakeRouteRepo {
	return &fakeRouteRepo{}
}

func (r *fakeRouteRepo) Create(ctx context.Context, route *models.ResponseRoute) error {
	if r.failCreate {
		return errors.New("write failed")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	route.ID = primitive.NewObjectID()
	route.CreatedAt = time.Now()
	copied := *route
	r.routes = append(r.routes, &copied)
	return nil
}

func (r *fakeRouteRepo) GetByIncidentID(ctx context.Context, incidentID primitive.ObjectID) ([]*models.ResponseRoute, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*models.ResponseRoute
	for _, route := range r.routes {
		if route.IncidentID == incidentID {
			out = append(out, route)
		}
	}
	return out, nil
}

func (r *fakeRouteRepo) GetLatestByIncidentID(ctx context.Context, incidentID primitive.ObjectID) (*models.ResponseRoute, error) {
	routes, _ := r.GetByIncidentID(ctx, incidentID)
	if len(routes) == 0 {
		return nil, errFakeNotFound
	}
	return routes[len(routes)-1], nil
}

// fakeZoneRepo serves the default barangay dataset.
type fakeZoneRepo struct {
	zones []*models.Zone
}

func newFakeZoneRepo() *fakeZoneRepo {
	return &fakeZoneRepo{zones: models.DefaultZones()}
}

func (r *fakeZoneRepo) GetAll(ctx context.Context) ([]*models.Zone, error) {
	return r.zones, nil
}

func (r *fakeZoneRepo) GetByName(ctx context.Context, name string) (*models.Zone, error) {
	for _, zone := range r.zones {
		if zone.Name == name {
			return zone, nil
		}
	}
	return nil, errFakeNotFound
}

func (r *fakeZoneRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.zones)), nil
}
