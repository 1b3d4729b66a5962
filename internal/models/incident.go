package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type IncidentStatus string
type IncidentPriority string

const (
	IncidentStatusPending  IncidentStatus = "pending"
	IncidentStatusActive   IncidentStatus = "active"
	IncidentStatusResolved IncidentStatus = "resolved"

	IncidentPriorityLow      IncidentPriority = "low"
	IncidentPriorityMedium   IncidentPriority = "medium"
	IncidentPriorityHigh     IncidentPriority = "high"
	IncidentPriorityCritical IncidentPriority = "critical"
)

func (p IncidentPriority) IsValid() bool {
	switch p {
	case IncidentPriorityLow, IncidentPriorityMedium, IncidentPriorityHigh, IncidentPriorityCritical:
		return true
	}
	return false
}

var statusRank = map[IncidentStatus]int{
	IncidentStatusPending:  0,
	IncidentStatusActive:   1,
	IncidentStatusResolved: 2,
}

// CanTransition reports whether moving from one status to another respects
// the pending -> active -> resolved ordering. Reverts are never allowed.
func CanTransition(from, to IncidentStatus) bool {
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank > fromRank
}

type IncidentReport struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ReporterID primitive.ObjectID `json:"reporter_id" bson:"reporter_id" validate:"required"`

	Title       string           `json:"title" bson:"title" validate:"required"`
	Description string           `json:"description" bson:"description"`
	Priority    IncidentPriority `json:"priority" bson:"priority" default:"medium" validate:"omitempty,priority"`
	Status      IncidentStatus   `json:"status" bson:"status" default:"pending"`

	Coordinate *Coordinate `json:"coordinate" bson:"coordinate" validate:"omitempty,coordinates"`
	ZoneName   string      `json:"zone_name" bson:"zone_name"`

	// ScheduledResponseTime is stored as the raw string the admin client
	// submitted; the scheduler parses it on every pass and treats a parse
	// failure as a per-incident error.
	ScheduledResponseTime *string    `json:"scheduled_response_time" bson:"scheduled_response_time" validate:"omitempty,timestamp"`
	ActualResponseStarted *time.Time `json:"actual_response_started" bson:"actual_response_started"`
	ActualResolvedTime    *time.Time `json:"actual_resolved_time" bson:"actual_resolved_time"`

	CurrentETAMinutes    *float64   `json:"current_eta_minutes" bson:"current_eta_minutes"`
	EstimatedArrivalTime *time.Time `json:"estimated_arrival_time" bson:"estimated_arrival_time"`

	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

func (i *IncidentReport) IsResolved() bool {
	return i.Status == IncidentStatusResolved
}

// IncidentEventType mirrors the change stream operation that produced an
// IncidentEvent.
type IncidentEventType string

const (
	IncidentEventCreated IncidentEventType = "created"
	IncidentEventUpdated IncidentEventType = "updated"
	IncidentEventDeleted IncidentEventType = "deleted"
)

// IncidentEvent is pushed by the store's change stream so other sessions can
// refresh their view of an incident after an external write.
type IncidentEvent struct {
	Type       IncidentEventType  `json:"type"`
	IncidentID primitive.ObjectID `json:"incident_id"`
	Incident   *IncidentReport    `json:"incident,omitempty"`
	Timestamp  time.Time          `json:"timestamp"`
}
