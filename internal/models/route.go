package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResponseRoute is an append-only record of one dispatch route computation.
// Every recalculation inserts a new record; the incident's current ETA
// fields are overwritten separately to point at the latest one.
type ResponseRoute struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	IncidentID      primitive.ObjectID `json:"incident_id" bson:"incident_id" validate:"required"`
	Origin          Coordinate         `json:"origin" bson:"origin"`
	Destination     Coordinate         `json:"destination" bson:"destination"`
	Waypoints       []Coordinate       `json:"waypoints" bson:"waypoints"`
	DistanceKM      float64            `json:"distance_km" bson:"distance_km"`
	DurationMinutes float64            `json:"duration_minutes" bson:"duration_minutes"`
	CreatedAt       time.Time          `json:"created_at" bson:"created_at"`
}
