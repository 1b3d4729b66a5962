package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type NotificationTrigger string

const (
	TriggerResponseStarted   NotificationTrigger = "response_started"
	TriggerETAReminder       NotificationTrigger = "eta_reminder"
	TriggerScheduledResponse NotificationTrigger = "scheduled_response"
	TriggerIncidentResolved  NotificationTrigger = "incident_resolved"
	TriggerUpdate            NotificationTrigger = "update"
)

// Notification records are append-only. At most one eta_reminder may ever
// exist per incident; the scheduler checks before writing and a partial
// unique index backs the check.
type Notification struct {
	ID              primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	RecipientID     primitive.ObjectID  `json:"recipient_id" bson:"recipient_id" validate:"required"`
	Title           string              `json:"title" bson:"title" validate:"required"`
	Message         string              `json:"message" bson:"message" validate:"required"`
	TriggerType     NotificationTrigger `json:"trigger_type" bson:"trigger_type" validate:"required"`
	IsAutomated     bool                `json:"is_automated" bson:"is_automated"`
	RelatedReportID *primitive.ObjectID `json:"related_report_id" bson:"related_report_id"`
	IsRead          bool                `json:"is_read" bson:"is_read"`
	ReadAt          *time.Time          `json:"read_at" bson:"read_at"`
	CreatedAt       time.Time           `json:"created_at" bson:"created_at"`
}
