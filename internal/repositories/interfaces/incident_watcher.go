package interfaces

import (
	"context"

	"cityresponse/internal/models"
)

// IncidentWatcher abstracts the store's push-based change stream so the
// transport (Mongo change streams today) is swappable.
type IncidentWatcher interface {
	// Watch emits an event per external write until ctx is cancelled. The
	// returned channel is closed when the stream ends.
	Watch(ctx context.Context) (<-chan models.IncidentEvent, error)
}
