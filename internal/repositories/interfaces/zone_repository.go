package interfaces

import (
	"context"

	"cityresponse/internal/models"
)

// ZoneRepository reads the static barangay dataset. GetAll returns zones in
// catalog order, which is the tie-break order for overlapping polygons.
type ZoneRepository interface {
	GetAll(ctx context.Context) ([]*models.Zone, error)
	GetByName(ctx context.Context, name string) (*models.Zone, error)
	Count(ctx context.Context) (int64, error)
}
