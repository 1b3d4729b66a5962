package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(IncidentStatusPending, IncidentStatusActive))
	assert.True(t, CanTransition(IncidentStatusPending, IncidentStatusResolved))
	assert.True(t, CanTransition(IncidentStatusActive, IncidentStatusResolved))

	// Reverts and self-transitions are never allowed.
	assert.False(t, CanTransition(IncidentStatusActive, IncidentStatusPending))
	assert.False(t, CanTransition(IncidentStatusResolved, IncidentStatusActive))
	assert.False(t, CanTransition(IncidentStatusResolved, IncidentStatusPending))
	assert.False(t, CanTransition(IncidentStatusPending, IncidentStatusPending))

	assert.False(t, CanTransition("unknown", IncidentStatusActive))
}

func TestPriorityIsValid(t *testing.T) {
	assert.True(t, IncidentPriorityLow.IsValid())
	assert.True(t, IncidentPriorityCritical.IsValid())
	assert.False(t, IncidentPriority("urgent").IsValid())
	assert.False(t, IncidentPriority("").IsValid())
}

func TestDefaultZonesCatalog(t *testing.T) {
	zones := DefaultZones()
	assert.Len(t, zones, 8)

	for i, zone := range zones {
		assert.Equal(t, i, zone.Order)
		assert.NotEmpty(t, zone.Name)
		assert.NotEmpty(t, zone.Polygons)
		assert.NoError(t, zone.Centroid.Validate())
	}
}
