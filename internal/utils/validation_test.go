package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestampRFC3339(t *testing.T) {
	parsed, err := ParseTimestamp("2026-08-28T09:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC), parsed)

	withOffset, err := ParseTimestamp("2026-08-28T17:00:00+08:00")
	require.NoError(t, err)
	assert.True(t, parsed.Equal(withOffset))
}

func TestParseTimestampLegacyLayout(t *testing.T) {
	parsed, err := ParseTimestamp("2026-08-28 09:00:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC), parsed)
}

func TestParseTimestampMalformed(t *testing.T) {
	for _, value := range []string{"", "tomorrow", "28/08/2026", "2026-08-28"} {
		_, err := ParseTimestamp(value)
		assert.Error(t, err, "value %q", value)
	}
}

type latLng struct {
	Lat float64
	Lng float64
}

type validatedPayload struct {
	Coordinate *latLng `validate:"omitempty,coordinates"`
	Scheduled  *string `validate:"omitempty,timestamp"`
	Priority   string  `validate:"omitempty,priority"`
}

func TestValidateStructCustomRules(t *testing.T) {
	scheduled := "2026-08-28 09:00:00"
	assert.NoError(t, ValidateStruct(&validatedPayload{
		Coordinate: &latLng{Lat: 8.36, Lng: 124.86},
		Scheduled:  &scheduled,
		Priority:   "high",
	}))

	// Empty optional fields pass untouched.
	assert.NoError(t, ValidateStruct(&validatedPayload{}))

	assert.Error(t, ValidateStruct(&validatedPayload{Coordinate: &latLng{}}))
	assert.Error(t, ValidateStruct(&validatedPayload{Coordinate: &latLng{Lat: 91, Lng: 124.86}}))

	malformed := "next tuesday"
	assert.Error(t, ValidateStruct(&validatedPayload{Scheduled: &malformed}))

	assert.Error(t, ValidateStruct(&validatedPayload{Priority: "urgent"}))
}

func TestValidateStructCoordinateSlice(t *testing.T) {
	type payload struct {
		Coordinates []float64 `validate:"coordinates"`
	}

	assert.NoError(t, ValidateStruct(&payload{Coordinates: []float64{8.36, 124.86}}))
	assert.Error(t, ValidateStruct(&payload{Coordinates: []float64{8.36}}))
	assert.Error(t, ValidateStruct(&payload{Coordinates: []float64{0, 0}}))
}
