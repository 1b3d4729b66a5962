package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var square = Polygon{
	{Lat: 8.345, Lng: 124.845},
	{Lat: 8.345, Lng: 124.875},
	{Lat: 8.375, Lng: 124.875},
	{Lat: 8.375, Lng: 124.845},
}

func TestIsPointInPolygon(t *testing.T) {
	assert.True(t, IsPointInPolygon(Point{Lat: 8.360, Lng: 124.860}, square))
	assert.False(t, IsPointInPolygon(Point{Lat: 8.400, Lng: 124.860}, square))
	assert.False(t, IsPointInPolygon(Point{Lat: 8.360, Lng: 124.900}, square))
}

func TestIsPointInPolygonDegenerateRing(t *testing.T) {
	line := Polygon{{Lat: 8.3, Lng: 124.8}, {Lat: 8.4, Lng: 124.9}}
	assert.False(t, IsPointInPolygon(Point{Lat: 8.35, Lng: 124.85}, line))
	assert.False(t, IsPointInPolygon(Point{Lat: 8.35, Lng: 124.85}, Polygon{}))
}

func TestIsPointInPolygonConcave(t *testing.T) {
	// L-shape: the notch at the top-right is outside.
	lShape := Polygon{
		{Lat: 0, Lng: 0},
		{Lat: 0, Lng: 4},
		{Lat: 2, Lng: 4},
		{Lat: 2, Lng: 2},
		{Lat: 4, Lng: 2},
		{Lat: 4, Lng: 0},
	}

	assert.True(t, IsPointInPolygon(Point{Lat: 1, Lng: 1}, lShape))
	assert.True(t, IsPointInPolygon(Point{Lat: 3, Lng: 1}, lShape))
	assert.False(t, IsPointInPolygon(Point{Lat: 3, Lng: 3}, lShape))
}

func TestCalculateDistance(t *testing.T) {
	// Tankulan centroid to San Miguel centroid, roughly 3.1km.
	distance := CalculateDistance(8.360, 124.860, 8.380, 124.880)
	assert.InDelta(t, 3.1, distance, 0.2)

	assert.Zero(t, CalculateDistance(8.360, 124.860, 8.360, 124.860))
}

func TestBoundsContains(t *testing.T) {
	bounds := Bounds{
		Southwest: Point{Lat: 8.05, Lng: 124.55},
		Northeast: Point{Lat: 8.60, Lng: 125.10},
	}

	assert.True(t, bounds.Contains(Point{Lat: 8.36, Lng: 124.86}))
	assert.True(t, bounds.Contains(Point{Lat: 8.05, Lng: 124.55}))
	assert.False(t, bounds.Contains(Point{Lat: 8.00, Lng: 124.86}))
	assert.False(t, bounds.Contains(Point{Lat: 8.36, Lng: 125.20}))
}

func TestCalculateCenter(t *testing.T) {
	center := CalculateCenter(square)
	assert.InDelta(t, 8.360, center.Lat, 1e-9)
	assert.InDelta(t, 124.860, center.Lng, 1e-9)

	assert.Equal(t, Point{}, CalculateCenter(nil))
}

func TestCalculateBounds(t *testing.T) {
	bounds := CalculateBounds(square)
	assert.Equal(t, Point{Lat: 8.345, Lng: 124.845}, bounds.Southwest)
	assert.Equal(t, Point{Lat: 8.375, Lng: 124.875}, bounds.Northeast)

	assert.Nil(t, CalculateBounds(nil))
}

func TestIsPointInCircle(t *testing.T) {
	center := Point{Lat: 8.320, Lng: 124.790}

	assert.True(t, IsPointInCircle(Point{Lat: 8.29, Lng: 124.76}, center, 5.0))
	assert.False(t, IsPointInCircle(Point{Lat: 8.29, Lng: 124.76}, center, 4.0))
}

func TestMetersToKM(t *testing.T) {
	assert.Equal(t, 2.3, MetersToKM(2300))
	assert.Equal(t, 6.0, SecondsToMinutes(360))
}
