package routing

import (
	"context"
	"errors"
)

// ErrNoRoute is returned by a provider when the service responds but cannot
// produce a path between the two points. Transport failures are returned
// as-is so callers can tell the two cases apart.
var ErrNoRoute = errors.New("no route found")

type RouteProvider interface {
	GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error)
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type DirectionsRequest struct {
	Origin      Location `json:"origin"`
	Destination Location `json:"destination"`
	Profile     string   `json:"profile"` // driving, walking, cycling
}

type DirectionsResponse struct {
	Routes []Route `json:"routes"`
}

// Route carries provider-native units: meters and seconds. Geometry is
// normalized to (lat,lng) by each provider adapter before it leaves this
// package, regardless of the wire axis order.
type Route struct {
	DistanceMeters  float64    `json:"distance_meters"`
	DurationSeconds float64    `json:"duration_seconds"`
	Geometry        []Location `json:"geometry"`
}
