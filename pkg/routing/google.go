package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

type GoogleMapsProvider struct {
	client *maps.Client
}

func NewGoogleMapsProvider(apiKey string) (*GoogleMapsProvider, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Google Maps client: %w", err)
	}

	return &GoogleMapsProvider{
		client: client,
	}, nil
}

func (g *GoogleMapsProvider) GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error) {
	mode := maps.TravelModeDriving
	switch request.Profile {
	case "walking":
		mode = maps.TravelModeWalking
	case "cycling":
		mode = maps.TravelModeBicycling
	}

	req := &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", request.Origin.Latitude, request.Origin.Longitude),
		Destination: fmt.Sprintf("%f,%f", request.Destination.Latitude, request.Destination.Longitude),
		Mode:        mode,
	}

	googleRoutes, _, err := g.client.Directions(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("directions request failed: %w", err)
	}

	if len(googleRoutes) == 0 {
		return nil, ErrNoRoute
	}

	routes := make([]Route, len(googleRoutes))
	for i, route := range googleRoutes {
		var distanceMeters float64
		var durationSeconds float64
		for _, leg := range route.Legs {
			distanceMeters += float64(leg.Distance.Meters)
			durationSeconds += leg.Duration.Seconds()
		}

		var geometry []Location
		points, err := route.OverviewPolyline.Decode()
		if err == nil {
			geometry = make([]Location, len(points))
			for j, point := range points {
				geometry[j] = Location{
					Latitude:  point.Lat,
					Longitude: point.Lng,
				}
			}
		}

		routes[i] = Route{
			DistanceMeters:  distanceMeters,
			DurationSeconds: durationSeconds,
			Geometry:        geometry,
		}
	}

	return &DirectionsResponse{Routes: routes}, nil
}
