package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type OSRMProvider struct {
	httpClient *http.Client
	baseURL    string
}

func NewOSRMProvider(baseURL string, timeout time.Duration) *OSRMProvider {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

func (o *OSRMProvider) GetDirections(ctx context.Context, request *DirectionsRequest) (*DirectionsResponse, error) {
	profile := "driving"
	if request.Profile != "" {
		profile = request.Profile
	}

	// OSRM takes coordinates in lng,lat order.
	apiURL := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson",
		o.baseURL, profile,
		request.Origin.Longitude, request.Origin.Latitude,
		request.Destination.Longitude, request.Destination.Latitude)

	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return nil, ErrNoRoute
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OSRM API error: %s", string(body))
	}

	var osrmResp struct {
		Code   string `json:"code"`
		Routes []struct {
			Distance float64 `json:"distance"`
			Duration float64 `json:"duration"`
			Geometry struct {
				Coordinates [][]float64 `json:"coordinates"`
			} `json:"geometry"`
		} `json:"routes"`
	}

	err = json.Unmarshal(body, &osrmResp)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if osrmResp.Code != "Ok" || len(osrmResp.Routes) == 0 {
		return nil, ErrNoRoute
	}

	routes := make([]Route, len(osrmResp.Routes))
	for i, route := range osrmResp.Routes {
		geometry := make([]Location, 0, len(route.Geometry.Coordinates))
		for _, pair := range route.Geometry.Coordinates {
			if len(pair) < 2 {
				continue
			}
			// GeoJSON pairs arrive as (lng,lat); swap to (lat,lng).
			geometry = append(geometry, Location{
				Latitude:  pair[1],
				Longitude: pair[0],
			})
		}

		routes[i] = Route{
			DistanceMeters:  route.Distance,
			DurationSeconds: route.Duration,
			Geometry:        geometry,
		}
	}

	return &DirectionsResponse{Routes: routes}, nil
}
