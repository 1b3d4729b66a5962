package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"cityresponse/internal/config"
	"cityresponse/internal/models"
	"cityresponse/pkg/logger"
	"cityresponse/pkg/routing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRouteProvider struct {
	response *routing.DirectionsResponse
	err      error
	calls    int
}

func (p *fakeRouteProvider) GetDirections(ctx context.Context, request *routing.DirectionsRequest) (*routing.DirectionsResponse, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func testRoutingConfig() *config.RoutingConfig {
	return &config.RoutingConfig{
		Provider:         "osrm",
		Profile:          "driving",
		RequestTimeout:   10 * time.Second,
		CommandCenterLat: 8.371646,
		CommandCenterLng: 124.857026,
	}
}

func newDispatchFixture(provider routing.RouteProvider) (*dispatchService, *fakeIncidentRepo, *fakeRouteRepo) {
	incidentRepo := newFakeIncidentRepo()
	routeRepo := newFakeRouteRepo()
	svc := NewDispatchService(provider, incidentRepo, routeRepo, testRoutingConfig(), logger.NewNopLogger()).(*dispatchService)
	return svc, incidentRepo, routeRepo
}

func singleRouteResponse() *routing.DirectionsResponse {
	return &routing.DirectionsResponse{
		Routes: []routing.Route{
			{
				DistanceMeters:  2300,
				DurationSeconds: 360,
				Geometry: []routing.Location{
					{Latitude: 8.371646, Longitude: 124.857026},
					{Latitude: 8.38, Longitude: 124.88},
				},
			},
		},
	}
}

func TestComputeRouteConvertsUnits(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, _, _ := newDispatchFixture(provider)

	invokedAt := time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return invokedAt }

	result, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2.3, result.DistanceKM)
	assert.Equal(t, 6.0, result.DurationMinutes)
	assert.Equal(t, invokedAt.Add(6*time.Minute), result.EstimatedArrival)

	// Nil origin means the command center.
	assert.Equal(t, models.Coordinate{Lat: 8.371646, Lng: 124.857026}, result.Origin)
	assert.Len(t, result.Waypoints, 2)
	assert.Nil(t, result.RouteID)
}

func TestComputeRouteRejectsInvalidDestination(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, _, _ := newDispatchFixture(provider)

	_, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{}, nil)
	assert.ErrorIs(t, err, ErrInvalidDestination)

	_, err = svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 91, Lng: 124.88}, nil)
	assert.ErrorIs(t, err, ErrInvalidDestination)

	origin := models.Coordinate{Lat: 0, Lng: 0}
	_, err = svc.ComputeRoute(context.Background(), &origin, models.Coordinate{Lat: 8.38, Lng: 124.88}, nil)
	assert.ErrorIs(t, err, ErrInvalidDestination)

	assert.Zero(t, provider.calls, "invalid input must never reach the provider")
}

func TestComputeRouteResolvedIncidentConflicts(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, incidentRepo, _ := newDispatchFixture(provider)

	incident := incidentRepo.put(&models.IncidentReport{Status: models.IncidentStatusResolved})

	_, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, &incident.ID)
	assert.ErrorIs(t, err, ErrStateConflict)
	assert.Zero(t, provider.calls, "state conflicts must reject before any network call")
}

func TestComputeRoutePersistsForIncident(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, incidentRepo, routeRepo := newDispatchFixture(provider)

	incident := incidentRepo.put(&models.IncidentReport{Status: models.IncidentStatusActive})

	result, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, &incident.ID)
	require.NoError(t, err)
	require.NotNil(t, result.RouteID)

	routes, err := routeRepo.GetByIncidentID(context.Background(), incident.ID)
	require.NoError(t, err)
	require.Len(t, routes, 1)
	assert.Equal(t, 2.3, routes[0].DistanceKM)
	assert.Equal(t, 6.0, routes[0].DurationMinutes)

	stored, err := incidentRepo.GetByID(context.Background(), incident.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.CurrentETAMinutes)
	assert.Equal(t, 6.0, *stored.CurrentETAMinutes)
	require.NotNil(t, stored.EstimatedArrivalTime)
}

func TestComputeRouteNoRoute(t *testing.T) {
	provider := &fakeRouteProvider{err: routing.ErrNoRoute}
	svc, _, _ := newDispatchFixture(provider)

	_, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, nil)
	assert.ErrorIs(t, err, ErrRouteUnavailable)
}

func TestComputeRouteNetworkFailure(t *testing.T) {
	provider := &fakeRouteProvider{err: errors.New("connection refused")}
	svc, _, _ := newDispatchFixture(provider)

	_, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, nil)
	assert.ErrorIs(t, err, ErrNetwork)
}

func TestComputeRoutePersistenceFailure(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, incidentRepo, routeRepo := newDispatchFixture(provider)
	routeRepo.failCreate = true

	incident := incidentRepo.put(&models.IncidentReport{Status: models.IncidentStatusActive})

	_, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, &incident.ID)
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestDisplayedRouteLifecycle(t *testing.T) {
	provider := &fakeRouteProvider{response: singleRouteResponse()}
	svc, _, _ := newDispatchFixture(provider)

	assert.Nil(t, svc.DisplayedRoute())

	result, err := svc.ComputeRoute(context.Background(), nil, models.Coordinate{Lat: 8.38, Lng: 124.88}, nil)
	require.NoError(t, err)
	assert.Equal(t, result, svc.DisplayedRoute())

	svc.ClearDisplayedRoute()
	assert.Nil(t, svc.DisplayedRoute())
}
