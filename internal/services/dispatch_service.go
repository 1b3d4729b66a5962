package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"cityresponse/internal/config"
	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"
	"cityresponse/pkg/logger"
	"cityresponse/pkg/routing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RouteResult is returned to the caller on every successful computation,
// whether or not persistence was requested, so the UI can render
// immediately.
type RouteResult struct {
	RouteID          *primitive.ObjectID `json:"route_id,omitempty"`
	IncidentID       *primitive.ObjectID `json:"incident_id,omitempty"`
	Origin           models.Coordinate   `json:"origin"`
	Destination      models.Coordinate   `json:"destination"`
	Waypoints        []models.Coordinate `json:"waypoints"`
	DistanceKM       float64             `json:"distance_km"`
	DurationMinutes  float64             `json:"duration_minutes"`
	EstimatedArrival time.Time           `json:"estimated_arrival"`
}

type DispatchService interface {
	// ComputeRoute computes a driving route from origin to destination. A
	// nil origin means the command center. When incidentID is set the
	// route is persisted and the incident's ETA fields are overwritten.
	ComputeRoute(ctx context.Context, origin *models.Coordinate, destination models.Coordinate, incidentID *primitive.ObjectID) (*RouteResult, error)

	// DisplayedRoute returns the route currently held for display, if any.
	DisplayedRoute() *RouteResult

	// ClearDisplayedRoute drops the caller-held display flag.
	ClearDisplayedRoute()
}

type dispatchService struct {
	provider     routing.RouteProvider
	incidentRepo interfaces.IncidentRepository
	routeRepo    interfaces.RouteRepository
	cfg          *config.RoutingConfig
	logger       *logger.Logger
	now          func() time.Time

	mu        sync.Mutex
	displayed *RouteResult
}

func NewDispatchService(
	provider routing.RouteProvider,
	incidentRepo interfaces.IncidentRepository,
	routeRepo interfaces.RouteRepository,
	cfg *config.RoutingConfig,
	log *logger.Logger,
) DispatchService {
	return &dispatchService{
		provider:     provider,
		incidentRepo: incidentRepo,
		routeRepo:    routeRepo,
		cfg:          cfg,
		logger:       log,
		now:          time.Now,
	}
}

func (s *dispatchService) ComputeRoute(ctx context.Context, origin *models.Coordinate, destination models.Coordinate, incidentID *primitive.ObjectID) (*RouteResult, error) {
	if err := destination.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	from := models.Coordinate{Lat: s.cfg.CommandCenterLat, Lng: s.cfg.CommandCenterLng}
	if origin != nil {
		if err := origin.Validate(); err != nil {
			return nil, fmt.Errorf("%w: invalid origin: %v", ErrInvalidDestination, err)
		}
		from = *origin
	}

	// Resolved incidents reject before any network call.
	if incidentID != nil {
		incident, err := s.incidentRepo.GetByID(ctx, *incidentID)
		if err != nil {
			return nil, fmt.Errorf("%w: incident %s", ErrNotFound, incidentID.Hex())
		}
		if incident.IsResolved() {
			return nil, fmt.Errorf("%w: incident %s is resolved", ErrStateConflict, incidentID.Hex())
		}
	}

	request := &routing.DirectionsRequest{
		Origin:      routing.Location{Latitude: from.Lat, Longitude: from.Lng},
		Destination: routing.Location{Latitude: destination.Lat, Longitude: destination.Lng},
		Profile:     s.cfg.Profile,
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.RequestTimeout)
	defer cancel()

	response, err := s.provider.GetDirections(callCtx, request)
	if err != nil {
		if errors.Is(err, routing.ErrNoRoute) {
			return nil, fmt.Errorf("%w: %v", ErrRouteUnavailable, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	if len(response.Routes) == 0 {
		return nil, ErrRouteUnavailable
	}

	route := response.Routes[0]
	distanceKM := utils.MetersToKM(route.DistanceMeters)
	durationMinutes := utils.SecondsToMinutes(route.DurationSeconds)

	waypoints := make([]models.Coordinate, len(route.Geometry))
	for i, point := range route.Geometry {
		waypoints[i] = models.Coordinate{Lat: point.Latitude, Lng: point.Longitude}
	}

	invokedAt := s.now()
	result := &RouteResult{
		IncidentID:       incidentID,
		Origin:           from,
		Destination:      destination,
		Waypoints:        waypoints,
		DistanceKM:       distanceKM,
		DurationMinutes:  durationMinutes,
		EstimatedArrival: invokedAt.Add(time.Duration(durationMinutes * float64(time.Minute))),
	}

	if incidentID != nil {
		record := &models.ResponseRoute{
			IncidentID:      *incidentID,
			Origin:          from,
			Destination:     destination,
			Waypoints:       waypoints,
			DistanceKM:      distanceKM,
			DurationMinutes: durationMinutes,
		}

		if err := s.routeRepo.Create(ctx, record); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		result.RouteID = &record.ID

		if err := s.incidentRepo.UpdateETA(ctx, *incidentID, durationMinutes, result.EstimatedArrival); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}

		s.logger.WithIncidentID(*incidentID).WithFields(map[string]interface{}{
			"distance_km":       distanceKM,
			"duration_minutes":  durationMinutes,
			"estimated_arrival": utils.FormatTimeISO(result.EstimatedArrival),
		}).Info("Dispatch route persisted")
	}

	s.mu.Lock()
	s.displayed = result
	s.mu.Unlock()

	return result, nil
}

func (s *dispatchService) DisplayedRoute() *RouteResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.displayed
}

func (s *dispatchService) ClearDisplayedRoute() {
	s.mu.Lock()
	s.displayed = nil
	s.mu.Unlock()
}
