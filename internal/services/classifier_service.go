package services

import (
	"context"
	"fmt"

	"cityresponse/internal/config"
	"cityresponse/internal/models"
	"cityresponse/internal/repositories/interfaces"
	"cityresponse/internal/utils"
	"cityresponse/pkg/logger"
)

// ClassifierService assigns a coordinate to a barangay zone. Classification
// is a pure function over the catalog loaded at construction time.
type ClassifierService interface {
	// Classify returns the zone name for a coordinate, or
	// models.ZoneUnclassified when no zone matches.
	Classify(lat, lng float64) string

	Zones() []*models.Zone
}

type catalogZone struct {
	zone       *models.Zone
	polygons   []utils.Polygon
	polyBounds []*utils.Bounds
	centroid   utils.Point
}

type classifierService struct {
	catalog          []catalogZone
	bounds           utils.Bounds
	fallbackRadiusKM float64
	logger           *logger.Logger
}

// NewClassifierService loads the zone catalog once. Catalog order follows
// the repository's zone ordering and decides which zone wins when polygons
// overlap.
func NewClassifierService(ctx context.Context, zoneRepo interfaces.ZoneRepository, cfg *config.ClassifierConfig, log *logger.Logger) (ClassifierService, error) {
	zones, err := zoneRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load zone catalog: %w", err)
	}
	if len(zones) == 0 {
		return nil, fmt.Errorf("zone catalog is empty")
	}

	catalog := make([]catalogZone, 0, len(zones))
	for _, zone := range zones {
		entry := catalogZone{zone: zone}
		for _, ring := range zone.Polygons {
			polygon := make(utils.Polygon, len(ring))
			for i, vertex := range ring {
				polygon[i] = utils.Point{Lat: vertex.Lat, Lng: vertex.Lng}
			}
			entry.polygons = append(entry.polygons, polygon)
			entry.polyBounds = append(entry.polyBounds, utils.CalculateBounds(polygon))
		}

		// Zones seeded without a centroid fall back to the first ring's
		// vertex average.
		centroid := zone.Centroid
		if centroid.Validate() != nil && len(entry.polygons) > 0 {
			center := utils.CalculateCenter(entry.polygons[0])
			centroid = models.Coordinate{Lat: center.Lat, Lng: center.Lng}
		}
		entry.centroid = utils.Point{Lat: centroid.Lat, Lng: centroid.Lng}

		catalog = append(catalog, entry)
	}

	log.WithField("zones", len(catalog)).Info("Zone catalog loaded")

	return &classifierService{
		catalog: catalog,
		bounds: utils.Bounds{
			Southwest: utils.Point{Lat: cfg.BoundsMinLat, Lng: cfg.BoundsMinLng},
			Northeast: utils.Point{Lat: cfg.BoundsMaxLat, Lng: cfg.BoundsMaxLng},
		},
		fallbackRadiusKM: cfg.FallbackRadiusKM,
		logger:           log,
	}, nil
}

func (s *classifierService) Classify(lat, lng float64) string {
	coord := models.Coordinate{Lat: lat, Lng: lng}
	if err := coord.Validate(); err != nil {
		return models.ZoneUnclassified
	}

	point := utils.Point{Lat: lat, Lng: lng}

	// Outside the municipal bounding box nothing can match; skip the
	// polygon tests entirely.
	if !s.bounds.Contains(point) {
		return models.ZoneUnclassified
	}

	for _, entry := range s.catalog {
		for i, polygon := range entry.polygons {
			if entry.polyBounds[i] != nil && !entry.polyBounds[i].Contains(point) {
				continue
			}
			if utils.IsPointInPolygon(point, polygon) {
				return entry.zone.Name
			}
		}
	}

	// Fallback: nearest centroid within the configured radius.
	nearestName := ""
	nearestDistance := s.fallbackRadiusKM
	for _, entry := range s.catalog {
		distance := utils.CalculateDistance(lat, lng, entry.centroid.Lat, entry.centroid.Lng)
		if distance <= nearestDistance {
			nearestDistance = distance
			nearestName = entry.zone.Name
		}
	}

	if nearestName == "" {
		return models.ZoneUnclassified
	}
	return nearestName
}

func (s *classifierService) Zones() []*models.Zone {
	zones := make([]*models.Zone, len(s.catalog))
	for i, entry := range s.catalog {
		zones[i] = entry.zone
	}
	return zones
}
