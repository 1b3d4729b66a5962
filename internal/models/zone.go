package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ZoneUnclassified is returned by the classifier when a coordinate cannot be
// assigned to any barangay.
const ZoneUnclassified = "unclassified"

// Zone is a named barangay area. Each polygon is an ordered ring of
// vertices; the centroid backs the nearest-zone fallback. Zones are static
// after the seed migration runs.
type Zone struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name" validate:"required"`
	Polygons  [][]Coordinate     `json:"polygons" bson:"polygons" validate:"required,min=1"`
	Centroid  Coordinate         `json:"centroid" bson:"centroid"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
}

func quad(minLat, minLng, maxLat, maxLng float64) []Coordinate {
	return []Coordinate{
		{Lat: minLat, Lng: minLng},
		{Lat: minLat, Lng: maxLng},
		{Lat: maxLat, Lng: maxLng},
		{Lat: maxLat, Lng: minLng},
	}
}

// DefaultZones is the Manolo Fortich barangay dataset the seed migration
// loads. Slice order is catalog order and decides which zone wins when
// polygons overlap.
func DefaultZones() []*Zone {
	return []*Zone{
		{
			Name:     "Tankulan",
			Polygons: [][]Coordinate{quad(8.345, 124.845, 8.375, 124.875)},
			Centroid: Coordinate{Lat: 8.360, Lng: 124.860},
			Order:    0,
		},
		{
			Name:     "San Miguel",
			Polygons: [][]Coordinate{quad(8.365, 124.865, 8.395, 124.895)},
			Centroid: Coordinate{Lat: 8.380, Lng: 124.880},
			Order:    1,
		},
		{
			Name:     "Damilag",
			Polygons: [][]Coordinate{quad(8.305, 124.775, 8.335, 124.805)},
			Centroid: Coordinate{Lat: 8.320, Lng: 124.790},
			Order:    2,
		},
		{
			Name:     "Alae",
			Polygons: [][]Coordinate{quad(8.385, 124.785, 8.415, 124.815)},
			Centroid: Coordinate{Lat: 8.400, Lng: 124.800},
			Order:    3,
		},
		{
			Name:     "Dahilayan",
			Polygons: [][]Coordinate{quad(8.195, 124.815, 8.225, 124.845)},
			Centroid: Coordinate{Lat: 8.210, Lng: 124.830},
			Order:    4,
		},
		{
			Name:     "Lindaban",
			Polygons: [][]Coordinate{quad(8.295, 124.685, 8.325, 124.715)},
			Centroid: Coordinate{Lat: 8.310, Lng: 124.700},
			Order:    5,
		},
		{
			Name:     "Dalirig",
			Polygons: [][]Coordinate{quad(8.355, 124.925, 8.385, 124.955)},
			Centroid: Coordinate{Lat: 8.370, Lng: 124.940},
			Order:    6,
		},
		{
			Name:     "Mantibugao",
			Polygons: [][]Coordinate{quad(8.435, 124.845, 8.465, 124.875)},
			Centroid: Coordinate{Lat: 8.450, Lng: 124.860},
			Order:    7,
		},
	}
}
