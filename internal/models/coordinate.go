package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrCoordinateNullIsland = errors.New("coordinate is (0,0)")
	ErrCoordinateMalformed  = errors.New("coordinate is malformed")
)

// Coordinate is a (lat,lng) pair. Stored internally in lat/lng order;
// external payloads that arrive in lng/lat order must be swapped before
// construction.
type Coordinate struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lng < -180 || c.Lng > 180 {
		return ErrCoordinateOutOfRange
	}
	if c.Lat == 0 && c.Lng == 0 {
		return ErrCoordinateNullIsland
	}
	return nil
}

func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lng)
}

// ParseCoordinate accepts the loose shapes coordinates arrive in from
// clients and photo metadata: a {"lat":..,"lng":..} object, a GeoJSON-style
// [lng,lat] array, or a "lat,lng" string. The result is validated before it
// is returned.
func ParseCoordinate(raw interface{}) (Coordinate, error) {
	var coord Coordinate

	switch v := raw.(type) {
	case Coordinate:
		coord = v
	case *Coordinate:
		if v == nil {
			return Coordinate{}, ErrCoordinateMalformed
		}
		coord = *v
	case map[string]interface{}:
		lat, okLat := toFloat(v["lat"])
		lng, okLng := toFloat(v["lng"])
		if !okLat || !okLng {
			return Coordinate{}, ErrCoordinateMalformed
		}
		coord = Coordinate{Lat: lat, Lng: lng}
	case []interface{}:
		if len(v) != 2 {
			return Coordinate{}, ErrCoordinateMalformed
		}
		lng, okLng := toFloat(v[0])
		lat, okLat := toFloat(v[1])
		if !okLat || !okLng {
			return Coordinate{}, ErrCoordinateMalformed
		}
		coord = Coordinate{Lat: lat, Lng: lng}
	case []float64:
		if len(v) != 2 {
			return Coordinate{}, ErrCoordinateMalformed
		}
		coord = Coordinate{Lat: v[1], Lng: v[0]}
	case string:
		parts := strings.Split(v, ",")
		if len(parts) != 2 {
			return Coordinate{}, ErrCoordinateMalformed
		}
		lat, errLat := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
		lng, errLng := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if errLat != nil || errLng != nil {
			return Coordinate{}, ErrCoordinateMalformed
		}
		coord = Coordinate{Lat: lat, Lng: lng}
	default:
		return Coordinate{}, ErrCoordinateMalformed
	}

	if err := coord.Validate(); err != nil {
		return Coordinate{}, err
	}
	return coord, nil
}

// UnmarshalJSON routes every inbound JSON shape through ParseCoordinate so
// handlers and stored documents share one validation path.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrCoordinateMalformed
	}
	coord, err := ParseCoordinate(raw)
	if err != nil {
		return err
	}
	*c = coord
	return nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		return f, err == nil
	default:
		return 0, false
	}
}
