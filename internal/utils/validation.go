package utils

import (
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validators
	validate.RegisterValidation("coordinates", validateCoordinates)
	validate.RegisterValidation("timestamp", validateTimestamp)
	validate.RegisterValidation("priority", validatePriority)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateCoordinates accepts either a struct carrying Lat/Lng float fields
// or a [lat, lng] float slice. (0,0) is treated as a missing reading.
func validateCoordinates(fl validator.FieldLevel) bool {
	field := fl.Field()

	if field.Kind() == reflect.Struct {
		lat := field.FieldByName("Lat")
		lng := field.FieldByName("Lng")
		if !lat.IsValid() || !lng.IsValid() || lat.Kind() != reflect.Float64 || lng.Kind() != reflect.Float64 {
			return false
		}
		return isUsableCoordinate(lat.Float(), lng.Float())
	}

	coords, ok := field.Interface().([]float64)
	if !ok || len(coords) != 2 {
		return false
	}
	return isUsableCoordinate(coords[0], coords[1])
}

func isUsableCoordinate(lat, lng float64) bool {
	if lat == 0 && lng == 0 {
		return false
	}
	return IsValidCoordinates(lat, lng)
}

func validateTimestamp(fl validator.FieldLevel) bool {
	_, err := ParseTimestamp(fl.Field().String())
	return err == nil
}

func validatePriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "low", "medium", "high", "critical":
		return true
	}
	return false
}

// ParseTimestamp accepts the timestamp formats admin clients have been
// observed to submit. RFC3339 is canonical; the space-separated layout
// covers older dashboard exports.
func ParseTimestamp(value string) (time.Time, error) {
	if t, err := ParseTimeISO(value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}
