package config

type ClassifierConfig struct {
	FallbackRadiusKM float64 `yaml:"fallback_radius_km"`

	// Municipal bounding box; coordinates outside it are unclassified
	// without running polygon tests.
	BoundsMinLat float64 `yaml:"bounds_min_lat"`
	BoundsMaxLat float64 `yaml:"bounds_max_lat"`
	BoundsMinLng float64 `yaml:"bounds_min_lng"`
	BoundsMaxLng float64 `yaml:"bounds_max_lng"`
}

func loadClassifierConfig() *ClassifierConfig {
	return &ClassifierConfig{
		FallbackRadiusKM: getEnvAsFloat64("CLASSIFIER_FALLBACK_RADIUS_KM", 5.0),
		BoundsMinLat:     getEnvAsFloat64("CLASSIFIER_BOUNDS_MIN_LAT", 8.05),
		BoundsMaxLat:     getEnvAsFloat64("CLASSIFIER_BOUNDS_MAX_LAT", 8.60),
		BoundsMinLng:     getEnvAsFloat64("CLASSIFIER_BOUNDS_MIN_LNG", 124.55),
		BoundsMaxLng:     getEnvAsFloat64("CLASSIFIER_BOUNDS_MAX_LNG", 125.10),
	}
}
