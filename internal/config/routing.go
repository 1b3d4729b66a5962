package config

import (
	"time"
)

type RoutingConfig struct {
	Provider         string        `yaml:"provider"`
	Profile          string        `yaml:"profile"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	CommandCenterLat float64       `yaml:"command_center_lat"`
	CommandCenterLng float64       `yaml:"command_center_lng"`
	OSRM             *OSRMConfig       `yaml:"osrm"`
	GoogleMaps       *GoogleMapsConfig `yaml:"google_maps"`
}

type OSRMConfig struct {
	BaseURL string `yaml:"base_url"`
}

type GoogleMapsConfig struct {
	APIKey string `yaml:"api_key"`
}

func loadRoutingConfig() *RoutingConfig {
	return &RoutingConfig{
		Provider:         getEnv("ROUTING_PROVIDER", "osrm"),
		Profile:          getEnv("ROUTING_PROFILE", "driving"),
		RequestTimeout:   getEnvAsDuration("ROUTING_REQUEST_TIMEOUT", 10*time.Second),
		CommandCenterLat: getEnvAsFloat64("COMMAND_CENTER_LAT", 8.371646),
		CommandCenterLng: getEnvAsFloat64("COMMAND_CENTER_LNG", 124.857026),
		OSRM: &OSRMConfig{
			BaseURL: getEnv("OSRM_BASE_URL", "https://router.project-osrm.org"),
		},
		GoogleMaps: &GoogleMapsConfig{
			APIKey: getEnv("GOOGLE_MAPS_API_KEY", ""),
		},
	}
}
