package utils

import "time"

// Application Constants
const (
	AppName    = "CityResponse"
	AppVersion = "1.0.0"

	DefaultTimeZone = "Asia/Manila"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Geometry
	EarthRadiusKM = 6371.0

	// Classification
	DefaultFallbackRadiusKM = 5.0

	// Dispatch
	DefaultRouteTimeout   = 10 * time.Second
	DefaultDrivingProfile = "driving"

	// Command center (municipal hall, Tankulan)
	DefaultCommandCenterLat = 8.371646
	DefaultCommandCenterLng = 124.857026

	// Scheduler
	DefaultSchedulerInterval   = 60 * time.Second
	DefaultETAReminderWindow   = 3 * time.Minute
	DefaultSchedulerLeaseTTL   = 55 * time.Second
	SchedulerLeaseKey          = "scheduler:lifecycle:lease"
	DefaultIncidentCacheTTL    = 5 * time.Minute
	IncidentCacheKeyPrefix     = "incident:"
	DefaultShutdownGracePeriod = 15 * time.Second
)

// Response Status
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrValidationFailed = "Validation failed"
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrForbidden        = "Access forbidden"
)
