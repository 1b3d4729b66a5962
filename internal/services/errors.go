package services

import "errors"

// Failure taxonomy surfaced to handlers. Wrapped causes stay inspectable
// through errors.Is / errors.Unwrap.
var (
	// ErrValidation covers malformed input that is rejected before any
	// network or store call, e.g. an unparseable timestamp.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidDestination covers malformed or out-of-range destination
	// coordinates, rejected before any network or store call.
	ErrInvalidDestination = errors.New("invalid destination coordinate")

	// ErrStateConflict marks an operation that is not valid for the
	// incident's current status, e.g. routing a resolved incident.
	ErrStateConflict = errors.New("operation conflicts with incident status")

	// ErrRouteUnavailable means the routing service answered but produced
	// no usable route.
	ErrRouteUnavailable = errors.New("route unavailable")

	// ErrNetwork marks transport-level routing failures, including the 10s
	// request timeout.
	ErrNetwork = errors.New("routing service unreachable")

	// ErrPersistence marks a failed Data Store write.
	ErrPersistence = errors.New("store write failed")

	ErrNotFound = errors.New("not found")
)
