package models

import (
	"errors"
	"fmt"
)

// Sentinel errors of the tracking core. Handlers match these with errors.Is/errors.As
// and are the only place they are turned into user-visible responses
var (
	// ErrContractNotFound - the backend has no row for the requested contract id
	ErrContractNotFound = errors.New("contract not found")

	// ErrServiceUnavailable - the routing provider or map is not ready yet
	ErrServiceUnavailable = errors.New("routing service unavailable")

	// ErrNoActiveSession - a session operation was requested before a contract was tracked
	ErrNoActiveSession = errors.New("no active tracking session")
)

// TransportError - a network or backend failure on fetch, retryable by re-submitting the id
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// MissingLocationError - a directions run was requested while one of the three
// positions is still unknown
type MissingLocationError struct {
	Which string
}

func (e *MissingLocationError) Error() string {
	return fmt.Sprintf("missing %s location", e.Which)
}

// CooldownActiveError - a directions run was requested before the cooldown window elapsed
type CooldownActiveError struct {
	RemainingSeconds int
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("directions cooldown active, %d seconds remaining", e.RemainingSeconds)
}

// DirectionsError - one of the two routing queries failed; the previous result is kept
type DirectionsError struct {
	Err error
}

func (e *DirectionsError) Error() string {
	return fmt.Sprintf("directions query failed: %v", e.Err)
}

func (e *DirectionsError) Unwrap() error { return e.Err }

// RenderError - map/marker construction failure, surfaced near the map viewport only
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s failed: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
