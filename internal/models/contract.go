package models

import (
	"time"

	"github.com/google/uuid"
)

// Contract represents a tracked luggage-delivery contract. Pickup and dropoff are
// owned by the contract-management system and are never mutated here; the tracking
// core only reads them and appends to RouteHistory
type Contract struct {
	ID           string   `json:"id"`
	Pickup       *LatLng  `json:"pickup_location,omitempty"`
	Dropoff      *LatLng  `json:"drop_off_location,omitempty"`
	Current      *LatLng  `json:"current_location,omitempty"`
	RouteHistory []LatLng `json:"route_history"`
	Status       string   `json:"status"`
}

// Waypoints returns the travelled path to draw. The current position should be
// the last waypoint already, but records where it never made it into the history
// are tolerated by appending it here
func (c *Contract) Waypoints() []LatLng {
	waypoints := c.RouteHistory
	if c.Current != nil {
		if n := len(waypoints); n == 0 || !waypoints[n-1].Equal(c.Current) {
			waypoints = append(append([]LatLng{}, waypoints...), *c.Current)
		}
	}
	return waypoints
}

// ContractPatch is a partial contract record carried by a realtime event.
// Geo fields keep the longitude-first storage form; absent fields leave the
// current value untouched on merge
type ContractPatch struct {
	PickupGeo    *GeoPoint `json:"pickup_location_geo,omitempty"`
	DropoffGeo   *GeoPoint `json:"drop_off_location_geo,omitempty"`
	CurrentGeo   *GeoPoint `json:"current_location_geo,omitempty"`
	RouteHistory []LatLng  `json:"route_history,omitempty"`
	Status       *string   `json:"status,omitempty"`
}

// EventType classifies realtime and lifecycle events on the Kafka topics
type EventType string

const (
	EventContractUpdated EventType = "contract.updated"
	EventSessionStarted  EventType = "tracking.session_started"
	EventRouteComputed   EventType = "tracking.route_computed"
	EventLocationMoved   EventType = "tracking.location_moved"
)

// ContractEvent is the envelope published on the contract-updates topic
type ContractEvent struct {
	ID         uuid.UUID     `json:"id"`
	Type       EventType     `json:"type"`
	ContractID string        `json:"contract_id"`
	Payload    ContractPatch `json:"payload"`
	Timestamp  time.Time     `json:"timestamp"`
}

// SessionState labels the tracking session lifecycle
type SessionState string

const (
	SessionIdle     SessionState = "idle"
	SessionLoading  SessionState = "loading"
	SessionLoaded   SessionState = "loaded"
	SessionNotFound SessionState = "not_found"
	SessionError    SessionState = "error"
)
