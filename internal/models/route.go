package models

import "time"

// Leg - one origin->destination routing result
type Leg struct {
	DistanceMeters    float64  `json:"distance_meters"`
	DurationSeconds   float64  `json:"duration_seconds"`
	DurationInTraffic *float64 `json:"duration_in_traffic_seconds,omitempty"`
	Path              []LatLng `json:"path"`
}

// RouteQueryResult holds the derived progress metrics of one directions run.
// It is replaced whole on each successful run and discarded on contract change
type RouteQueryResult struct {
	ETA                 time.Time `json:"eta"`
	DistanceRemainingKm float64   `json:"distance_remaining_km"`
	TotalDistanceKm     float64   `json:"total_distance_km"`
	ProgressPercent     float64   `json:"progress_percent"`
	Polyline            []LatLng  `json:"polyline"`
}

// TrackingSnapshot is the JSON view returned to the UI: session lifecycle,
// render state and the latest route metrics
type TrackingSnapshot struct {
	ContractID      string            `json:"contract_id"`
	State           SessionState      `json:"state"`
	Status          string            `json:"status,omitempty"`
	Route           *RouteQueryResult `json:"route,omitempty"`
	CooldownSeconds int               `json:"cooldown_seconds"`
	Map             *MapViewState     `json:"map,omitempty"`
}

// MapViewState mirrors the renderer's marker/polyline state for the UI
type MapViewState struct {
	Center        *LatLng    `json:"center,omitempty"`
	Zoom          int        `json:"zoom"`
	CurrentMarker *LatLng    `json:"current_marker,omitempty"`
	PickupMarker  *LatLng    `json:"pickup_marker,omitempty"`
	DropoffMarker *LatLng    `json:"dropoff_marker,omitempty"`
	TravelledPath [][]LatLng `json:"travelled_path"`
	RoutePolyline []LatLng   `json:"route_polyline,omitempty"`
}
