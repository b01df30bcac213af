package maprender

import "easytrack/internal/models"

// Handle identifies a marker or polyline owned by the map provider. Handles can be
// invalidated behind the renderer's back (an external map reset); every renderer
// operation must survive that by recreating instead of failing
type Handle int64

// MarkerKind labels the three markers of a tracking view
type MarkerKind string

const (
	MarkerCurrent MarkerKind = "current"
	MarkerPickup  MarkerKind = "pickup"
	MarkerDropoff MarkerKind = "dropoff"
)

// MapProvider abstracts the map surface the renderer draws on
type MapProvider interface {
	Ready() bool
	CreateMarker(kind MarkerKind, pos models.LatLng) (Handle, error)
	MoveMarker(h Handle, pos models.LatLng) error
	RemoveMarker(h Handle) error
	DrawPolyline(points []models.LatLng) (Handle, error)
	RemovePolyline(h Handle) error
	SetCenter(pos models.LatLng, zoom int) error
	FitBounds(sw, ne models.LatLng) error
}
