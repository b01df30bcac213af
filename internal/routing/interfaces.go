package routing

import (
	"context"

	"easytrack/internal/models"
)

// Provider abstracts the external routing backend. The tracking core depends
// only on this interface, never on a concrete map service
type Provider interface {
	// Ready reports whether the backend can accept queries
	Ready() bool
	// Route computes one origin->destination leg. When trafficAware is set and the
	// backend supports it, DurationInTraffic is populated on the returned leg
	Route(ctx context.Context, origin, destination models.LatLng, trafficAware bool) (*models.Leg, error)
	// Snap returns the road-snapped path between two adjacent waypoints
	Snap(ctx context.Context, from, to models.LatLng) ([]models.LatLng, error)
}
