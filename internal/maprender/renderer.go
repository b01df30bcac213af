package maprender

import (
	"context"
	"math"

	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/routing"
)

// RenderState holds every map object the renderer owns. Nothing outside the
// renderer touches these handles
type RenderState struct {
	currentMarker    *Handle
	pickupMarker     *Handle
	dropoffMarker    *Handle
	polylineSegments []Handle
	routePolyline    *Handle

	// Last geometry drawn, kept for snapshots
	currentPos    *models.LatLng
	pickupPos     *models.LatLng
	dropoffPos    *models.LatLng
	travelledPath [][]models.LatLng
	routePath     []models.LatLng
	center        *models.LatLng
}

// Renderer maps the latest contract snapshot onto the map provider. It is the
// single writer of marker and polyline state
type Renderer struct {
	provider MapProvider
	routing  routing.Provider
	log      *logger.Logger
	zoom     int
	padding  float64
	state    RenderState
}

// NewRenderer creates a renderer over the given providers. zoom is the fixed
// zoom level used when a current position exists; paddingMillidegrees expands
// the fit-to-bounds box when it does not
func NewRenderer(provider MapProvider, routingProvider routing.Provider, log *logger.Logger, zoom, paddingMillidegrees int) *Renderer {
	return &Renderer{
		provider: provider,
		routing:  routingProvider,
		log:      log,
		zoom:     zoom,
		padding:  float64(paddingMillidegrees) / 1000.0,
	}
}

// Initialize builds the initial view for a freshly loaded contract: center the
// map, then create a marker for each position that exists. A missing position
// yields no marker, not an error
func (r *Renderer) Initialize(contract *models.Contract) error {
	if !r.provider.Ready() {
		return &models.RenderError{Op: "initialize", Err: models.ErrServiceUnavailable}
	}

	r.Reset()

	if contract.Current != nil {
		if err := r.provider.SetCenter(*contract.Current, r.zoom); err != nil {
			return &models.RenderError{Op: "initialize", Err: err}
		}
		r.state.center = contract.Current
	} else if sw, ne, ok := boundsOfPoints(r.padding, contract.Current, contract.Pickup, contract.Dropoff); ok {
		if err := r.provider.FitBounds(sw, ne); err != nil {
			return &models.RenderError{Op: "initialize", Err: err}
		}
		center := models.LatLng{Lat: (sw.Lat + ne.Lat) / 2, Lng: (sw.Lng + ne.Lng) / 2}
		r.state.center = &center
	}

	if err := r.createMarkerIfPresent(MarkerCurrent, contract.Current); err != nil {
		return err
	}
	if err := r.createMarkerIfPresent(MarkerPickup, contract.Pickup); err != nil {
		return err
	}
	if err := r.createMarkerIfPresent(MarkerDropoff, contract.Dropoff); err != nil {
		return err
	}

	return nil
}

// MoveCurrentMarker repositions the current-location marker and recenters the
// map on it. A detached or missing marker is recreated rather than failed on
func (r *Renderer) MoveCurrentMarker(pos models.LatLng) error {
	if !r.provider.Ready() {
		return &models.RenderError{Op: "move_marker", Err: models.ErrServiceUnavailable}
	}

	moved := false
	if r.state.currentMarker != nil {
		if err := r.provider.MoveMarker(*r.state.currentMarker, pos); err == nil {
			moved = true
		} else {
			r.log.WithError(err).Debug("Current marker detached, recreating")
		}
	}
	if !moved {
		h, err := r.provider.CreateMarker(MarkerCurrent, pos)
		if err != nil {
			return &models.RenderError{Op: "move_marker", Err: err}
		}
		r.state.currentMarker = &h
	}
	r.state.currentPos = &pos

	if err := r.provider.SetCenter(pos, r.zoom); err != nil {
		return &models.RenderError{Op: "move_marker", Err: err}
	}
	r.state.center = &pos

	return nil
}

// DrawRoute redraws the travelled path from the waypoint history. Each
// consecutive pair is road-snapped; a pair whose snap fails is drawn as a
// straight segment so one bad segment never blanks the whole route
func (r *Renderer) DrawRoute(ctx context.Context, waypoints []models.LatLng) error {
	if !r.provider.Ready() {
		return &models.RenderError{Op: "draw_route", Err: models.ErrServiceUnavailable}
	}

	r.clearSegments()

	for i := 0; i+1 < len(waypoints); i++ {
		from, to := waypoints[i], waypoints[i+1]

		points, err := r.routing.Snap(ctx, from, to)
		if err != nil || len(points) < 2 {
			if err != nil {
				r.log.WithError(err).Debug("Road snapping failed, drawing straight segment")
			}
			points = []models.LatLng{from, to}
		}

		h, err := r.provider.DrawPolyline(points)
		if err != nil {
			return &models.RenderError{Op: "draw_route", Err: err}
		}
		r.state.polylineSegments = append(r.state.polylineSegments, h)
		r.state.travelledPath = append(r.state.travelledPath, points)
	}

	return nil
}

// SetRoutePolyline replaces the current->dropoff route polyline with the
// geometry of a fresh directions leg
func (r *Renderer) SetRoutePolyline(points []models.LatLng) error {
	if !r.provider.Ready() {
		return &models.RenderError{Op: "set_route", Err: models.ErrServiceUnavailable}
	}

	if r.state.routePolyline != nil {
		if err := r.provider.RemovePolyline(*r.state.routePolyline); err != nil {
			r.log.WithError(err).Debug("Failed to remove previous route polyline")
		}
		r.state.routePolyline = nil
		r.state.routePath = nil
	}

	if len(points) == 0 {
		return nil
	}

	h, err := r.provider.DrawPolyline(points)
	if err != nil {
		return &models.RenderError{Op: "set_route", Err: err}
	}
	r.state.routePolyline = &h
	r.state.routePath = points

	return nil
}

// Reset drops every marker and polyline, used on contract switch
func (r *Renderer) Reset() {
	for _, h := range []*Handle{r.state.currentMarker, r.state.pickupMarker, r.state.dropoffMarker} {
		if h != nil {
			if err := r.provider.RemoveMarker(*h); err != nil {
				r.log.WithError(err).Debug("Failed to remove marker")
			}
		}
	}
	r.clearSegments()
	if r.state.routePolyline != nil {
		if err := r.provider.RemovePolyline(*r.state.routePolyline); err != nil {
			r.log.WithError(err).Debug("Failed to remove route polyline")
		}
	}
	r.state = RenderState{}
}

// ViewState builds the snapshot of everything currently drawn
func (r *Renderer) ViewState() *models.MapViewState {
	view := &models.MapViewState{
		Center:        r.state.center,
		Zoom:          r.zoom,
		CurrentMarker: r.state.currentPos,
		PickupMarker:  r.state.pickupPos,
		DropoffMarker: r.state.dropoffPos,
		TravelledPath: make([][]models.LatLng, len(r.state.travelledPath)),
		RoutePolyline: r.state.routePath,
	}
	copy(view.TravelledPath, r.state.travelledPath)
	return view
}

func (r *Renderer) createMarkerIfPresent(kind MarkerKind, pos *models.LatLng) error {
	if pos == nil {
		return nil
	}
	h, err := r.provider.CreateMarker(kind, *pos)
	if err != nil {
		return &models.RenderError{Op: "create_marker", Err: err}
	}
	switch kind {
	case MarkerCurrent:
		r.state.currentMarker = &h
		r.state.currentPos = pos
	case MarkerPickup:
		r.state.pickupMarker = &h
		r.state.pickupPos = pos
	case MarkerDropoff:
		r.state.dropoffMarker = &h
		r.state.dropoffPos = pos
	}
	return nil
}

func (r *Renderer) clearSegments() {
	for _, h := range r.state.polylineSegments {
		if err := r.provider.RemovePolyline(h); err != nil {
			r.log.WithError(err).Debug("Failed to remove polyline segment")
		}
	}
	r.state.polylineSegments = nil
	r.state.travelledPath = nil
}

// boundsOfPoints computes the padded bounding box over the given optional points
func boundsOfPoints(padding float64, points ...*models.LatLng) (models.LatLng, models.LatLng, bool) {
	sw := models.LatLng{Lat: math.MaxFloat64, Lng: math.MaxFloat64}
	ne := models.LatLng{Lat: -math.MaxFloat64, Lng: -math.MaxFloat64}
	found := false
	for _, pt := range points {
		if pt == nil {
			continue
		}
		found = true
		sw.Lat = math.Min(sw.Lat, pt.Lat)
		sw.Lng = math.Min(sw.Lng, pt.Lng)
		ne.Lat = math.Max(ne.Lat, pt.Lat)
		ne.Lng = math.Max(ne.Lng, pt.Lng)
	}
	if !found {
		return models.LatLng{}, models.LatLng{}, false
	}
	sw.Lat -= padding
	sw.Lng -= padding
	ne.Lat += padding
	ne.Lng += padding
	return sw, ne, true
}
