package maprender

import (
	"fmt"
	"sync"

	"easytrack/internal/models"
)

// MemoryProvider is the in-process map surface. It keeps the authoritative view
// state the web client mirrors; it also serves as the fake provider in tests
type MemoryProvider struct {
	mux       sync.Mutex
	nextID    Handle
	markers   map[Handle]memMarker
	polylines map[Handle][]models.LatLng
	center    *models.LatLng
	zoom      int
	ready     bool
}

type memMarker struct {
	kind MarkerKind
	pos  models.LatLng
}

// NewMemoryProvider creates an initialized in-memory provider
func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{
		nextID:    1,
		markers:   make(map[Handle]memMarker),
		polylines: make(map[Handle][]models.LatLng),
		ready:     true,
	}
}

func (p *MemoryProvider) Ready() bool { return p.ready }

// SetReady toggles readiness, used to simulate a map that has not loaded yet
func (p *MemoryProvider) SetReady(ready bool) { p.ready = ready }

func (p *MemoryProvider) CreateMarker(kind MarkerKind, pos models.LatLng) (Handle, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	h := p.nextID
	p.nextID++
	p.markers[h] = memMarker{kind: kind, pos: pos}
	return h, nil
}

func (p *MemoryProvider) MoveMarker(h Handle, pos models.LatLng) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	marker, ok := p.markers[h]
	if !ok {
		return fmt.Errorf("unknown marker handle %d", h)
	}
	marker.pos = pos
	p.markers[h] = marker
	return nil
}

func (p *MemoryProvider) RemoveMarker(h Handle) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	delete(p.markers, h)
	return nil
}

func (p *MemoryProvider) DrawPolyline(points []models.LatLng) (Handle, error) {
	p.mux.Lock()
	defer p.mux.Unlock()
	h := p.nextID
	p.nextID++
	p.polylines[h] = points
	return h, nil
}

func (p *MemoryProvider) RemovePolyline(h Handle) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	delete(p.polylines, h)
	return nil
}

func (p *MemoryProvider) SetCenter(pos models.LatLng, zoom int) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.center = &pos
	p.zoom = zoom
	return nil
}

func (p *MemoryProvider) FitBounds(sw, ne models.LatLng) error {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.center = &models.LatLng{Lat: (sw.Lat + ne.Lat) / 2, Lng: (sw.Lng + ne.Lng) / 2}
	return nil
}

// InvalidateMarkers drops every marker without telling the renderer, simulating
// an external map reset
func (p *MemoryProvider) InvalidateMarkers() {
	p.mux.Lock()
	defer p.mux.Unlock()
	p.markers = make(map[Handle]memMarker)
}

// MarkerCount returns the number of live markers of the given kind
func (p *MemoryProvider) MarkerCount(kind MarkerKind) int {
	p.mux.Lock()
	defer p.mux.Unlock()
	count := 0
	for _, m := range p.markers {
		if m.kind == kind {
			count++
		}
	}
	return count
}

// PolylineCount returns the number of live polylines
func (p *MemoryProvider) PolylineCount() int {
	p.mux.Lock()
	defer p.mux.Unlock()
	return len(p.polylines)
}

// Center returns the current map center
func (p *MemoryProvider) Center() *models.LatLng {
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.center
}
