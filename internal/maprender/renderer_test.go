package maprender

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/routing/routing_mocks"
)

func newRendererFixture(t *testing.T) (*Renderer, *MemoryProvider, *routing_mocks.MockProvider) {
	provider := NewMemoryProvider()
	snapper := routing_mocks.NewMockProvider(t)
	renderer := NewRenderer(provider, snapper, logger.NewTest(), 15, 10)
	return renderer, provider, snapper
}

func rendererContract() *models.Contract {
	return &models.Contract{
		ID:      "CTR-1001",
		Pickup:  &models.LatLng{Lat: 14.5995, Lng: 120.9842},
		Dropoff: &models.LatLng{Lat: 14.5547, Lng: 121.0244},
		Current: &models.LatLng{Lat: 14.58, Lng: 121.0},
	}
}

// TestInitializeCreatesMarkers verifies the initial view: one marker per known
// position and the map centered on the current one
func TestInitializeCreatesMarkers(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)
	contract := rendererContract()

	require.NoError(t, renderer.Initialize(contract))

	assert.Equal(t, 1, provider.MarkerCount(MarkerCurrent))
	assert.Equal(t, 1, provider.MarkerCount(MarkerPickup))
	assert.Equal(t, 1, provider.MarkerCount(MarkerDropoff))
	assert.Equal(t, contract.Current, provider.Center())

	view := renderer.ViewState()
	assert.Equal(t, contract.Current, view.CurrentMarker)
	assert.Equal(t, contract.Pickup, view.PickupMarker)
	assert.Equal(t, contract.Dropoff, view.DropoffMarker)
	assert.Equal(t, 15, view.Zoom)
}

// TestInitializeFitsBoundsWithoutCurrent verifies the view falls back to a
// padded fit over pickup and dropoff when the courier has not moved yet
func TestInitializeFitsBoundsWithoutCurrent(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)
	contract := rendererContract()
	contract.Current = nil

	require.NoError(t, renderer.Initialize(contract))

	assert.Equal(t, 0, provider.MarkerCount(MarkerCurrent))
	assert.Equal(t, 1, provider.MarkerCount(MarkerPickup))
	assert.Equal(t, 1, provider.MarkerCount(MarkerDropoff))

	center := provider.Center()
	require.NotNil(t, center)
	assert.InDelta(t, (contract.Pickup.Lat+contract.Dropoff.Lat)/2, center.Lat, 1e-9)
	assert.InDelta(t, (contract.Pickup.Lng+contract.Dropoff.Lng)/2, center.Lng, 1e-9)
}

func TestInitializeProviderNotReady(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)
	provider.SetReady(false)

	err := renderer.Initialize(rendererContract())

	var renderErr *models.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.ErrorIs(t, err, models.ErrServiceUnavailable)
}

// TestDrawRouteSnapsSegments verifies each consecutive waypoint pair becomes one
// polyline with the road-snapped geometry
func TestDrawRouteSnapsSegments(t *testing.T) {
	renderer, provider, snapper := newRendererFixture(t)

	w := []models.LatLng{
		{Lat: 14.58, Lng: 121.0},
		{Lat: 14.57, Lng: 121.01},
		{Lat: 14.56, Lng: 121.02},
	}
	snapped := []models.LatLng{w[0], {Lat: 14.575, Lng: 121.005}, w[1]}

	snapper.On("Snap", mock.Anything, w[0], w[1]).Return(snapped, nil).Once()
	snapper.On("Snap", mock.Anything, w[1], w[2]).Return([]models.LatLng{w[1], w[2]}, nil).Once()

	require.NoError(t, renderer.DrawRoute(context.Background(), w))

	assert.Equal(t, 2, provider.PolylineCount())
	view := renderer.ViewState()
	require.Len(t, view.TravelledPath, 2)
	assert.Equal(t, snapped, view.TravelledPath[0])
	assert.Equal(t, []models.LatLng{w[1], w[2]}, view.TravelledPath[1])
}

// TestDrawRouteFallsBackPerSegment verifies a failed snap degrades that one pair
// to a straight segment while the rest keep their road geometry
func TestDrawRouteFallsBackPerSegment(t *testing.T) {
	renderer, provider, snapper := newRendererFixture(t)

	w := []models.LatLng{
		{Lat: 14.58, Lng: 121.0},
		{Lat: 14.57, Lng: 121.01},
		{Lat: 14.56, Lng: 121.02},
		{Lat: 14.55, Lng: 121.03},
	}
	snapped := []models.LatLng{w[0], {Lat: 14.575, Lng: 121.005}, w[1]}

	snapper.On("Snap", mock.Anything, w[0], w[1]).Return(snapped, nil).Once()
	snapper.On("Snap", mock.Anything, w[1], w[2]).Return(nil, errors.New("osrm: no segment")).Once()
	snapper.On("Snap", mock.Anything, w[2], w[3]).Return([]models.LatLng{w[2]}, nil).Once()

	require.NoError(t, renderer.DrawRoute(context.Background(), w))

	// Every pair is drawn: snapped, straight fallback on error, straight
	// fallback on degenerate geometry
	assert.Equal(t, 3, provider.PolylineCount())
	view := renderer.ViewState()
	require.Len(t, view.TravelledPath, 3)
	assert.Equal(t, snapped, view.TravelledPath[0])
	assert.Equal(t, []models.LatLng{w[1], w[2]}, view.TravelledPath[1])
	assert.Equal(t, []models.LatLng{w[2], w[3]}, view.TravelledPath[2])
}

// TestDrawRouteRedrawReplacesSegments verifies redrawing clears the previous
// segments instead of stacking them
func TestDrawRouteRedrawReplacesSegments(t *testing.T) {
	renderer, provider, snapper := newRendererFixture(t)
	snapper.On("Snap", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("snapping unavailable"))

	w := []models.LatLng{
		{Lat: 14.58, Lng: 121.0},
		{Lat: 14.57, Lng: 121.01},
		{Lat: 14.56, Lng: 121.02},
	}

	require.NoError(t, renderer.DrawRoute(context.Background(), w))
	require.Equal(t, 2, provider.PolylineCount())

	require.NoError(t, renderer.DrawRoute(context.Background(), append(w, models.LatLng{Lat: 14.55, Lng: 121.03})))
	assert.Equal(t, 3, provider.PolylineCount())
}

func TestDrawRouteSinglePoint(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)

	require.NoError(t, renderer.DrawRoute(context.Background(), []models.LatLng{{Lat: 14.58, Lng: 121.0}}))

	assert.Equal(t, 0, provider.PolylineCount())
}

// TestMoveCurrentMarkerRecreatesDetached verifies a marker lost by the map
// surface is recreated on the next move instead of failing the update
func TestMoveCurrentMarkerRecreatesDetached(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)
	require.NoError(t, renderer.Initialize(rendererContract()))

	provider.InvalidateMarkers()

	moved := models.LatLng{Lat: 14.55, Lng: 121.02}
	require.NoError(t, renderer.MoveCurrentMarker(moved))

	assert.Equal(t, 1, provider.MarkerCount(MarkerCurrent))
	assert.Equal(t, &moved, provider.Center())
	assert.Equal(t, &moved, renderer.ViewState().CurrentMarker)
}

func TestMoveCurrentMarkerRepositions(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)
	require.NoError(t, renderer.Initialize(rendererContract()))

	moved := models.LatLng{Lat: 14.55, Lng: 121.02}
	require.NoError(t, renderer.MoveCurrentMarker(moved))

	assert.Equal(t, 1, provider.MarkerCount(MarkerCurrent))
	assert.Equal(t, &moved, provider.Center())
}

// TestSetRoutePolylineReplaces verifies the directions polyline is swapped, not
// accumulated
func TestSetRoutePolylineReplaces(t *testing.T) {
	renderer, provider, _ := newRendererFixture(t)

	first := []models.LatLng{{Lat: 14.58, Lng: 121.0}, {Lat: 14.55, Lng: 121.02}}
	second := []models.LatLng{{Lat: 14.57, Lng: 121.01}, {Lat: 14.55, Lng: 121.02}}

	require.NoError(t, renderer.SetRoutePolyline(first))
	require.NoError(t, renderer.SetRoutePolyline(second))

	assert.Equal(t, 1, provider.PolylineCount())
	assert.Equal(t, second, renderer.ViewState().RoutePolyline)

	// An empty geometry clears the polyline
	require.NoError(t, renderer.SetRoutePolyline(nil))
	assert.Equal(t, 0, provider.PolylineCount())
	assert.Nil(t, renderer.ViewState().RoutePolyline)
}

// TestResetClearsEverything verifies a contract switch leaves no stale map objects
func TestResetClearsEverything(t *testing.T) {
	renderer, provider, snapper := newRendererFixture(t)
	snapper.On("Snap", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("snapping unavailable"))

	contract := rendererContract()
	contract.RouteHistory = []models.LatLng{{Lat: 14.59, Lng: 120.99}, *contract.Current}

	require.NoError(t, renderer.Initialize(contract))
	require.NoError(t, renderer.DrawRoute(context.Background(), contract.Waypoints()))
	require.NoError(t, renderer.SetRoutePolyline([]models.LatLng{*contract.Current, *contract.Dropoff}))

	renderer.Reset()

	assert.Equal(t, 0, provider.MarkerCount(MarkerCurrent))
	assert.Equal(t, 0, provider.MarkerCount(MarkerPickup))
	assert.Equal(t, 0, provider.MarkerCount(MarkerDropoff))
	assert.Equal(t, 0, provider.PolylineCount())

	view := renderer.ViewState()
	assert.Nil(t, view.CurrentMarker)
	assert.Nil(t, view.RoutePolyline)
	assert.Empty(t, view.TravelledPath)
}
