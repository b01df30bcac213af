package handler_tests

import (
	"errors"
	"net/http"

	"easytrack/internal/models"
)

// Plain variables
var contractID = "CTR-1001"
var missingContractID = "CTR-404"

// Application model instances
// // Contracts
var trackedContract = &models.Contract{
	ID:      contractID,
	Pickup:  &models.LatLng{Lat: 14.5995, Lng: 120.9842},
	Dropoff: &models.LatLng{Lat: 14.5547, Lng: 121.0244},
	Current: &models.LatLng{Lat: 14.58, Lng: 121.0},
	RouteHistory: []models.LatLng{
		{Lat: 14.59, Lng: 120.99},
		{Lat: 14.58, Lng: 121.0},
	},
	Status: "in_transit",
}

// // Route metrics
var routeResult = &models.RouteQueryResult{
	DistanceRemainingKm: 5,
	TotalDistanceKm:     20,
	ProgressPercent:     75,
	Polyline:            []models.LatLng{*trackedContract.Current, *trackedContract.Dropoff},
}

// // Session snapshots
var loadedSnapshot = &models.TrackingSnapshot{
	ContractID:      contractID,
	State:           models.SessionLoaded,
	Status:          trackedContract.Status,
	Route:           routeResult,
	CooldownSeconds: 60,
	Map: &models.MapViewState{
		Center:        trackedContract.Current,
		Zoom:          15,
		CurrentMarker: trackedContract.Current,
		PickupMarker:  trackedContract.Pickup,
		DropoffMarker: trackedContract.Dropoff,
		RoutePolyline: routeResult.Polyline,
	},
}
var idleSnapshot = &models.TrackingSnapshot{State: models.SessionIdle}

// // Metrics
var kafkaMetrics = &models.KafkaMetricsResponse{
	TotalLag: 123,
	Statistics: []models.KafkaTopicMetricsResponse{
		{Topic: "contract_updates", TotalProcessedEvents: 1000, Errors: 20, AvgProcessingDuration: "10 ms"},
		{Topic: "tracking_events", TotalProcessedEvents: 1500, Errors: 100, AvgProcessingDuration: "20 ms"},
	},
}
var redisMetrics = &models.RedisMetricsResponse{
	HitRate:   95.0,
	MissRate:  5.0,
	CacheSize: 1000,
}

// Errors
var errorInternalServerError = errors.New("internal server error")

// Test cases for POST /api/tracking/session
var startSessionTestCases = []struct {
	name               string
	contractID         string
	returnedValue      *models.TrackingSnapshot
	returnedError      error
	expectedStatusCode int
}{
	{"test_created", contractID, loadedSnapshot, nil, http.StatusCreated},
	{"test_missing_contract_id", "", nil, nil, http.StatusBadRequest},
	{"test_not_found", missingContractID, nil, models.ErrContractNotFound, http.StatusNotFound},
	{"test_transport_error", contractID, nil, &models.TransportError{Err: errorInternalServerError}, http.StatusInternalServerError},
}

// Test cases for POST /api/tracking/session/route
var runRouteTestCases = []struct {
	name               string
	returnedValue      *models.TrackingSnapshot
	returnedError      error
	expectedStatusCode int
}{
	{"test_ok", loadedSnapshot, nil, http.StatusOK},
	{"test_no_session", nil, models.ErrNoActiveSession, http.StatusNotFound},
	{"test_cooldown_active", nil, &models.CooldownActiveError{RemainingSeconds: 42}, http.StatusTooManyRequests},
	{"test_missing_location", nil, &models.MissingLocationError{Which: "current"}, http.StatusConflict},
	{"test_directions_failed", nil, &models.DirectionsError{Err: errorInternalServerError}, http.StatusBadGateway},
	{"test_service_unavailable", nil, models.ErrServiceUnavailable, http.StatusServiceUnavailable},
}

// Test cases for GET /api/tracking/contracts/{id}
var getContractTestCases = []struct {
	name               string
	contractID         string
	returnedValue      *models.Contract
	returnedError      error
	expectedStatusCode int
}{
	{"test_ok", contractID, trackedContract, nil, http.StatusOK},
	{"test_not_found", missingContractID, nil, models.ErrContractNotFound, http.StatusNotFound},
	{"test_server_error", contractID, nil, &models.TransportError{Err: errorInternalServerError}, http.StatusInternalServerError},
}

// Test cases for GET /api/cache/metrics
var getRedisMetricsTestCases = []struct {
	name               string
	returnedValue      *models.RedisMetricsResponse
	returnedError      error
	expectedStatusCode int
}{
	{"test_ok", redisMetrics, nil, http.StatusOK},
	{"test_server_error", nil, errorInternalServerError, http.StatusInternalServerError},
}

// Test cases for ExtractContractIDFromPath
var extractContractIDTestCases = []struct {
	name     string
	path     string
	prefix   string
	expected string
	hasError bool
}{
	{"test_ok", "/api/tracking/contracts/CTR-1001", "/api/tracking/contracts/", "CTR-1001", false},
	{"test_trailing_segment", "/api/tracking/contracts/CTR-1001/route", "/api/tracking/contracts/", "CTR-1001", false},
	{"test_wrong_prefix", "/test/case", "/api/tracking/contracts/", "", true},
	{"test_missing_id", "/api/tracking/contracts/", "/api/tracking/contracts/", "", true},
}
