package handler_tests

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gavv/httpexpect/v2"
	"github.com/stretchr/testify/mock"

	"easytrack/internal/handlers"
	"easytrack/internal/logger"
	"easytrack/internal/services/services_mocks"
)

// TestStartSession verifies starting a tracking session over the API
func TestStartSession(t *testing.T) {
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	for _, tc := range startSessionTestCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockTracker := services_mocks.NewMockTrackerServiceInterface(t)

			h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
			mux := setupTestTrackingRoutes(h)

			server := httptest.NewServer(mux)
			defer server.Close()

			if tc.expectedStatusCode != http.StatusBadRequest {
				mockTracker.On("Start", mock.Anything, tc.contractID).Return(tc.returnedValue, tc.returnedError)
			}

			e := httpexpect.Default(t, server.URL)

			resp := e.POST("/api/tracking/session").
				WithJSON(map[string]string{"contract_id": tc.contractID}).
				Expect().Status(tc.expectedStatusCode)
			if tc.expectedStatusCode == http.StatusCreated {
				obj := resp.JSON().Object()
				obj.Value("contract_id").String().IsEqual(tc.contractID)
				obj.Value("state").String().IsEqual("loaded")
				obj.Value("cooldown_seconds").Number().IsEqual(tc.returnedValue.CooldownSeconds)
				obj.Value("route").Object().Value("progress_percent").Number().IsEqual(75)
				obj.Value("map").Object().Value("zoom").Number().IsEqual(15)
			}
			mockTracker.AssertExpectations(t)
		})
	}
}

// TestStartSessionInvalidBody verifies a malformed request body is rejected
func TestStartSessionInvalidBody(t *testing.T) {
	mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
	mux := setupTestTrackingRoutes(h)

	server := httptest.NewServer(mux)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)
	e.POST("/api/tracking/session").WithText("{not json").Expect().Status(http.StatusBadRequest)
}

// TestGetSession verifies the snapshot endpoint for loaded and idle sessions
func TestGetSession(t *testing.T) {
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
	mockTracker.On("Snapshot").Return(loadedSnapshot).Once()
	mockTracker.On("Snapshot").Return(idleSnapshot).Once()

	h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
	mux := setupTestTrackingRoutes(h)

	server := httptest.NewServer(mux)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)

	obj := e.GET("/api/tracking/session").Expect().Status(http.StatusOK).JSON().Object()
	obj.Value("contract_id").String().IsEqual(contractID)
	obj.Value("state").String().IsEqual("loaded")
	obj.Value("status").String().IsEqual("in_transit")
	obj.Value("route").Object().Value("distance_remaining_km").Number().IsEqual(5)
	obj.Value("map").Object().Value("route_polyline").Array().Length().IsEqual(2)

	idle := e.GET("/api/tracking/session").Expect().Status(http.StatusOK).JSON().Object()
	idle.Value("state").String().IsEqual("idle")
	idle.NotContainsKey("map")

	mockTracker.AssertExpectations(t)
}

// TestRunRoute verifies the user-triggered directions run and its error mapping
func TestRunRoute(t *testing.T) {
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	for _, tc := range runRouteTestCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
			mockTracker.On("RunDirections", mock.Anything).Return(tc.returnedValue, tc.returnedError)

			h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
			mux := setupTestTrackingRoutes(h)

			server := httptest.NewServer(mux)
			defer server.Close()

			e := httpexpect.Default(t, server.URL)

			resp := e.POST("/api/tracking/session/route").Expect().Status(tc.expectedStatusCode)
			if tc.expectedStatusCode == http.StatusOK {
				obj := resp.JSON().Object()
				obj.Value("route").Object().Value("progress_percent").Number().IsEqual(75)
			}
			if tc.expectedStatusCode == http.StatusTooManyRequests {
				resp.JSON().Object().Value("error").String().Contains("42 seconds")
			}
			mockTracker.AssertExpectations(t)
		})
	}
}

// TestStopSession verifies tearing the session down
func TestStopSession(t *testing.T) {
	mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	mockTracker.On("Stop").Once()

	h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
	mux := setupTestTrackingRoutes(h)

	server := httptest.NewServer(mux)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)
	obj := e.DELETE("/api/tracking/session").Expect().Status(http.StatusOK).JSON().Object()
	obj.Value("message").String().IsEqual("Tracking session stopped")

	mockTracker.AssertExpectations(t)
}

// TestGetContract verifies the sessionless contract preview endpoint
func TestGetContract(t *testing.T) {
	mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
	discardLogger := logger.NewTest()

	for _, tc := range getContractTestCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			mockContracts := services_mocks.NewMockContractServiceInterface(t)
			mockContracts.On("Load", mock.Anything, tc.contractID).Return(tc.returnedValue, tc.returnedError)

			h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
			mux := setupTestTrackingRoutes(h)

			server := httptest.NewServer(mux)
			defer server.Close()

			e := httpexpect.Default(t, server.URL)

			resp := e.GET(fmt.Sprintf("/api/tracking/contracts/%s", tc.contractID)).Expect().Status(tc.expectedStatusCode)
			if tc.expectedStatusCode == http.StatusOK {
				obj := resp.JSON().Object()
				obj.Value("id").String().IsEqual(tc.contractID)
				obj.Value("status").String().IsEqual(tc.returnedValue.Status)
				obj.Value("route_history").Array().Length().IsEqual(len(tc.returnedValue.RouteHistory))
			}
			mockContracts.AssertExpectations(t)
		})
	}
}

// TestSessionMethodNotAllowed verifies unsupported methods are rejected
func TestSessionMethodNotAllowed(t *testing.T) {
	mockTracker := services_mocks.NewMockTrackerServiceInterface(t)
	mockContracts := services_mocks.NewMockContractServiceInterface(t)
	discardLogger := logger.NewTest()

	h := handlers.NewTrackingHandler(mockTracker, mockContracts, discardLogger)
	mux := setupTestTrackingRoutes(h)

	server := httptest.NewServer(mux)
	defer server.Close()

	e := httpexpect.Default(t, server.URL)
	e.PUT("/api/tracking/session").Expect().Status(http.StatusMethodNotAllowed)
	e.GET("/api/tracking/session/route").Expect().Status(http.StatusMethodNotAllowed)
}
