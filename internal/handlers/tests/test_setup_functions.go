package handler_tests

import (
	"net/http"
	"strings"

	"easytrack/internal/handlers"
)

func corsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next(w, r)
	}
}

// setupTestTrackingRoutes wires the tracking endpoints for the test server
func setupTestTrackingRoutes(h *handlers.TrackingHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/tracking/session", corsMiddleware(handleSessionRoute(h)))
	mux.HandleFunc("/api/tracking/session/", corsMiddleware(handleSessionSubRoute(h)))
	mux.HandleFunc("/api/tracking/contracts/", corsMiddleware(h.GetContract))

	return mux
}

// handleSessionRoute dispatches the session collection endpoint by method
func handleSessionRoute(handler *handlers.TrackingHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handler.StartSession(w, r)
		case http.MethodGet:
			handler.GetSession(w, r)
		case http.MethodDelete:
			handler.StopSession(w, r)
		default:
			handlers.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

// handleSessionSubRoute dispatches the session sub-resources
func handleSessionSubRoute(handler *handlers.TrackingHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/route") {
			if r.Method == http.MethodPost {
				handler.RunRoute(w, r)
			} else {
				handlers.WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
			}
			return
		}
		handlers.WriteErrorResponse(w, http.StatusNotFound, "Not found")
	}
}

// setupTestKafkaMetricsRoute wires the Kafka statistics endpoint
func setupTestKafkaMetricsRoute(h *handlers.KafkaMetricsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/kafka/stats", corsMiddleware(h.GetStatistics))

	return mux
}

// setupTestRedisMetricsRoute wires the cache statistics endpoint
func setupTestRedisMetricsRoute(h *handlers.RedisMetricsHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/cache/metrics", corsMiddleware(h.GetStatistics))

	return mux
}
