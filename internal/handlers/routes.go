package handlers

import (
	"net/http"
	"strings"
)

// CORSMiddleware allows the web client to call the API from another origin
func CORSMiddleware(next http.HandlerFunc) http.HandlerFunc {
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

// SetupTrackingRoutes wires the tracking endpoints
func SetupTrackingRoutes(mux *http.ServeMux, h *TrackingHandler) {
	mux.HandleFunc("/api/tracking/session", CORSMiddleware(handleSessionRoute(h)))
	mux.HandleFunc("/api/tracking/session/", CORSMiddleware(handleSessionSubRoute(h)))
	mux.HandleFunc("/api/tracking/contracts/", CORSMiddleware(h.GetContract))
}

// SetupMetricsRoutes wires the consumer and cache statistics endpoints
func SetupMetricsRoutes(mux *http.ServeMux, kafkaHandler *KafkaMetricsHandler, redisHandler *RedisMetricsHandler) {
	mux.HandleFunc("/api/kafka/stats", CORSMiddleware(kafkaHandler.GetStatistics))
	mux.HandleFunc("/api/cache/metrics", CORSMiddleware(redisHandler.GetStatistics))
}

// handleSessionRoute dispatches the session collection endpoint by method
func handleSessionRoute(handler *TrackingHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			handler.StartSession(w, r)
		case http.MethodGet:
			handler.GetSession(w, r)
		case http.MethodDelete:
			handler.StopSession(w, r)
		default:
			WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	}
}

// handleSessionSubRoute dispatches the session sub-resources
func handleSessionSubRoute(handler *TrackingHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasSuffix(r.URL.Path, "/route") {
			if r.Method == http.MethodPost {
				handler.RunRoute(w, r)
			} else {
				WriteErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
			}
			return
		}
		WriteErrorResponse(w, http.StatusNotFound, "Not found")
	}
}
