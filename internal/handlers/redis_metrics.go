package handlers

import (
	"net/http"

	"easytrack/internal/logger"
	"easytrack/internal/services"
)

// RedisMetricsHandler - handler of the cache statistics endpoint
type RedisMetricsHandler struct {
	redisService services.RedisServiceInterface
	log          *logger.Logger
}

// NewRedisMetricsHandler returns a RedisMetricsHandler instance
func NewRedisMetricsHandler(redisService services.RedisServiceInterface, log *logger.Logger) *RedisMetricsHandler {
	return &RedisMetricsHandler{redisService: redisService, log: log}
}

// GetStatistics returns the cache statistics
func (h *RedisMetricsHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	metricsPtr, err := h.redisService.GetStatistics(r.Context())
	if err != nil {
		h.log.WithError(err).Error("Failed getting statistics")
		writeErrorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSONResponse(w, http.StatusOK, metricsPtr)
}
