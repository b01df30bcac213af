package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"easytrack/internal/logger"
	"easytrack/internal/models"
	"easytrack/internal/services"
)

// TrackingHandler exposes the tracking session over HTTP. It is the only layer
// that turns core errors into user-visible notices
type TrackingHandler struct {
	tracker   services.TrackerServiceInterface
	contracts services.ContractServiceInterface
	log       *logger.Logger
}

// NewTrackingHandler creates the tracking handler
func NewTrackingHandler(tracker services.TrackerServiceInterface, contracts services.ContractServiceInterface, log *logger.Logger) *TrackingHandler {
	return &TrackingHandler{tracker: tracker, contracts: contracts, log: log}
}

// startSessionRequest - request body of POST /api/tracking/session
type startSessionRequest struct {
	ContractID string `json:"contract_id"`
}

// StartSession starts (or replaces) the tracking session for a contract id
func (h *TrackingHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req startSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ContractID == "" {
		writeErrorResponse(w, http.StatusBadRequest, "contract_id is required")
		return
	}

	snapshot, err := h.tracker.Start(r.Context(), req.ContractID)
	if err != nil {
		h.writeTrackingError(w, err)
		return
	}

	h.log.WithField("contract_id", req.ContractID).Info("Tracking session started via API")
	writeJSONResponse(w, http.StatusCreated, snapshot)
}

// GetSession returns the current session snapshot
func (h *TrackingHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSONResponse(w, http.StatusOK, h.tracker.Snapshot())
}

// RunRoute performs a user-triggered directions run for the active session
func (h *TrackingHandler) RunRoute(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	snapshot, err := h.tracker.RunDirections(r.Context())
	if err != nil {
		h.writeTrackingError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, snapshot)
}

// StopSession tears the active session down
func (h *TrackingHandler) StopSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodDelete {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	h.tracker.Stop()
	writeJSONResponse(w, http.StatusOK, map[string]string{"message": "Tracking session stopped"})
}

// GetContract returns the stored contract record without touching the session,
// used by the search box to preview a contract before tracking it
func (h *TrackingHandler) GetContract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorResponse(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	contractID, err := ExtractContractIDFromPath(r.URL.Path, apiContractsPrefix)
	if err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "Invalid contract ID")
		return
	}

	contract, err := h.contracts.Load(r.Context(), contractID)
	if err != nil {
		h.writeTrackingError(w, err)
		return
	}

	writeJSONResponse(w, http.StatusOK, contract)
}

// writeTrackingError maps the core error taxonomy onto HTTP statuses
func (h *TrackingHandler) writeTrackingError(w http.ResponseWriter, err error) {
	var (
		cooldown *models.CooldownActiveError
		missing  *models.MissingLocationError
		dirErr   *models.DirectionsError
	)

	switch {
	case errors.Is(err, models.ErrContractNotFound):
		writeErrorResponse(w, http.StatusNotFound, "Contract not found")
	case errors.Is(err, models.ErrNoActiveSession):
		writeErrorResponse(w, http.StatusNotFound, "No active tracking session")
	case errors.Is(err, models.ErrServiceUnavailable):
		writeErrorResponse(w, http.StatusServiceUnavailable, "Routing service unavailable")
	case errors.As(err, &cooldown):
		writeErrorResponse(w, http.StatusTooManyRequests, cooldown.Error())
	case errors.As(err, &missing):
		writeErrorResponse(w, http.StatusConflict, missing.Error())
	case errors.As(err, &dirErr):
		writeErrorResponse(w, http.StatusBadGateway, "Directions query failed")
	default:
		h.log.WithError(err).Error("Tracking request failed")
		writeErrorResponse(w, http.StatusInternalServerError, "Tracking request failed")
	}
}
