package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const apiContractsPrefix = "/api/tracking/contracts/"

// writeJSONResponse serializes data into the response body
func writeJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// writeErrorResponse writes an error response with a message
func writeErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeJSONResponse(w, statusCode, map[string]string{"error": message})
}

// WriteJSONResponse - exported variant for route wiring outside the package
func WriteJSONResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	writeJSONResponse(w, statusCode, data)
}

// WriteErrorResponse - exported variant for route wiring outside the package
func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	writeErrorResponse(w, statusCode, message)
}

// ExtractContractIDFromPath pulls the contract id segment out of the URL path
func ExtractContractIDFromPath(path, prefix string) (string, error) {
	trimmed := strings.TrimPrefix(path, prefix)
	if trimmed == path || trimmed == "" {
		return "", fmt.Errorf("no contract id in path %s", path)
	}
	id := strings.SplitN(trimmed, "/", 2)[0]
	if id == "" {
		return "", fmt.Errorf("no contract id in path %s", path)
	}
	return id, nil
}
