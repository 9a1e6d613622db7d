package http

import (
	"encoding/json"
	"net/http"

	"github.com/leadpulse/leadpulse/internal/domain"
)

// WriteJSONError writes a JSON error response with the given message and
// status code, formatted as {"error": true, "message": "..."}.
func WriteJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error":   true,
		"message": message,
	})
}

// writeJSON writes a JSON response with the given status code and data
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeDomainError maps domain errors onto HTTP statuses: validation
// failures become 400, missing entities 404, anything else 500 with a
// generic message so internals stay out of responses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsValidationError(err):
		WriteJSONError(w, err.Error(), http.StatusBadRequest)
	case domain.IsNotFound(err):
		WriteJSONError(w, err.Error(), http.StatusNotFound)
	default:
		WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
	}
}
