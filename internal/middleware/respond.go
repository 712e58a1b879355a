package middleware

import (
	"encoding/json"
	"log"
	"net/http"

	"imageprep-api/internal/models"
)

// writeError rejects a request with the API's JSON error envelope.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: message}); err != nil {
		log.Printf("[HTTP] Failed to encode error response: %v", err)
	}
}
