package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	apperrors "imageprep-api/internal/errors"
	"imageprep-api/internal/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[HTTP] Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, models.ErrorResponse{Error: message})
}

// writeServiceError maps a service error to a status code. Only invalid
// input is echoed to the caller; everything else gets a generic message.
func writeServiceError(w http.ResponseWriter, tag, prefix string, err error) {
	log.Printf("[%s] %v", tag, err)

	if errors.Is(err, apperrors.ErrInvalidInput) {
		writeError(w, http.StatusBadRequest, prefix+": "+err.Error())
		return
	}
	writeError(w, http.StatusInternalServerError, prefix+": "+apperrors.ErrInternal.Error())
}

// writeImage streams an encoded image as a file download.
func writeImage(w http.ResponseWriter, res *models.ImageResult) {
	w.Header().Set("Content-Type", res.ContentType)
	w.Header().Set("Content-Disposition", "attachment; filename="+res.FileName)
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(res.Data); err != nil {
		log.Printf("[HTTP] Failed to write %s: %v", res.FileName, err)
	}
}
