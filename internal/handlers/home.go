package handlers

import (
	_ "embed"
	"net/http"

	apperrors "imageprep-api/internal/errors"
)

//go:embed static/index.html
var indexHTML []byte

// HandleHome serves the upload page.
func (h *Handler) HandleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, apperrors.ErrNotFound.Error())
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(indexHTML)
}
