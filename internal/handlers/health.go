package handlers

import (
	"net/http"
)

// HandleHealth responds to health check requests.
//
//	@Summary		Health check
//	@Description	Check if the API is running
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string	"status: ok"
//	@Router			/health [get]
func (h *Handler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
