package router

import (
	"net/http"

	"imageprep-api/internal/handlers"
)

// Setup configures and returns the HTTP router with all application routes.
func Setup(h *handlers.Handler) http.Handler {
	mux := http.NewServeMux()

	// Upload page
	mux.HandleFunc("/", h.HandleHome)

	// Health check
	mux.HandleFunc("/health", h.HandleHealth)

	// Image endpoints
	mux.HandleFunc("/predict", h.HandlePredict)
	mux.HandleFunc("/resize", h.HandleResize)
	mux.HandleFunc("/preprocess", h.HandlePreprocess)

	return mux
}
