package handler

import (
	"log"
	"net/http"
	"os"
	"sync"

	"imageprep-api/internal/config"
	"imageprep-api/internal/server"
)

// loadHandler builds the HTTP handler on the first invocation and reuses it
// afterwards. A failed initialization is remembered and returned on every
// later call.
var loadHandler = sync.OnceValues(func() (http.Handler, error) {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return nil, err
	}

	// Only the temp directory is writable on Vercel
	if cfg.IsVercel {
		cfg.OutputBaseDir = os.TempDir()
	}

	svcs, err := server.InitServices(cfg)
	if err != nil {
		log.Printf("Failed to initialize services: %v", err)
		return nil, err
	}

	log.Println("Handler initialized successfully")
	return server.CreateHandler(svcs, cfg), nil
})

// Handler is the Vercel serverless function entry point
func Handler(w http.ResponseWriter, r *http.Request) {
	h, err := loadHandler()
	if err != nil {
		log.Printf("Handler initialization failed: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.ServeHTTP(w, r)
}
