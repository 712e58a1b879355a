package server

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"

	"imageprep-api/internal/config"
	"imageprep-api/internal/handlers"
	"imageprep-api/internal/middleware"
	"imageprep-api/internal/preprocess"
	"imageprep-api/internal/router"
	"imageprep-api/internal/services"
)

// Services holds all initialized services for the application
type Services struct {
	Image *services.ImageService
}

// InitServices initializes all application services based on configuration.
// The output directory is created up front so a bad OUTPUT_BASE_DIR fails at
// startup instead of on the first upload.
func InitServices(cfg *config.Config) (*Services, error) {
	outputDir, err := preprocess.EnsureOutputDir(cfg.OutputBaseDir)
	if err != nil {
		return nil, err
	}
	log.Printf("📁 Output directory: %s", outputDir)

	imageService := services.NewImageService(
		preprocess.DefaultRandom(),
		cfg.OutputBaseDir,
		cfg.JPEGQuality,
		preprocess.Options{
			MaxDegrees:      cfg.MaxRotationDegrees,
			FlipProbability: cfg.FlipProbability,
			BlurRadius:      cfg.BlurRadius,
		},
	)

	return &Services{
		Image: imageService,
	}, nil
}

// CreateHandler creates an HTTP handler with all middleware applied
func CreateHandler(svcs *Services, cfg *config.Config) http.Handler {
	// Initialize handlers
	h := handlers.New(svcs.Image, cfg.MaxUploadBytes, cfg.MaxImageDimension)

	// Setup router with middleware
	mux := router.Setup(h)

	if len(cfg.APIKeys) == 0 {
		log.Println("⚠️  API_KEYS not set, authentication disabled")
	}

	// Apply global middleware, innermost first
	limiter := middleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)
	wrappedHandler := middleware.APIKeyAuth(cfg.APIKeys)(mux)
	wrappedHandler = limiter.Limit(wrappedHandler)
	wrappedHandler = middleware.CORS(wrappedHandler, cfg.AllowedOrigins)
	wrappedHandler = middleware.Logger(wrappedHandler)
	wrappedHandler = middleware.RequestID(wrappedHandler)

	return wrappedHandler
}
