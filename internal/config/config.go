package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port               string
	OutputBaseDir      string  // Base path under which the output directory is created
	MaxUploadBytes     int64   // Largest accepted multipart upload
	MaxImageDimension  int     // Largest width or height accepted on /resize
	JPEGQuality        int     // Quality for JPEG responses (1-100)
	BlurRadius         float64 // Gaussian sigma used by the preprocessing pipeline
	MaxRotationDegrees float64 // Rotation bound used by the preprocessing pipeline
	FlipProbability    float64 // Mirror probability used by the preprocessing pipeline
	AllowedOrigins     []string
	APIKeys            []string      // API keys for authentication (comma-separated); empty disables auth
	RateLimitRPS       float64       // Requests per second allowed per client
	RateLimitBurst     int           // Burst size per client
	ShutdownTimeout    time.Duration // Grace period for in-flight requests on shutdown
	IsVercel           bool          // Detected via VERCEL env var
}

// Load reads configuration from environment variables and .env file.
// It loads the .env file if present, then populates the Config struct.
// Returns an error if the resulting configuration is invalid.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8000"),
		OutputBaseDir:      getEnv("OUTPUT_BASE_DIR", "."),
		MaxUploadBytes:     int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		MaxImageDimension:  getIntEnv("MAX_IMAGE_DIMENSION", 4096),
		JPEGQuality:        getIntEnv("JPEG_QUALITY", 75),
		BlurRadius:         getFloatEnv("BLUR_RADIUS", 2),
		MaxRotationDegrees: getFloatEnv("MAX_ROTATION_DEGREES", 15),
		FlipProbability:    getFloatEnv("FLIP_PROBABILITY", 0.5),
		AllowedOrigins:     getList("ALLOWED_ORIGINS", []string{"*"}),
		APIKeys:            getList("API_KEYS", []string{}),
		RateLimitRPS:       getFloatEnv("RATE_LIMIT_RPS", 10),
		RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 20),
		ShutdownTimeout:    getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		IsVercel:           getEnv("VERCEL", "") != "",
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that all configuration fields hold usable values.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive")
	}
	if c.MaxImageDimension < 1 || c.MaxImageDimension > 8192 {
		return fmt.Errorf("MAX_IMAGE_DIMENSION must be between 1 and 8192")
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("JPEG_QUALITY must be between 1 and 100")
	}
	if c.BlurRadius < 0 {
		return fmt.Errorf("BLUR_RADIUS cannot be negative")
	}
	if c.MaxRotationDegrees < 0 {
		return fmt.Errorf("MAX_ROTATION_DEGREES cannot be negative")
	}
	if c.FlipProbability < 0 || c.FlipProbability > 1 {
		return fmt.Errorf("FLIP_PROBABILITY must be between 0 and 1")
	}
	if c.RateLimitRPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimitBurst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

// Retrieves an environment variable or returns a default value if not set.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// Retrieves an integer from environment variable or returns a default value.
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// Retrieves a float from environment variable or returns a default value.
func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

// Retrieves a duration from environment variable or returns a default value.
// It supports both time.Duration format (e.g., "10s", "1m") and integer seconds.
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
		if seconds, err := strconv.Atoi(value); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return defaultValue
}

// Retrieves a comma-separated list from environment variable or returns a default value.
// Surrounding whitespace and empty items are dropped.
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
