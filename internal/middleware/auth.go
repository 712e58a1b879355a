package middleware

import (
	"crypto/subtle"
	"net/http"

	apperrors "imageprep-api/internal/errors"
)

// publicPaths never require an API key.
var publicPaths = map[string]bool{
	"/":       true,
	"/health": true,
}

// APIKeyAuth creates middleware that validates API key authentication.
// It checks the X-API-Key header against a list of valid API keys using
// constant-time comparison. An empty key list disables the check.
func APIKeyAuth(apiKeys []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(apiKeys) == 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if publicPaths[r.URL.Path] {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("X-API-Key")
			if key == "" {
				writeError(w, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error()+": missing API key")
				return
			}

			valid := false
			for _, validKey := range apiKeys {
				if subtle.ConstantTimeCompare([]byte(key), []byte(validKey)) == 1 {
					valid = true
					break
				}
			}

			if !valid {
				writeError(w, http.StatusUnauthorized, apperrors.ErrUnauthorized.Error()+": invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
