package middleware

import (
	"log/slog"
	"net/http"

	"github.com/strategiq/scoreboard/internal/api/response"
)

// KeyAuthenticator verifies an admin key.
type KeyAuthenticator interface {
	Enabled() bool
	Authenticate(rawKey string) error
}

// AdminKey is middleware that requires a valid X-API-Key header when the
// authenticator is enabled. A nil or disabled authenticator lets every request through.
func AdminKey(authn KeyAuthenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if authn == nil || !authn.Enabled() {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			rawKey := r.Header.Get("X-API-Key")
			if rawKey == "" {
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Admin key is required", requestID)
				return
			}

			if err := authn.Authenticate(rawKey); err != nil {
				slog.Warn("rejected admin key", "path", r.URL.Path, "requestId", requestID)
				response.Err(w, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid admin key", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
