package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on
// allowedOrigins. Each entry must be a full origin (scheme + host, no
// trailing slash). The planner API is consumed from a browser frontend, so
// preflight handling matters for the POST endpoints.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
