// Package middleware provides reusable HTTP middleware for the stop
// reservation API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/stopbook/backend/internal/identity"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry in allowedOrigins must be a full origin (scheme + host, no trailing slash).
// The rider id header is allowed so the development identity mode works
// from a browser.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", identity.HeaderRiderID, identity.HeaderStaffToken},
		ExposedHeaders: []string{"Content-Disposition"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
