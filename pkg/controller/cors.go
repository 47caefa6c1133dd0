package controller

import (
	"net/http"
	"slices"
)

const (
	corsAllowHeaders = "Content-Type, Content-Length, Accept-Encoding, accept, origin, Cache-Control, X-Request-Id"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// WithCORS returns a middleware that sets CORS headers for the allowed
// origins and short-circuits OPTIONS preflight requests with 204 No Content.
// An origin of "*" allows every origin without credentials.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(allowedOrigins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case wildcard:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case origin != "" && slices.Contains(allowedOrigins, origin):
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Headers", corsAllowHeaders)
			w.Header().Set("Access-Control-Allow-Methods", corsAllowMethods)
			w.Header().Set("Access-Control-Expose-Headers", "X-Request-Id")

			// handle preflight requests quickly
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
