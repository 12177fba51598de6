package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// EnableCORS wraps next with CORS handling. With no origins configured any
// origin is echoed back, which is what local frontend dev servers need.
func EnableCORS(origins []string, next http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(origins) == 0 {
		opts.AllowOriginFunc = func(origin string) bool { return true }
	}
	return cors.New(opts).Handler(next)
}
