package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/avikapoor/basketline-backend/pkg/config"
)

var defaultCORSOrigins = []string{
	"http://localhost:3000", // local dev
	"https://basketline.app",
	"https://www.basketline.app",
}

// CORS returns middleware that applies the API's allowed origin policy.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = defaultCORSOrigins
	}
	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-BL-Token", "Idempotency-Key", "X-Requested-With"},
		ExposedHeaders:   []string{"X-BL-Token"},
		AllowCredentials: true,
		MaxAge:           300,
	}).Handler
}
