package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/heartmarshall/leeloo-sync/internal/config"
)

// CORS returns the go-chi/cors handler configured from cfg.
func CORS(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
