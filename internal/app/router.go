package app

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/leeloo-sync/internal/config"
	"github.com/heartmarshall/leeloo-sync/internal/transport/middleware"
)

// newRouter mounts health, metrics and the web-service endpoints.
func newRouter(cfg *config.Config, logger *slog.Logger, h handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)

	r.Get("/live", h.health.Live)
	r.Get("/ready", h.health.Ready)
	r.Get("/health", h.health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/webservice/rest", func(r chi.Router) {
		r.Use(
			middleware.RateLimit(cfg.RateLimit),
			middleware.Auth(h.tokens, logger),
		)
		r.Method(http.MethodPost, "/{function}", h.webservice)
		r.Method(http.MethodGet, "/{function}", h.webservice)
	})

	return r
}
