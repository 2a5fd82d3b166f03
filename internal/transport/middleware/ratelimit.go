package middleware

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/heartmarshall/leeloo-sync/internal/config"
	"github.com/heartmarshall/leeloo-sync/internal/metrics"
)

// RateLimit limits requests per client IP. A disabled config yields a
// pass-through middleware.
func RateLimit(cfg config.RateLimitConfig) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler { return next }
	}

	return httprate.Limit(cfg.Requests, cfg.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			metrics.HTTPRateLimited.WithLabelValues(routePattern(r)).Inc()
			WriteException(w, http.StatusTooManyRequests, Exception{
				Exception: "moodle_exception",
				ErrorCode: "ratelimited",
				Message:   "Too many requests",
			})
		}),
	)
}

func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}
	return "unmatched"
}
