// Package metrics holds the Prometheus collectors of the gateway. They are
// registered on the default registry and served on /metrics.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
)

var (
	// HTTP
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leeloosync_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status_code"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leeloosync_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		},
		[]string{"method", "route"},
	)

	HTTPRateLimited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leeloosync_http_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
		[]string{"route"},
	)

	// Web-service functions
	WSCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leeloosync_ws_calls_total",
			Help: "Total number of web-service function calls by outcome",
		},
		[]string{"function", "outcome"}, // ok, rejected, invalid, denied, error
	)

	WSCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "leeloosync_ws_call_duration_seconds",
			Help:    "Web-service function duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"function"},
	)

	// Site configuration cache
	SiteConfigCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leeloosync_sitecfg_cache_hits_total",
			Help: "Total number of install URL lookups served from cache",
		},
	)

	SiteConfigCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leeloosync_sitecfg_cache_misses_total",
			Help: "Total number of install URL lookups that hit the database",
		},
	)
)

// Outcomes of a web-service call.
const (
	OutcomeOK       = "ok"
	OutcomeRejected = "rejected"
	OutcomeInvalid  = "invalid"
	OutcomeDenied   = "denied"
	OutcomeError    = "error"
)

// RecordHTTPRequest records one served HTTP request.
func RecordHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordWSCall records one web-service function call.
func RecordWSCall(function string, duration time.Duration, err error) {
	WSCallsTotal.WithLabelValues(function, Outcome(err)).Inc()
	WSCallDuration.WithLabelValues(function).Observe(duration.Seconds())
}

// Outcome classifies a call error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrInUse), errors.Is(err, domain.ErrUnknownID):
		return OutcomeRejected
	case errors.Is(err, domain.ErrValidation):
		return OutcomeInvalid
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrForbidden):
		return OutcomeDenied
	default:
		return OutcomeError
	}
}
