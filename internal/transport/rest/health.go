package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

const checkTimeout = 3 * time.Second

// Component and overall states reported by the health endpoints.
const (
	statusOK           = "ok"
	statusDown         = "down"
	statusDegraded     = "degraded"
	statusUnconfigured = "unconfigured"
)

type dbPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the liveness, readiness and health endpoints.
type HealthHandler struct {
	db      dbPinger
	site    installURLResolver
	version string
}

// NewHealthHandler creates a HealthHandler. site may be nil.
func NewHealthHandler(db dbPinger, site installURLResolver, version string) *HealthHandler {
	return &HealthHandler{db: db, site: site, version: version}
}

// HealthResponse is the body of every health endpoint.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus describes one dependency of the gateway.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Live answers 200 as long as the process serves requests.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: statusOK, Timestamp: time.Now()})
}

// Ready answers 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.database(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{Status: db.Status, Timestamp: time.Now()})
}

// Health reports the database and the LXP install URL. Only the database
// decides the overall status; an unresolved LXP URL leaves the gateway
// serving Moodle calls.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.database(r.Context())
	writeJSON(w, httpStatus(db.Status), HealthResponse{
		Status:  db.Status,
		Version: h.version,
		Components: map[string]CompStatus{
			"database": db,
			"lxp":      h.lxp(r.Context()),
		},
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) database(ctx context.Context) CompStatus {
	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return CompStatus{Status: statusDown}
	}
	return CompStatus{Status: statusOK, Latency: time.Since(start).String()}
}

func (h *HealthHandler) lxp(ctx context.Context) CompStatus {
	if h.site == nil {
		return CompStatus{Status: statusUnconfigured}
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	url, err := h.site.InstallURL(ctx)
	switch {
	case err != nil:
		return CompStatus{Status: statusDegraded, Detail: err.Error()}
	case url == "":
		return CompStatus{Status: statusUnconfigured}
	default:
		return CompStatus{Status: statusOK, Detail: url}
	}
}

func httpStatus(status string) int {
	if status == statusOK {
		return http.StatusOK
	}
	return http.StatusServiceUnavailable
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
