// Package sitecfg resolves the LXP install URL: the config table row
// overrides the static configuration value, and the result is cached for a
// TTL until the leeloo settings group is written again.
package sitecfg

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/leeloo-sync/internal/domain"
	"github.com/heartmarshall/leeloo-sync/internal/metrics"
)

type configReader interface {
	GetConfig(ctx context.Context, name string) (string, error)
}

// Resolver caches the install URL.
type Resolver struct {
	store    configReader
	fallback string
	ttl      time.Duration
	log      *slog.Logger
	now      func() time.Time

	mu      sync.Mutex
	value   string
	expires time.Time
	cached  bool
}

// NewResolver creates a resolver. A zero ttl disables caching.
func NewResolver(log *slog.Logger, store configReader, fallback string, ttl time.Duration) *Resolver {
	return &Resolver{
		store:    store,
		fallback: strings.TrimRight(strings.TrimSpace(fallback), "/"),
		ttl:      ttl,
		log:      log.With("service", "sitecfg"),
		now:      time.Now,
	}
}

// InstallURL returns the stored install URL, or the configured fallback
// when none is stored.
func (r *Resolver) InstallURL(ctx context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.cached && r.now().Before(r.expires) {
		metrics.SiteConfigCacheHits.Inc()
		return r.value, nil
	}
	metrics.SiteConfigCacheMisses.Inc()

	v, err := r.store.GetConfig(ctx, domain.ConfigInstallURL)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		v = ""
	case err != nil:
		return "", fmt.Errorf("load %s: %w", domain.ConfigInstallURL, err)
	}

	v = strings.TrimRight(strings.TrimSpace(v), "/")
	if v == "" {
		v = r.fallback
	}

	if r.ttl > 0 {
		r.value, r.expires, r.cached = v, r.now().Add(r.ttl), true
	}
	return v, nil
}

// Invalidate drops the cached value.
func (r *Resolver) Invalidate() {
	r.mu.Lock()
	r.cached = false
	r.value = ""
	r.mu.Unlock()
	r.log.Debug("install url cache invalidated")
}
