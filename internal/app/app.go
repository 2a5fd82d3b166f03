package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/activity"
	analyticsrepo "github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/analytics"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/audit"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/course"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/enrol"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/gradecategory"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/gradeitem"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/scale"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/settings"
	"github.com/heartmarshall/leeloo-sync/internal/adapter/postgres/tag"
	"github.com/heartmarshall/leeloo-sync/internal/auth"
	"github.com/heartmarshall/leeloo-sync/internal/config"
	"github.com/heartmarshall/leeloo-sync/internal/service/analytics"
	"github.com/heartmarshall/leeloo-sync/internal/service/gateway"
	"github.com/heartmarshall/leeloo-sync/internal/service/sitecfg"
	"github.com/heartmarshall/leeloo-sync/internal/transport/rest"
)

// Run connects to the database, wires the services and serves HTTP until
// ctx is cancelled. The server is then shut down gracefully.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	logger.Info("starting leeloo-sync",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	handler := NewHandler(cfg, logger, pool)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// NewHandler wires repositories and services on pool and returns the HTTP
// handler serving every route.
func NewHandler(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) http.Handler {
	return newRouter(cfg, logger, wire(cfg, logger, pool))
}

// handlers holds the wired HTTP handlers.
type handlers struct {
	webservice *rest.WebServiceHandler
	health     *rest.HealthHandler
	tokens     *auth.TokenManager
}

func wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) handlers {
	tx := postgres.NewTxManager(pool)

	categories := gradecategory.New(pool)
	journal := audit.New(pool)
	settingsRepo := settings.New(pool)

	resolver := sitecfg.NewResolver(logger, settingsRepo, cfg.Leeloo.InstallURL, cfg.Leeloo.CacheTTL)

	gw := gateway.NewService(logger, gateway.Repos{
		Courses:    course.New(pool),
		Categories: categories,
		Items:      gradeitem.New(pool),
		Tags:       tag.New(pool),
		Scales:     scale.New(pool),
		Activities: activity.New(pool),
		Settings:   settingsRepo,
		Enrol:      enrol.New(pool),
	}, journal, tx, resolver)

	reports := analytics.NewService(logger, analyticsrepo.New(pool), categories, journal)

	return handlers{
		webservice: rest.NewWebServiceHandler(logger, gw, reports, resolver, Version, cfg.Server.MaxBodyBytes),
		health:     rest.NewHealthHandler(pool, resolver, BuildVersion()),
		tokens:     auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL),
	}
}

// PruneJournal removes journal records older than the configured retention.
// A zero retention keeps everything.
func PruneJournal(ctx context.Context, cfg *config.Config, logger *slog.Logger) (int64, error) {
	if cfg.Journal.RetentionDays == 0 {
		logger.Info("journal retention disabled")
		return 0, nil
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return 0, fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	threshold := time.Now().UTC().Add(-cfg.Journal.Retention())
	deleted, err := audit.New(pool).Prune(ctx, threshold)
	if err != nil {
		return 0, err
	}

	logger.Info("journal pruned",
		slog.Int64("deleted", deleted),
		slog.Time("threshold", threshold),
	)
	return deleted, nil
}
