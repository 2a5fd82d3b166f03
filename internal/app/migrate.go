package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/leeloo-sync/internal/config"
	"github.com/heartmarshall/leeloo-sync/migrations"
)

// Migrate applies (up), rolls back one step of (down) or reports (status)
// the embedded goose migrations.
func Migrate(ctx context.Context, cfg config.DatabaseConfig, command string, logger *slog.Logger) error {
	provider, err := migrations.Open(ctx, cfg.DSN)
	if err != nil {
		return err
	}
	defer provider.Close()

	switch command {
	case "up":
		results, err := provider.Up(ctx)
		if err != nil {
			return fmt.Errorf("migrate up: %w", err)
		}
		for _, r := range results {
			logger.Info("migration applied",
				slog.Int64("version", r.Source.Version),
				slog.Duration("duration", r.Duration),
			)
		}
		if len(results) == 0 {
			logger.Info("schema up to date")
		}

	case "down":
		r, err := provider.Down(ctx)
		if err != nil {
			return fmt.Errorf("migrate down: %w", err)
		}
		logger.Info("migration rolled back", slog.Int64("version", r.Source.Version))

	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return fmt.Errorf("migrate status: %w", err)
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}

	default:
		return fmt.Errorf("unknown migrate command %q (want up, down or status)", command)
	}
	return nil
}
