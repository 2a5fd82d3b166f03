package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leeloo-sync/internal/app"
)

var migrateTimeout time.Duration

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, logger, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), migrateTimeout)
		defer cancel()

		return app.Migrate(ctx, cfg.Database, command, logger)
	},
}

func init() {
	migrateCmd.Flags().DurationVar(&migrateTimeout, "timeout", 5*time.Minute, "overall timeout")
	rootCmd.AddCommand(migrateCmd)
}
