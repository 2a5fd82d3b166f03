package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leeloo-sync/internal/app"
)

var pruneJournalCmd = &cobra.Command{
	Use:   "prune-journal",
	Short: "Delete sync journal records past the retention window",
	Long: `Delete sync_journal rows older than journal.retention_days.
Intended to be run by an external cron job.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
		defer cancel()

		deleted, err := app.PruneJournal(ctx, cfg, logger)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %d journal records\n", deleted)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pruneJournalCmd)
}
