package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leeloo-sync/internal/app"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web-service endpoint",
	Long: `Start the HTTP server exposing /webservice/rest/{function},
the health endpoints and /metrics. SIGINT or SIGTERM shuts it down gracefully.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return app.Run(ctx, cfg, logger)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
