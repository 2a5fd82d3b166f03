// Command leeloosync runs the Moodle ↔ Leeloo LXP sync gateway and its
// maintenance tasks.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leeloo-sync/internal/app"
	"github.com/heartmarshall/leeloo-sync/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "leeloosync",
	Short:         "Moodle web-service gateway for Leeloo LXP",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file (default $CONFIG_PATH or ./config.yaml)")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and builds the logger. The returned closer
// flushes the log file sink.
func setup() (*config.Config, *slog.Logger, io.Closer, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}
	logger, closer := app.NewLogger(cfg.Log)
	return cfg, logger, closer, nil
}
