package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/leeloo-sync/internal/auth"
)

var tokenFunctions []string

var issueTokenCmd = &cobra.Command{
	Use:   "issue-token <site>",
	Short: "Issue a web-service token for a calling site",
	Long: `Print a signed web-service token whose subject is the calling site.
With --function the token may only call the listed functions.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, closer, err := setup()
		if err != nil {
			return err
		}
		defer closer.Close()

		tm := auth.NewTokenManager(cfg.Auth.TokenSecret, cfg.Auth.TokenIssuer, cfg.Auth.TokenTTL)
		token, err := tm.Issue(args[0], tokenFunctions...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	issueTokenCmd.Flags().StringSliceVar(&tokenFunctions, "function", nil, "restrict the token to these functions (repeatable)")
	rootCmd.AddCommand(issueTokenCmd)
}
