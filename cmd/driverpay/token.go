package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"driverpay/internal/auth"
)

func tokenCmd(c *cli) *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint an API token signed with JWT_SECRET",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.cfg.JWTSecret == "" {
				return fmt.Errorf("JWT_SECRET is not configured")
			}
			token, err := auth.GenerateToken(c.cfg.JWTSecret, subject, []string{auth.ScopeCompute}, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "who the token is issued to")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	_ = cmd.MarkFlagRequired("subject")
	return cmd
}
