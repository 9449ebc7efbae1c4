package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/finance-tracker/insights/config"
	"github.com/finance-tracker/insights/internal/integration/adapters"
)

func tokenCmd() *cobra.Command {
	var (
		userValue string
		email     string
		ttl       time.Duration
	)

	cfg := config.Load()

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user",
		Long: `Sign an access token with JWT_SECRET so the insight API can be called
without the authentication service, e.g. from local scripts.`,
		Example: `  insights token --user 3f2a0c1e-8d4b-4c55-9a61-0e6f2b7d9c10 --ttl 1h`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(userValue)
			if err != nil {
				return fmt.Errorf("invalid --user value %q: %w", userValue, err)
			}

			token, err := adapters.NewTokenService(cfg.JWT.Secret, ttl).
				GenerateAccessToken(cmd.Context(), userID, email)
			if err != nil {
				return err
			}

			slog.Debug("Access token issued", "user_id", userID, "ttl", ttl)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userValue, "user", "", "user ID the token is issued for")
	cmd.Flags().StringVar(&email, "email", "", "email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", cfg.JWT.AccessTokenExpiry, "token lifetime")
	cmd.Flags().StringVar(&cfg.JWT.Secret, "secret", cfg.JWT.Secret, "signing secret (defaults to JWT_SECRET)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
