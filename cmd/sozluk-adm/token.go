package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/auth"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/domain"
)

func tokenCmd(e *env) *cobra.Command {
	var (
		rawUserID string
		role      string
		ttl       time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an access token for a user (development only)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := uuid.Parse(rawUserID)
			if err != nil {
				return fmt.Errorf("--user: %w", err)
			}
			r := domain.UserRole(role)
			if !r.IsValid() {
				return fmt.Errorf("--role: unknown role %q", role)
			}
			if ttl <= 0 {
				ttl = e.cfg.Auth.AccessTokenTTL
			}

			m := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := m.GenerateAccessTokenTTL(userID, r, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&rawUserID, "user", "", "user ID (UUID) to put in the subject claim")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleStudent), "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default: auth.access_token_ttl)")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
