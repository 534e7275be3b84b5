package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/adapter/postgres"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/app"
)

func recountCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "recount",
		Short: "Recompute words_learned for every user from progress records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pool, err := postgres.NewPool(ctx, e.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			svc := app.NewProgressService(e.cfg, e.logger, pool, nil)

			start := time.Now()
			n, err := svc.RecountWordsLearned(ctx)
			if err != nil {
				e.logger.Error("recount failed",
					slog.Int("users_done", n),
					slog.String("error", err.Error()),
				)
				return err
			}

			e.logger.Info("recount completed",
				slog.Int("users", n),
				slog.Duration("took", time.Since(start)),
			)
			return nil
		},
	}
}
