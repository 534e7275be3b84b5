// Command sozluk-adm is the administration tool: schema migrations,
// words_learned recounts and development access tokens.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mctelektrik41-blip/sozluk-backend/internal/app"
	"github.com/mctelektrik41-blip/sozluk-backend/internal/config"
)

// env holds what every subcommand needs; it is filled in by the root
// command before any subcommand runs.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	e := &env{}

	root := &cobra.Command{
		Use:          "sozluk-adm",
		Short:        "Sözlük administration tool",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			e.cfg = cfg
			e.logger = app.NewLogger(cfg.Log)
			return nil
		},
	}

	root.AddCommand(migrateCmd(e))
	root.AddCommand(recountCmd(e))
	root.AddCommand(tokenCmd(e))

	return root
}
