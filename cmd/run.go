package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/mcquiz/internal/app"
	"github.com/abhisek/mcquiz/internal/config"
	"github.com/abhisek/mcquiz/internal/console"
	"github.com/abhisek/mcquiz/internal/loader"
	"github.com/abhisek/mcquiz/internal/session"
)

// runApp resolves configuration, builds the loader, and launches either
// the full-screen UI or the plain console.
func runApp(cmd *cobra.Command, plain bool) error {
	cfg, err := config.FromEnv(cmd.Flags())
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	l := newLoader(cfg)

	if plain || cfg.Plain {
		c := console.New(cmd.InOrStdin(), cmd.OutOrStdout(), os.Getenv("NO_COLOR") == "")
		_, err := c.Run(cmd.Context(), session.New(), l)
		return err
	}

	return app.Run(app.Options{Loader: l})
}

func newLoader(cfg config.Config) *loader.Loader {
	return loader.New(loader.SourceFor(cfg.Questions), loader.WithSeed(cfg.Seed))
}
