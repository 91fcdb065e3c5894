package main

import (
	"fmt"

	"github.com/tjper/spacex/internal/config"
	"github.com/tjper/spacex/internal/favorites"
	"github.com/tjper/spacex/internal/prefs"
	"github.com/tjper/spacex/internal/spacex"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is set at build time via -ldflags.
var version = "dev"

// app holds the dependencies shared by every command. It is populated by the
// root command's PersistentPreRunE.
type app struct {
	cfg      *config.Config
	logger   *zap.Logger
	markdown bool
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Load()}
	var verbose bool

	cmd := &cobra.Command{
		Use:           "spacexctl",
		Short:         "Browse past SpaceX launches and manage saved launches",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.BindFlags(cmd.Flags()); err != nil {
				return fmt.Errorf("bind flags; error: %w", err)
			}

			a.logger = zap.NewNop()
			if verbose {
				logger, err := zap.NewDevelopment()
				if err != nil {
					return fmt.Errorf("create logger; error: %w", err)
				}
				a.logger = logger
			}
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	f := cmd.PersistentFlags()
	f.String("api-url", spacex.DefaultURL, "SpaceX GraphQL endpoint")
	f.Duration("request-timeout", 0, "Bound on each API request (default from SPACEX_REQUEST_TIMEOUT)")
	f.String("prefs-backend", prefs.BackendSQLite, "Preference store backend: sqlite, redis, postgres, or memory")
	f.String("prefs-path", "spacex.db", "SQLite preference database path")
	f.String("redis-addr", "", "Redis address for the redis backend")
	f.String("redis-password", "", "Redis password for the redis backend")
	f.String("dsn", "", "Postgres DSN for the postgres backend")
	f.String("favorites-key", favorites.DefaultKey, "Preference key saved launches are stored under")
	f.BoolVar(&a.markdown, "markdown", false, "Render tables as Markdown")
	f.BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")

	cmd.AddCommand(newLaunchesCmd(a))
	cmd.AddCommand(newSavedCmd(a))

	return cmd
}

func (a *app) client() *spacex.Client {
	return spacex.NewClient(
		a.logger,
		a.cfg.APIURL(),
		spacex.WithTimeout(a.cfg.RequestTimeout()),
	)
}

// favorites opens the configured preference store. The returned close func
// releases it.
func (a *app) favorites(cmd *cobra.Command) (*favorites.Store, func(), error) {
	store, err := prefs.Open(cmd.Context(), a.logger, a.cfg.Prefs())
	if err != nil {
		return nil, nil, fmt.Errorf("open preferences; error: %w", err)
	}

	saved := favorites.NewStore(a.logger, store, favorites.WithKey(a.cfg.FavoritesKey()))
	return saved, func() { _ = store.Close() }, nil
}
