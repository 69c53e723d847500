// Package cmd provides Cobra CLI commands for vitrine.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/internal/cli"
	"github.com/bnema/vitrine/internal/domain/build"
	"github.com/bnema/vitrine/internal/logging"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootOpts  cli.Options
	rootCmd   = &cobra.Command{
		Use:   "vitrine",
		Short: "Appearance preference engine for the marketing site",
		Long: `Vitrine - the appearance preference engine of the marketing site.

Vitrine tracks the visitor's palette and light/dark mode, persists the choice,
resolves stored, deployment and ambient sources at startup and applies the
result to the document root.

The native CLI runs the same engine against a local SQLite store so you can
inspect the resolution chain, change the preference and preview deployment
settings without a browser.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			app = nil
			switch cmd.Name() {
			case "help", "completion", "schema", "version", "init":
				return nil
			}

			var err error
			app, err = cli.NewApp(rootOpts)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootOpts.ConfigFile, "config", "", "config file (default $XDG_CONFIG_HOME/vitrine/config.toml)")
	rootCmd.PersistentFlags().StringVar(&rootOpts.DBPath, "db", "", "SQLite database path (default $XDG_DATA_HOME/vitrine/vitrine.sqlite)")
}

// Execute runs the root command.
func Execute() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run executes the root command and releases the app whether or not the
// command failed. Cobra skips post-run hooks after a RunE error.
func run() error {
	defer closeApp()
	return rootCmd.Execute()
}

func closeApp() {
	if app == nil {
		return
	}
	if err := app.Close(); err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("failed to close app")
	}
	app = nil
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
