package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/cli"
	"github.com/bnema/vitrine/internal/cli/styles"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/colorscheme"
	"github.com/bnema/vitrine/internal/infrastructure/config"
	"github.com/bnema/vitrine/internal/logging"
)

var configWatch bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved deployment configuration",
	Long: `Print the deployment configuration the engine resolved from the config file,
VITRINE_* environment variables and the developer override, plus the ambient
light/dark answer and which detector produced it.

With --watch, the configuration is re-resolved and printed again every time the
config file changes, until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long:  `Write the default configuration to the config path. An existing file is never overwritten.`,
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)

	configCmd.Flags().BoolVarP(&configWatch, "watch", "w", false, "re-print the configuration when the config file changes")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	ambient := a.Detector.Resolve(a.Ctx())
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEnvironment(a.Engine.Environment, ambient, a.ConfigFile))

	if !configWatch {
		return nil
	}
	return watchConfig(cmd, a, renderer)
}

// watchConfig previews the configuration after each file change. The running
// engine keeps the configuration it resolved at startup.
func watchConfig(cmd *cobra.Command, a *cli.App, renderer *styles.AppearanceRenderer) error {
	ctx, stop := signal.NotifyContext(a.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		env, ambient := previewEnvironment(ctx, a, cfg)
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderEnvironment(env, ambient, a.ConfigFile))
	})
	if err := a.ConfigManager.Watch(); err != nil {
		return fmt.Errorf("watch config: %w", err)
	}

	logging.FromContext(ctx).Info().Str("file", a.ConfigFile).Msg("watching config file")
	<-ctx.Done()
	return nil
}

func previewEnvironment(ctx context.Context, a *cli.App, cfg *config.Config) (entity.EnvironmentConfig, port.ColorSchemePreference) {
	env := usecase.ResolveEnvironment(ctx, usecase.ResolveEnvironmentInput{
		Source:            config.NewEnvironmentSource(a.ConfigManager.Viper()),
		Themes:            cfg.ThemeSet(),
		HasHostDocument:   true,
		DeveloperOverride: a.Store.LoadDeveloperOverride,
	})
	ambient := colorscheme.NewNativeResolver(colorscheme.NewConfigAdapter(cfg)).Resolve(ctx)
	return env, ambient
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := rootOpts.ConfigFile
	if path == "" {
		var err error
		if path, err = config.GetConfigFile(); err != nil {
			return fmt.Errorf("resolve config path: %w", err)
		}
	}

	mgr, err := config.NewManager(path)
	if err != nil {
		return fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.WriteDefault(path); err != nil {
		return err
	}

	renderer := styles.NewAppearanceRenderer(styles.NewTheme(entity.ModeLight))
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Config written to %s", path)))
	return nil
}
