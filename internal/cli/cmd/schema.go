package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/internal/infrastructure/config"
)

var schemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the stored preference record",
	Long: `Print the JSON schema of the preference record as stored under the
preference key. The theme property is restricted to the configured palettes.

With --config-file, print the schema of the configuration file instead.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaConfig, "config-file", false, "print the configuration file schema")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	var (
		out []byte
		err error
	)
	if schemaConfig {
		out, err = config.ConfigSchema()
	} else {
		out, err = config.PreferenceSchema(schemaThemes().ThemeSet())
	}
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// schemaThemes loads the configured palettes, falling back to defaults when
// the config cannot be read.
func schemaThemes() *config.Config {
	mgr, err := config.NewManager(rootOpts.ConfigFile)
	if err != nil {
		return config.DefaultConfig()
	}
	if err := mgr.Load(); err != nil {
		return config.DefaultConfig()
	}
	return mgr.Get()
}
