package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bnema/vitrine/internal/cli/styles"
)

var devOverrideCmd = &cobra.Command{
	Use:       "dev-override <on|off>",
	Short:     "Toggle the local developer override for theme switching",
	Long:      `Store or clear the developer override flag. When set, theme switching is enabled on the next start even in production.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"on", "off"},
	RunE:      runDevOverride,
}

func init() {
	rootCmd.AddCommand(devOverrideCmd)
}

func runDevOverride(cmd *cobra.Command, args []string) error {
	a := GetApp()
	if a == nil {
		return fmt.Errorf("app not initialized")
	}

	var enabled bool
	switch strings.ToLower(strings.TrimSpace(args[0])) {
	case "on", "true", "1", "yes":
		enabled = true
	case "off", "false", "0", "no":
		enabled = false
	default:
		return fmt.Errorf("invalid value %q (expected on or off)", args[0])
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	if !a.Store.SetDeveloperOverride(a.Ctx(), enabled) {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWarning("Storage unavailable, developer override not saved"))
		return nil
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Developer override %s (takes effect on next start)", state)))
	return nil
}
