package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/bnema/vitrine/internal/cli"
	"github.com/bnema/vitrine/internal/cli/model"
	"github.com/bnema/vitrine/internal/cli/styles"
	"github.com/bnema/vitrine/internal/domain/entity"
)

var pickForce bool

var appearanceCmd = &cobra.Command{
	Use:     "appearance",
	Aliases: []string{"a"},
	Short:   "Inspect and change the appearance preference",
	Long: `Inspect and change the stored palette and light/dark mode.

Every change goes through the same engine the site runs: the document tags are
updated and the record is persisted under the configured storage key.`,
}

var appearanceShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the live preference and document tags",
	Args:  cobra.NoArgs,
	RunE:  runAppearanceShow,
}

var appearanceSetThemeCmd = &cobra.Command{
	Use:   "set-theme <id>",
	Short: "Switch the palette",
	Args:  cobra.ExactArgs(1),
	RunE:  runAppearanceSetTheme,
}

var appearanceSetModeCmd = &cobra.Command{
	Use:       "set-mode <light|dark>",
	Short:     "Switch between light and dark",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{string(entity.ModeLight), string(entity.ModeDark)},
	RunE:      runAppearanceSetMode,
}

var appearanceToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Flip light and dark",
	Args:  cobra.NoArgs,
	RunE:  runAppearanceToggle,
}

var appearanceResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the stored preference and apply deployment defaults",
	Args:  cobra.NoArgs,
	RunE:  runAppearanceReset,
}

var appearancePickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick palette and mode interactively",
	Long: `Open an interactive picker for palette and mode.

The picker is only offered when theme switching is enabled for the deployment
(development, VITRINE_ENABLE_THEME_SWITCHING or the developer override).`,
	Args: cobra.NoArgs,
	RunE: runAppearancePick,
}

func init() {
	rootCmd.AddCommand(appearanceCmd)
	appearanceCmd.AddCommand(appearanceShowCmd)
	appearanceCmd.AddCommand(appearanceSetThemeCmd)
	appearanceCmd.AddCommand(appearanceSetModeCmd)
	appearanceCmd.AddCommand(appearanceToggleCmd)
	appearanceCmd.AddCommand(appearanceResetCmd)
	appearanceCmd.AddCommand(appearancePickCmd)

	appearancePickCmd.Flags().BoolVarP(&pickForce, "force", "f", false, "open the picker even when switching is disabled")
}

// readyApp returns the initialized app.
func readyApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	a.Initialize()
	return a, nil
}

func runAppearanceShow(cmd *cobra.Command, _ []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPreference(styles.PreferenceView{
		Record:           a.Manager.Read(),
		State:            a.Manager.State().String(),
		Source:           a.Manager.Source(),
		SwitchingEnabled: a.Manager.SwitchingEnabled(),
		Classes:          a.Document.Classes(),
		Themes:           a.Manager.Themes().IDs(),
	}))
	return nil
}

func runAppearanceSetTheme(cmd *cobra.Command, args []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	if !a.Manager.SetTheme(a.Ctx(), args[0]) {
		return fmt.Errorf("unknown theme %q (available: %s)", args[0], joinThemes(a.Manager.Themes()))
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Theme set to %s", a.Manager.Read().Theme)))
	return nil
}

func runAppearanceSetMode(cmd *cobra.Command, args []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	mode, ok := entity.ParseMode(args[0])
	if !ok || !a.Manager.SetMode(a.Ctx(), mode) {
		return fmt.Errorf("unknown mode %q (available: light, dark)", args[0])
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Mode set to %s", mode)))
	return nil
}

func runAppearanceToggle(cmd *cobra.Command, _ []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	a.Manager.ToggleMode(a.Ctx())

	renderer := styles.NewAppearanceRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Mode set to %s", a.Manager.Read().Mode)))
	return nil
}

func runAppearanceReset(cmd *cobra.Command, _ []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	a.Manager.Reset(a.Ctx())

	renderer := styles.NewAppearanceRenderer(a.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderSuccess(fmt.Sprintf("Preference reset to %s", a.Manager.Read())))
	return nil
}

func runAppearancePick(cmd *cobra.Command, _ []string) error {
	a, err := readyApp()
	if err != nil {
		return err
	}

	renderer := styles.NewAppearanceRenderer(a.Theme)
	if !a.Manager.SwitchingEnabled() && !pickForce {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderWarning("Theme switching is disabled for this deployment (use --force to override)"))
		return nil
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("pick requires an interactive terminal")
	}

	m := model.NewPickerModel(a.Ctx(), a.Theme, a.Manager)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	return nil
}

func joinThemes(themes entity.ThemeSet) string {
	ids := make([]string, 0, themes.Len())
	for _, id := range themes.IDs() {
		ids = append(ids, string(id))
	}
	return strings.Join(ids, ", ")
}
