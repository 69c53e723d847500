package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
)

// PreferenceView is what `appearance show` reports.
type PreferenceView struct {
	Record           entity.PreferenceRecord
	State            string
	Source           string
	SwitchingEnabled bool
	Classes          []string
	Themes           []entity.ThemeID
}

// AppearanceRenderer renders appearance command output with styled text.
type AppearanceRenderer struct {
	theme *Theme
}

// NewAppearanceRenderer creates a new renderer with the given theme.
func NewAppearanceRenderer(theme *Theme) *AppearanceRenderer {
	return &AppearanceRenderer{theme: theme}
}

// RenderPreference renders the live preference and document state.
func (r *AppearanceRenderer) RenderPreference(v PreferenceView) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	labelStyle := r.theme.Subtle

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  %s %s  %s %s\n",
		iconStyle.Render(IconPalette),
		r.theme.Highlight.Render(string(v.Record.Theme)),
		iconStyle.Render(ModeIcon(v.Record.Mode == entity.ModeDark)),
		r.theme.Normal.Render(string(v.Record.Mode)),
	))

	sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("state:"), r.theme.BadgeMuted.Render(v.State)))
	if v.Source != "" {
		sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("source:"), r.theme.Normal.Render(v.Source)))
	}
	sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("switching:"), r.renderBool(v.SwitchingEnabled)))

	themes := make([]string, 0, len(v.Themes))
	for _, id := range v.Themes {
		if id == v.Record.Theme {
			themes = append(themes, r.theme.Badge.Render(string(id)))
			continue
		}
		themes = append(themes, r.theme.Subtle.Render(string(id)))
	}
	sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("themes:"), strings.Join(themes, " ")))
	sb.WriteString(fmt.Sprintf("    %s %s\n", labelStyle.Render("document:"), r.theme.Normal.Render(strings.Join(v.Classes, " "))))

	return sb.String()
}

// RenderEnvironment renders the resolved deployment configuration.
func (r *AppearanceRenderer) RenderEnvironment(cfg entity.EnvironmentConfig, ambient port.ColorSchemePreference, configFile string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight

	rows := []struct {
		key   string
		value string
	}{
		{"production", r.renderBool(cfg.Production)},
		{"switching_enabled", r.renderBool(cfg.SwitchingEnabled)},
		{"default_theme", string(cfg.DefaultTheme)},
		{"default_mode", string(cfg.DefaultMode)},
		{"transitions_enabled", r.renderBool(cfg.TransitionsEnabled)},
		{"persistence_enabled", r.renderBool(cfg.PersistenceEnabled)},
		{"debug", r.renderBool(cfg.Debug)},
	}

	var sb strings.Builder
	if configFile == "" {
		configFile = "(defaults)"
	}
	sb.WriteString(fmt.Sprintf("\n  %s Config %s\n\n", iconStyle.Render(IconConfig), r.theme.Subtle.Render(configFile)))
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("    %-22s %s\n", keyStyle.Render(row.key), row.value))
	}
	sb.WriteString(fmt.Sprintf("\n  %s Ambient %s %s\n",
		iconStyle.Render(IconDesktop),
		r.theme.Normal.Render(string(ambient.Mode())),
		r.theme.Subtle.Render("("+ambient.Source+")"),
	))

	return sb.String()
}

// RenderSuccess renders a success line.
func (r *AppearanceRenderer) RenderSuccess(msg string) string {
	return fmt.Sprintf("  %s %s", r.theme.SuccessStyle.Render(IconCheck), msg)
}

// RenderWarning renders a warning line.
func (r *AppearanceRenderer) RenderWarning(msg string) string {
	return fmt.Sprintf("  %s %s", r.theme.WarningStyle.Render(IconWarning), msg)
}

// RenderError renders an error message.
func (r *AppearanceRenderer) RenderError(err error) string {
	return fmt.Sprintf("  %s %s", r.theme.ErrorStyle.Render(IconX), r.theme.ErrorStyle.Render(err.Error()))
}

func (r *AppearanceRenderer) renderBool(v bool) string {
	if v {
		return r.theme.SuccessStyle.Render("yes")
	}
	return r.theme.Subtle.Render("no")
}
