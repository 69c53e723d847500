// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/vitrine/internal/cli/styles"
	"github.com/bnema/vitrine/internal/domain/entity"
)

// Appearance is the part of theme.Manager the picker drives.
type Appearance interface {
	Read() entity.PreferenceRecord
	Themes() entity.ThemeSet
	SetTheme(ctx context.Context, id string) bool
	ToggleMode(ctx context.Context)
	Reset(ctx context.Context)
}

// PickerModel is the Bubble Tea model for interactive theme/mode selection.
type PickerModel struct {
	// UI components
	help help.Model
	keys styles.PickerKeyMap

	// State
	themes        []entity.ThemeID
	selectedIdx   int
	current       entity.PreferenceRecord
	width         int
	statusMessage string

	// Dependencies
	ctx        context.Context
	appearance Appearance
	theme      *styles.Theme
}

// NewPickerModel creates a picker positioned on the live theme.
func NewPickerModel(ctx context.Context, theme *styles.Theme, appearance Appearance) PickerModel {
	current := appearance.Read()
	themes := appearance.Themes().IDs()

	selected := 0
	for i, id := range themes {
		if id == current.Theme {
			selected = i
			break
		}
	}

	return PickerModel{
		help:        styles.NewStyledHelp(theme),
		keys:        styles.DefaultPickerKeyMap(),
		themes:      themes,
		selectedIdx: selected,
		current:     current,
		width:       80,
		ctx:         ctx,
		appearance:  appearance,
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// preferenceChangedMsg carries the live record after a change.
type preferenceChangedMsg struct {
	record entity.PreferenceRecord
	status string
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case preferenceChangedMsg:
		m.current = msg.record
		m.statusMessage = msg.status
		return m, nil
	}

	return m, nil
}

func (m PickerModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.themes)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Select):
		if m.selectedIdx < 0 || m.selectedIdx >= len(m.themes) {
			return m, nil
		}
		id := m.themes[m.selectedIdx]
		return m, m.change(func() string {
			if !m.appearance.SetTheme(m.ctx, string(id)) {
				return fmt.Sprintf("Unknown theme %s", id)
			}
			return fmt.Sprintf("Theme set to %s", id)
		})

	case key.Matches(msg, m.keys.Toggle):
		return m, m.change(func() string {
			m.appearance.ToggleMode(m.ctx)
			return "Mode toggled"
		})

	case key.Matches(msg, m.keys.Reset):
		return m, m.change(func() string {
			m.appearance.Reset(m.ctx)
			return "Preference reset to defaults"
		})

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m PickerModel) change(apply func() string) tea.Cmd {
	return func() tea.Msg {
		status := apply()
		return preferenceChangedMsg{record: m.appearance.Read(), status: status}
	}
}

// View implements tea.Model.
func (m PickerModel) View() string {
	t := m.theme
	var sb strings.Builder

	sb.WriteString(t.Title.Render(styles.IconPalette + " Appearance"))
	sb.WriteString("  ")
	sb.WriteString(t.Subtle.Render(fmt.Sprintf("%s %s", styles.ModeIcon(m.current.Mode == entity.ModeDark), m.current.Mode)))
	sb.WriteString("\n\n")

	for i, id := range m.themes {
		label := string(id)
		if id == m.current.Theme {
			label += " " + t.Badge.Render("active")
		}
		if i == m.selectedIdx {
			sb.WriteString(t.ListItemSelected.Render(styles.IconCursor + " " + label))
		} else {
			sb.WriteString(t.ListItem.Render("  " + label))
		}
		sb.WriteString("\n")
	}

	if m.statusMessage != "" {
		sb.WriteString("\n")
		sb.WriteString(t.Subtle.Render(m.statusMessage))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))

	return sb.String()
}

// Current returns the record the picker last observed.
func (m PickerModel) Current() entity.PreferenceRecord {
	return m.current
}
