package model

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/cli/styles"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/infrastructure/document"
	"github.com/bnema/vitrine/internal/infrastructure/storage"
	"github.com/bnema/vitrine/internal/ui/theme"
)

func newTestManager(t *testing.T) *theme.Manager {
	t.Helper()
	ctx := context.Background()
	themes := entity.DefaultThemeSet()
	env := entity.DefaultEnvironmentConfig(themes)
	store := usecase.NewPreferenceStore(storage.NewMemory(), themes, usecase.DefaultStoreKeys())

	m := theme.NewManager(theme.Deps{
		Themes:      themes,
		Environment: env,
		Store:       store,
		Initializer: usecase.NewInitializePreferenceUseCase(store, env, nil),
		Applier: usecase.NewApplyAppearanceUseCase(document.NewMemory(), nil, usecase.ApplyAppearanceConfig{
			Themes: themes,
		}),
	})
	m.Initialize(ctx)
	t.Cleanup(m.Close)
	return m
}

// press feeds a key to the model and runs the resulting command once.
func press(t *testing.T, m PickerModel, k tea.KeyMsg) PickerModel {
	t.Helper()
	next, cmd := m.Update(k)
	m = next.(PickerModel)
	if cmd != nil {
		next, _ = m.Update(cmd())
		m = next.(PickerModel)
	}
	return m
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestPickerModel_SelectTheme(t *testing.T) {
	manager := newTestManager(t)
	m := NewPickerModel(context.Background(), styles.NewTheme(entity.ModeDark), manager)
	require.Equal(t, 0, m.selectedIdx)

	m = press(t, m, runeKey('j'))
	m = press(t, m, runeKey('j'))
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, entity.ThemeID("forest"), manager.Read().Theme)
	assert.Equal(t, entity.ThemeID("forest"), m.Current().Theme)
	assert.Contains(t, m.View(), "Theme set to forest")
}

func TestPickerModel_NavigationIsBounded(t *testing.T) {
	m := NewPickerModel(context.Background(), styles.NewTheme(entity.ModeDark), newTestManager(t))

	m = press(t, m, runeKey('k'))
	assert.Equal(t, 0, m.selectedIdx)

	for range 10 {
		m = press(t, m, runeKey('j'))
	}
	assert.Equal(t, len(m.themes)-1, m.selectedIdx)
}

func TestPickerModel_ToggleAndReset(t *testing.T) {
	manager := newTestManager(t)
	m := NewPickerModel(context.Background(), styles.NewTheme(entity.ModeLight), manager)

	m = press(t, m, runeKey('t'))
	assert.Equal(t, entity.ModeDark, manager.Read().Mode)
	assert.Equal(t, entity.ModeDark, m.Current().Mode)

	m = press(t, m, runeKey('R'))
	assert.Equal(t, entity.ModeLight, manager.Read().Mode)
	assert.Contains(t, m.View(), "reset")
}

func TestPickerModel_Quit(t *testing.T) {
	m := NewPickerModel(context.Background(), styles.NewTheme(entity.ModeDark), newTestManager(t))

	_, cmd := m.Update(runeKey('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
