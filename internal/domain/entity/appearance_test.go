package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeDark, ModeLight.Toggle())
	assert.Equal(t, ModeLight, ModeDark.Toggle())
	assert.Equal(t, ModeLight, ModeLight.Toggle().Toggle())
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"light", ModeLight, true},
		{" Dark ", ModeDark, true},
		{"dim", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMode(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewThemeSet(t *testing.T) {
	set, err := NewThemeSet("Ocean", "sunset", "", "ocean", "forest")
	require.NoError(t, err)

	assert.Equal(t, []ThemeID{"ocean", "sunset", "forest"}, set.IDs())
	assert.Equal(t, ThemeID("ocean"), set.First())
	assert.True(t, set.Contains("forest"))
	assert.False(t, set.Contains("Ocean"))
	assert.Equal(t, []string{"theme-ocean", "theme-sunset", "theme-forest"}, set.ClassNames())
}

func TestNewThemeSet_Errors(t *testing.T) {
	_, err := NewThemeSet()
	assert.ErrorIs(t, err, ErrEmptyThemeSet)

	_, err = NewThemeSet("  ", "")
	assert.ErrorIs(t, err, ErrEmptyThemeSet)

	_, err = NewThemeSet("deep sea")
	assert.Error(t, err)

	// "theme-transition" is the marker tag; a palette may not claim it.
	_, err = NewThemeSet("ocean", "Transition")
	assert.ErrorIs(t, err, ErrReservedThemeID)
}

func TestThemeSet_Parse(t *testing.T) {
	set := DefaultThemeSet()

	id, ok := set.Parse(" SUNSET ")
	assert.True(t, ok)
	assert.Equal(t, ThemeID("sunset"), id)

	_, ok = set.Parse("not-a-real-theme")
	assert.False(t, ok)
}

func TestUnmarshalPreference(t *testing.T) {
	set := DefaultThemeSet()

	tests := []struct {
		name    string
		raw     string
		want    PreferenceRecord
		wantErr bool
	}{
		{name: "valid", raw: `{"theme":"sunset","mode":"dark"}`, want: PreferenceRecord{Theme: "sunset", Mode: ModeDark}},
		{name: "invalid json", raw: `{"theme":`, wantErr: true},
		{name: "unknown theme", raw: `{"theme":"neon","mode":"dark"}`, wantErr: true},
		{name: "unknown mode", raw: `{"theme":"ocean","mode":"dim"}`, wantErr: true},
		{name: "missing mode", raw: `{"theme":"ocean"}`, wantErr: true},
		{name: "extra field", raw: `{"theme":"ocean","mode":"light","accent":"red"}`, wantErr: true},
		{name: "trailing data", raw: `{"theme":"ocean","mode":"light"} {}`, wantErr: true},
		{name: "not an object", raw: `"ocean"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UnmarshalPreference(tt.raw, set)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPreferenceRoundTrip(t *testing.T) {
	set := DefaultThemeSet()
	for _, id := range set.IDs() {
		for _, mode := range Modes() {
			record := PreferenceRecord{Theme: id, Mode: mode}
			raw, err := MarshalPreference(record)
			require.NoError(t, err)

			got, err := UnmarshalPreference(raw, set)
			require.NoError(t, err)
			assert.Equal(t, record, got)
		}
	}
}

func TestDefaultEnvironmentConfig(t *testing.T) {
	set, err := NewThemeSet("forest", "ocean")
	require.NoError(t, err)

	cfg := DefaultEnvironmentConfig(set)

	assert.False(t, cfg.SwitchingEnabled)
	assert.True(t, cfg.Production)
	assert.True(t, cfg.TransitionsEnabled)
	assert.True(t, cfg.PersistenceEnabled)
	assert.Equal(t, PreferenceRecord{Theme: "forest", Mode: ModeLight}, cfg.DefaultRecord())
}
