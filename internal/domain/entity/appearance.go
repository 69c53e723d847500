package entity

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Mode is the light/dark variant applied on top of a palette.
type Mode string

const (
	ModeLight Mode = "light"
	ModeDark  Mode = "dark"
)

// Modes lists both modes in a stable order.
func Modes() []Mode {
	return []Mode{ModeLight, ModeDark}
}

// IsValid reports whether m is one of the two known modes.
func (m Mode) IsValid() bool {
	return m == ModeLight || m == ModeDark
}

// Toggle returns the opposite mode. Unknown values toggle to dark.
func (m Mode) Toggle() Mode {
	if m == ModeDark {
		return ModeLight
	}
	return ModeDark
}

// ClassName returns the document tag for the mode ("light" or "dark").
func (m Mode) ClassName() string {
	return string(m)
}

// ParseMode normalizes user input into a Mode.
func ParseMode(s string) (Mode, bool) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", false
	}
	return m, true
}

// ThemeID identifies a palette.
type ThemeID string

const themeClassPrefix = "theme-"

// ClassName returns the document tag for the palette, e.g. "theme-ocean".
func (t ThemeID) ClassName() string {
	return themeClassPrefix + string(t)
}

// TransitionClassName is the marker tag present while a switch is animating.
const TransitionClassName = "theme-transition"

// DefaultThemeIDs is the palette set shipped with the site.
var DefaultThemeIDs = []ThemeID{"ocean", "sunset", "forest"}

// ErrReservedThemeID is returned for a palette whose tag collides with the
// transition marker.
var ErrReservedThemeID = errors.New("palette id is reserved")

// ErrEmptyThemeSet is returned when a theme set would have no members.
var ErrEmptyThemeSet = errors.New("theme set must contain at least one palette")

// ThemeSet is the closed, ordered set of palettes a deployment accepts.
// The first member is the fallback palette.
type ThemeSet struct {
	ids   []ThemeID
	index map[ThemeID]struct{}
}

// NewThemeSet builds a theme set, dropping blanks and duplicates.
func NewThemeSet(ids ...ThemeID) (ThemeSet, error) {
	set := ThemeSet{index: make(map[ThemeID]struct{}, len(ids))}
	for _, id := range ids {
		id = ThemeID(strings.ToLower(strings.TrimSpace(string(id))))
		if id == "" {
			continue
		}
		if strings.ContainsAny(string(id), " \t\n") {
			return ThemeSet{}, fmt.Errorf("invalid palette id %q: must not contain whitespace", id)
		}
		if id.ClassName() == TransitionClassName {
			return ThemeSet{}, fmt.Errorf("%w: %q", ErrReservedThemeID, id)
		}
		if _, dup := set.index[id]; dup {
			continue
		}
		set.index[id] = struct{}{}
		set.ids = append(set.ids, id)
	}
	if len(set.ids) == 0 {
		return ThemeSet{}, ErrEmptyThemeSet
	}
	return set, nil
}

// DefaultThemeSet returns the shipped palette set.
func DefaultThemeSet() ThemeSet {
	set, _ := NewThemeSet(DefaultThemeIDs...)
	return set
}

// Contains reports whether id is a member of the set.
func (s ThemeSet) Contains(id ThemeID) bool {
	_, ok := s.index[id]
	return ok
}

// IDs returns a copy of the members in configured order.
func (s ThemeSet) IDs() []ThemeID {
	out := make([]ThemeID, len(s.ids))
	copy(out, s.ids)
	return out
}

// First returns the fallback palette.
func (s ThemeSet) First() ThemeID {
	if len(s.ids) == 0 {
		return DefaultThemeIDs[0]
	}
	return s.ids[0]
}

// Len returns the number of palettes.
func (s ThemeSet) Len() int {
	return len(s.ids)
}

// ClassNames returns the document tag of every palette in the set.
func (s ThemeSet) ClassNames() []string {
	out := make([]string, 0, len(s.ids))
	for _, id := range s.ids {
		out = append(out, id.ClassName())
	}
	return out
}

// Parse normalizes user input and checks membership.
func (s ThemeSet) Parse(raw string) (ThemeID, bool) {
	id := ThemeID(strings.ToLower(strings.TrimSpace(raw)))
	if !s.Contains(id) {
		return "", false
	}
	return id, true
}

// PreferenceRecord is the persisted {theme, mode} pair.
type PreferenceRecord struct {
	Theme ThemeID `json:"theme" jsonschema:"description=Palette identifier from the configured theme set"`
	Mode  Mode    `json:"mode" jsonschema:"enum=light,enum=dark,description=Light or dark variant"`
}

// Validate checks both fields against their closed sets.
func (r PreferenceRecord) Validate(themes ThemeSet) error {
	if !themes.Contains(r.Theme) {
		return fmt.Errorf("unknown theme %q", r.Theme)
	}
	if !r.Mode.IsValid() {
		return fmt.Errorf("unknown mode %q", r.Mode)
	}
	return nil
}

// String renders the record as "theme/mode".
func (r PreferenceRecord) String() string {
	return string(r.Theme) + "/" + string(r.Mode)
}

// MarshalPreference serializes a record into its stored form.
func MarshalPreference(r PreferenceRecord) (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("failed to encode preference: %w", err)
	}
	return string(data), nil
}

// UnmarshalPreference parses a stored value. Any shape other than a valid
// record is rejected, including unknown fields.
func UnmarshalPreference(raw string, themes ThemeSet) (PreferenceRecord, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var r PreferenceRecord
	if err := dec.Decode(&r); err != nil {
		return PreferenceRecord{}, fmt.Errorf("failed to decode preference: %w", err)
	}
	if dec.More() {
		return PreferenceRecord{}, errors.New("failed to decode preference: trailing data")
	}
	if err := r.Validate(themes); err != nil {
		return PreferenceRecord{}, err
	}
	return r, nil
}

// EnvironmentConfig is the deployment-derived configuration, resolved once per process.
type EnvironmentConfig struct {
	SwitchingEnabled   bool
	DefaultTheme       ThemeID
	DefaultMode        Mode
	TransitionsEnabled bool
	PersistenceEnabled bool
	Production         bool
	Debug              bool
}

// DefaultEnvironmentConfig is the all-default configuration for a theme set.
func DefaultEnvironmentConfig(themes ThemeSet) EnvironmentConfig {
	return EnvironmentConfig{
		SwitchingEnabled:   false,
		DefaultTheme:       themes.First(),
		DefaultMode:        ModeLight,
		TransitionsEnabled: true,
		PersistenceEnabled: true,
		Production:         true,
	}
}

// DefaultRecord returns the deployment's default {theme, mode} pair.
func (c EnvironmentConfig) DefaultRecord() PreferenceRecord {
	return PreferenceRecord{Theme: c.DefaultTheme, Mode: c.DefaultMode}
}
