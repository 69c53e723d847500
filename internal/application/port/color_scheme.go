package port

import (
	"context"

	"github.com/bnema/vitrine/internal/domain/entity"
)

// ColorSchemePreference represents the resolved ambient color scheme.
type ColorSchemePreference struct {
	// PrefersDark indicates whether dark mode is preferred.
	PrefersDark bool

	// Source identifies which detector provided this preference.
	// "fallback" means no detector answered.
	Source string
}

// Mode converts the preference into a document mode.
func (p ColorSchemePreference) Mode() entity.Mode {
	if p.PrefersDark {
		return entity.ModeDark
	}
	return entity.ModeLight
}

// ColorSchemeDetector detects the host's ambient light/dark signal.
// Multiple detectors can be registered with different priorities.
type ColorSchemeDetector interface {
	// Name returns a human-readable name for this detector.
	Name() string

	// Priority returns the detector's priority.
	// Higher values = higher priority (checked first).
	// Recommended ranges:
	//   - 100+: Host runtime signals (prefers-color-scheme media query)
	//   -  50+: Terminal probes
	//   -  10+: Desktop settings (gsettings, defaults, env vars)
	Priority() int

	// Available returns true if this detector can be used in the current host.
	Available() bool

	// Detect returns the detected preference and whether detection succeeded.
	Detect() (prefersDark bool, ok bool)
}

// SystemPreferenceDetector answers "does the visitor's host prefer dark?".
// Implementations never fail: a missing capability yields light.
type SystemPreferenceDetector interface {
	DetectDarkPreference(ctx context.Context) entity.Mode
}
