package colorscheme

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

const (
	// sourceFallback indicates no detector provided the preference.
	sourceFallback = "fallback"
	// sourceConfig indicates the preference came from an explicit ambient override.
	sourceConfig = "config"
)

// ConfigProvider provides access to the ambient override setting.
type ConfigProvider interface {
	// GetAmbientOverride returns the configured override.
	// Expected values: "", "default", "prefer-dark", "prefer-light", "dark", "light"
	GetAmbientOverride() string
}

// Resolver answers the host's ambient light/dark question by querying
// registered detectors in priority order.
type Resolver struct {
	mu        sync.RWMutex
	config    ConfigProvider
	detectors []port.ColorSchemeDetector
}

// NewResolver creates a new color scheme resolver.
// The config provider may force an answer, which is useful for previews.
func NewResolver(config ConfigProvider) *Resolver {
	return &Resolver{
		config:    config,
		detectors: make([]port.ColorSchemeDetector, 0),
	}
}

// RegisterDetector adds a detector to the resolver.
func (r *Resolver) RegisterDetector(detector port.ColorSchemeDetector) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.detectors = append(r.detectors, detector)
}

// Resolve returns the ambient preference and which source provided it.
// Without any answer it reports light from the fallback source.
func (r *Resolver) Resolve(ctx context.Context) port.ColorSchemePreference {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := logging.FromContext(ctx)

	// Check config for explicit override first
	if r.config != nil {
		switch strings.ToLower(strings.TrimSpace(r.config.GetAmbientOverride())) {
		case "prefer-dark", "dark":
			return port.ColorSchemePreference{PrefersDark: true, Source: sourceConfig}
		case "prefer-light", "light":
			return port.ColorSchemePreference{PrefersDark: false, Source: sourceConfig}
			// "default" or empty falls through to detector chain
		}
	}

	// Sort detectors by priority (highest first)
	sorted := make([]port.ColorSchemeDetector, len(r.detectors))
	copy(sorted, r.detectors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	for _, detector := range sorted {
		prefersDark, ok, err := safeDetect(detector)
		if err != nil {
			log.Debug().Err(err).Str("detector", detector.Name()).Msg("color scheme detector failed")
			continue
		}
		if ok {
			return port.ColorSchemePreference{
				PrefersDark: prefersDark,
				Source:      detector.Name(),
			}
		}
	}

	return port.ColorSchemePreference{
		PrefersDark: false,
		Source:      sourceFallback,
	}
}

// DetectDarkPreference implements port.SystemPreferenceDetector.
// It returns light and logs a warning when the host cannot answer.
func (r *Resolver) DetectDarkPreference(ctx context.Context) entity.Mode {
	pref := r.Resolve(ctx)
	if pref.Source == sourceFallback {
		logging.FromContext(ctx).Warn().Msg("ambient color scheme unavailable, assuming light")
	}
	return pref.Mode()
}

// safeDetect queries a detector, treating unavailability and panics as no answer.
func safeDetect(detector port.ColorSchemeDetector) (prefersDark, ok bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			prefersDark, ok = false, false
			err = fmt.Errorf("detector panicked: %v", rec)
		}
	}()
	if !detector.Available() {
		return false, false, nil
	}
	prefersDark, ok = detector.Detect()
	return prefersDark, ok, nil
}

var _ port.SystemPreferenceDetector = (*Resolver)(nil)
