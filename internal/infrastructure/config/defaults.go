package config

import (
	"github.com/spf13/viper"

	"github.com/bnema/vitrine/internal/application/usecase"
	"github.com/bnema/vitrine/internal/domain/entity"
)

// Default configuration constants
const (
	defaultTransitionDurationMs = 350
	maxTransitionDurationMs     = 5000
	defaultAmbientOverride      = "default"
	defaultLogLevel             = "info"
	defaultLogFormat            = "console"
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	themes := make([]string, 0, len(entity.DefaultThemeIDs))
	for _, id := range entity.DefaultThemeIDs {
		themes = append(themes, string(id))
	}

	return &Config{
		Appearance: AppearanceConfig{
			Themes:               themes,
			TransitionDurationMs: defaultTransitionDurationMs,
			AmbientOverride:      defaultAmbientOverride,
		},
		Storage: StorageConfig{
			Key:                  usecase.DefaultPreferenceKey,
			DeveloperOverrideKey: usecase.DefaultDeveloperOverrideKey,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// setDefaults registers the built-in values with viper.
func setDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault("appearance.themes", d.Appearance.Themes)
	v.SetDefault("appearance.transition_duration_ms", d.Appearance.TransitionDurationMs)
	v.SetDefault("appearance.ambient_override", d.Appearance.AmbientOverride)
	v.SetDefault("storage.key", d.Storage.Key)
	v.SetDefault("storage.developer_override_key", d.Storage.DeveloperOverrideKey)
	v.SetDefault("database.path", d.Database.Path)
	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)
}
