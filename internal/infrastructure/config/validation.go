package config

import (
	"fmt"
	"strings"

	"github.com/bnema/vitrine/internal/domain/entity"
)

// validateConfig performs validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateAppearance(config *Config) []string {
	var validationErrors []string

	ids := make([]entity.ThemeID, 0, len(config.Appearance.Themes))
	for _, id := range config.Appearance.Themes {
		ids = append(ids, entity.ThemeID(id))
	}
	if _, err := entity.NewThemeSet(ids...); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("appearance.themes: %v", err))
	}

	d := config.Appearance.TransitionDurationMs
	if d < 1 || d > maxTransitionDurationMs {
		validationErrors = append(validationErrors,
			fmt.Sprintf("appearance.transition_duration_ms must be between 1 and %d", maxTransitionDurationMs))
	}

	switch strings.ToLower(config.Appearance.AmbientOverride) {
	case "", "default", "light", "dark", "prefer-light", "prefer-dark":
	default:
		validationErrors = append(validationErrors,
			"appearance.ambient_override must be one of: default, light, dark, prefer-light, prefer-dark")
	}

	return validationErrors
}

func validateStorage(config *Config) []string {
	var validationErrors []string
	if strings.TrimSpace(config.Storage.Key) == "" {
		validationErrors = append(validationErrors, "storage.key must not be empty")
	}
	if strings.TrimSpace(config.Storage.DeveloperOverrideKey) == "" {
		validationErrors = append(validationErrors, "storage.developer_override_key must not be empty")
	}
	if config.Storage.Key != "" && config.Storage.Key == config.Storage.DeveloperOverrideKey {
		validationErrors = append(validationErrors, "storage.key and storage.developer_override_key must differ")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of: trace, debug, info, warn, error")
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}
	return validationErrors
}
