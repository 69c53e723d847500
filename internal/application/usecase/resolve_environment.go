package usecase

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/domain/entity"
	"github.com/bnema/vitrine/internal/logging"
)

// Environment keys, unprefixed. Native hosts read them as VITRINE_<KEY>.
const (
	EnvKeyEnv                  = "env"
	EnvKeyEnableThemeSwitching = "enable_theme_switching"
	EnvKeyDisableTransitions   = "disable_transitions"
	EnvKeyDisablePersistence   = "disable_persistence"
	EnvKeyDefaultTheme         = "default_theme"
	EnvKeyDefaultMode          = "default_mode"
	EnvKeyDebugTheme           = "debug_theme"
)

// EnvironmentKeys lists every key the override resolver reads.
func EnvironmentKeys() []string {
	return []string{
		EnvKeyEnv,
		EnvKeyEnableThemeSwitching,
		EnvKeyDisableTransitions,
		EnvKeyDisablePersistence,
		EnvKeyDefaultTheme,
		EnvKeyDefaultMode,
		EnvKeyDebugTheme,
	}
}

// ResolveEnvironmentInput holds everything the override resolver depends on.
type ResolveEnvironmentInput struct {
	Source          port.EnvironmentSource
	Themes          entity.ThemeSet
	HasHostDocument bool
	// DeveloperOverride reports the locally stored developer flag. It is only
	// called when a host document exists.
	DeveloperOverride func(ctx context.Context) bool
}

// ResolveEnvironment derives the deployment configuration. It is a pure
// function of its input apart from logging.
func ResolveEnvironment(ctx context.Context, in ResolveEnvironmentInput) entity.EnvironmentConfig {
	log := logging.FromContext(ctx)
	cfg := entity.DefaultEnvironmentConfig(in.Themes)

	if !in.HasHostDocument || in.Source == nil {
		return cfg
	}

	lookup := func(key string) string {
		v, ok := in.Source.Lookup(key)
		if !ok {
			return ""
		}
		return strings.TrimSpace(v)
	}

	stage := strings.ToLower(lookup(EnvKeyEnv))
	development := stage == "development" || stage == "dev"
	cfg.Production = stage == "" || stage == "production" || stage == "prod"

	developerOverride := false
	if in.DeveloperOverride != nil {
		developerOverride = in.DeveloperOverride(ctx)
	}
	cfg.SwitchingEnabled = development || IsTruthy(lookup(EnvKeyEnableThemeSwitching)) || developerOverride

	cfg.TransitionsEnabled = !IsTruthy(lookup(EnvKeyDisableTransitions))
	cfg.PersistenceEnabled = !IsTruthy(lookup(EnvKeyDisablePersistence))
	cfg.Debug = IsTruthy(lookup(EnvKeyDebugTheme))

	if raw := lookup(EnvKeyDefaultTheme); raw != "" {
		if id, ok := in.Themes.Parse(raw); ok {
			cfg.DefaultTheme = id
		} else {
			log.Warn().Str("value", raw).Msg("ignoring unknown default theme override")
		}
	}
	if raw := lookup(EnvKeyDefaultMode); raw != "" {
		if mode, ok := entity.ParseMode(raw); ok {
			cfg.DefaultMode = mode
		} else {
			log.Warn().Str("value", raw).Msg("ignoring unknown default mode override")
		}
	}

	if cfg.Debug {
		log.Debug().
			Str("stage", stage).
			Bool("switching_enabled", cfg.SwitchingEnabled).
			Bool("developer_override", developerOverride).
			Str("default_theme", string(cfg.DefaultTheme)).
			Str("default_mode", string(cfg.DefaultMode)).
			Bool("transitions_enabled", cfg.TransitionsEnabled).
			Bool("persistence_enabled", cfg.PersistenceEnabled).
			Bool("production", cfg.Production).
			Msg("resolved appearance environment")
	}

	return cfg
}

// EnvironmentProvider computes the environment configuration on first access
// and caches it for the rest of the process.
type EnvironmentProvider struct {
	once  sync.Once
	input ResolveEnvironmentInput
	cfg   entity.EnvironmentConfig
}

// NewEnvironmentProvider creates a lazy provider.
func NewEnvironmentProvider(input ResolveEnvironmentInput) *EnvironmentProvider {
	return &EnvironmentProvider{input: input}
}

// Get returns the cached configuration, resolving it on the first call.
func (p *EnvironmentProvider) Get(ctx context.Context) entity.EnvironmentConfig {
	p.once.Do(func() {
		p.cfg = ResolveEnvironment(ctx, p.input)
	})
	return p.cfg
}
