//go:build js && wasm

package browser

import (
	"github.com/bnema/vitrine/internal/application/port"
	"github.com/bnema/vitrine/internal/application/usecase"
)

// Deployment inputs injected at build time, e.g.
//
//	go build -ldflags "-X github.com/bnema/vitrine/internal/infrastructure/browser.Env=development"
var (
	Env                  string
	EnableThemeSwitching string
	DisableTransitions   string
	DisablePersistence   string
	DefaultTheme         string
	DefaultMode          string
	DebugTheme           string
)

// BuildSource exposes the build-time inputs as a port.EnvironmentSource.
type BuildSource map[string]string

// NewBuildSource collects the ldflags-injected values.
func NewBuildSource() BuildSource {
	return BuildSource{
		usecase.EnvKeyEnv:                  Env,
		usecase.EnvKeyEnableThemeSwitching: EnableThemeSwitching,
		usecase.EnvKeyDisableTransitions:   DisableTransitions,
		usecase.EnvKeyDisablePersistence:   DisablePersistence,
		usecase.EnvKeyDefaultTheme:         DefaultTheme,
		usecase.EnvKeyDefaultMode:          DefaultMode,
		usecase.EnvKeyDebugTheme:           DebugTheme,
	}
}

// Lookup implements port.EnvironmentSource.
func (s BuildSource) Lookup(key string) (string, bool) {
	v, ok := s[key]
	return v, ok && v != ""
}

var _ port.EnvironmentSource = BuildSource(nil)
