package config

import (
	"github.com/spf13/viper"

	"github.com/bnema/vitrine/internal/application/port"
)

// EnvironmentSource reads deployment flags through viper, so they can come
// from VITRINE_* environment variables or top-level config file keys.
type EnvironmentSource struct {
	v *viper.Viper
}

// NewEnvironmentSource wraps a viper instance configured with AutomaticEnv.
func NewEnvironmentSource(v *viper.Viper) *EnvironmentSource {
	return &EnvironmentSource{v: v}
}

// Lookup implements port.EnvironmentSource.
func (s *EnvironmentSource) Lookup(key string) (string, bool) {
	if s.v == nil {
		return "", false
	}
	value := s.v.GetString(key)
	return value, value != ""
}

var _ port.EnvironmentSource = (*EnvironmentSource)(nil)
