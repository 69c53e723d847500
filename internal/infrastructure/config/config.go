// Package config loads vitrine configuration from file and environment using viper.
package config

// Config is the on-disk and environment configuration of the native host.
type Config struct {
	Appearance AppearanceConfig `mapstructure:"appearance" toml:"appearance" json:"appearance"`
	Storage    StorageConfig    `mapstructure:"storage" toml:"storage" json:"storage"`
	Database   DatabaseConfig   `mapstructure:"database" toml:"database" json:"database"`
	Logging    LoggingConfig    `mapstructure:"logging" toml:"logging" json:"logging"`
}

// AppearanceConfig configures the palette set and document transitions.
type AppearanceConfig struct {
	// Themes is the closed palette set. The first entry is the fallback palette.
	Themes []string `mapstructure:"themes" toml:"themes" json:"themes" jsonschema:"minItems=1"`
	// TransitionDurationMs bounds how long the transition marker stays applied.
	TransitionDurationMs int `mapstructure:"transition_duration_ms" toml:"transition_duration_ms" json:"transition_duration_ms" jsonschema:"minimum=1,maximum=5000"`
	// AmbientOverride forces the ambient signal: "default", "light" or "dark".
	AmbientOverride string `mapstructure:"ambient_override" toml:"ambient_override" json:"ambient_override" jsonschema:"enum=default,enum=light,enum=dark,enum=prefer-light,enum=prefer-dark"`
}

// StorageConfig names the key-value entries the engine owns.
type StorageConfig struct {
	Key                  string `mapstructure:"key" toml:"key" json:"key"`
	DeveloperOverrideKey string `mapstructure:"developer_override_key" toml:"developer_override_key" json:"developer_override_key"`
}

// DatabaseConfig locates the SQLite file backing the native key-value store.
type DatabaseConfig struct {
	Path string `mapstructure:"path" toml:"path" json:"path"`
}

// LoggingConfig configures zerolog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
}
