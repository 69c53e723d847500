package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"

	"github.com/bnema/vitrine/internal/domain/entity"
)

// EnvPrefix is prepended to every environment variable vitrine reads.
const EnvPrefix = "VITRINE"

const envThemesKey = EnvPrefix + "_APPEARANCE_THEMES"

// Manager handles configuration loading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	watching  bool
	callbacks []func(*Config)
}

// NewManager creates a new configuration manager. An empty configFile means
// the XDG config directory and the working directory are searched.
func NewManager(configFile string) (*Manager, error) {
	v := viper.New()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)

		configDir, err := GetConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
		v.AddConfigPath(configDir)
		v.AddConfigPath(".") // Current directory for development
	}

	// VITRINE_APPEARANCE_THEMES, VITRINE_LOGGING_LEVEL, VITRINE_ENV, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", EnvPrefix+"_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_LEVEL: %w", EnvPrefix, err)
	}
	if err := v.BindEnv("logging.format", EnvPrefix+"_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind %s_LOG_FORMAT: %w", EnvPrefix, err)
	}

	return &Manager{viper: v}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error: defaults and environment apply.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	setDefaults(m.viper)

	if err := m.readConfigFile(); err != nil {
		return err
	}

	return m.decode()
}

// decode unmarshals viper's current state into a validated Config.
// Must be called with m.mu held for write.
func (m *Manager) decode() error {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}

	if err := ensureDatabasePath(config); err != nil {
		return err
	}
	_, themesFromEnv := os.LookupEnv(envThemesKey)
	normalizeConfig(config, themesFromEnv)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions",
		m.viper.ConfigFileUsed(), err)
}

func ensureDatabasePath(config *Config) error {
	if config.Database.Path != "" {
		return nil
	}
	dbPath, err := GetDatabaseFile()
	if err != nil {
		return fmt.Errorf("failed to get database path: %w", err)
	}
	config.Database.Path = dbPath
	return nil
}

// normalizeConfig lowercases and trims values. Themes are split on commas and
// spaces only when they came from the environment as a single string; file
// entries are kept whole so validation can reject malformed ids.
func normalizeConfig(config *Config, themesFromEnv bool) {
	themes := make([]string, 0, len(config.Appearance.Themes))
	for _, raw := range config.Appearance.Themes {
		if !themesFromEnv {
			themes = append(themes, strings.ToLower(strings.TrimSpace(raw)))
			continue
		}
		for _, id := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == ' ' }) {
			themes = append(themes, strings.ToLower(id))
		}
	}
	config.Appearance.Themes = themes

	switch strings.ToLower(strings.TrimSpace(config.Appearance.AmbientOverride)) {
	case "":
		config.Appearance.AmbientOverride = defaultAmbientOverride
	default:
		config.Appearance.AmbientOverride = strings.ToLower(strings.TrimSpace(config.Appearance.AmbientOverride))
	}

	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Storage.Key = strings.TrimSpace(config.Storage.Key)
	config.Storage.DeveloperOverrideKey = strings.TrimSpace(config.Storage.DeveloperOverrideKey)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Appearance.Themes = append([]string(nil), m.config.Appearance.Themes...)
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Viper exposes the underlying viper instance for environment lookups.
func (m *Manager) Viper() *viper.Viper {
	return m.viper
}

// WriteDefault writes the default configuration to path unless it exists.
func (m *Manager) WriteDefault(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	w := viper.New()
	setDefaults(w)
	w.SetConfigType(configType)
	if err := w.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return os.Chmod(path, filePerm)
}

// ThemeSet builds the closed palette set from the configuration.
func (c *Config) ThemeSet() entity.ThemeSet {
	ids := make([]entity.ThemeID, 0, len(c.Appearance.Themes))
	for _, id := range c.Appearance.Themes {
		ids = append(ids, entity.ThemeID(id))
	}
	set, err := entity.NewThemeSet(ids...)
	if err != nil {
		return entity.DefaultThemeSet()
	}
	return set
}

// TransitionDuration returns the transition bound as a duration.
func (c *Config) TransitionDuration() time.Duration {
	return time.Duration(c.Appearance.TransitionDurationMs) * time.Millisecond
}
