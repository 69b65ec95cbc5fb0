// Package config loads, validates and watches the dynpanels configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
	log            zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// DYNPANELS_CANVAS_LEAVE_FREE_SPACE, DYNPANELS_LAYOUT_STORE_KEY_PREFIX, ...
	v.SetEnvPrefix("DYNPANELS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The logger reads the same variables before any config is loaded.
	if err := v.BindEnv("logging.level", "DYNPANELS_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind DYNPANELS_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "DYNPANELS_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind DYNPANELS_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		log:       zerolog.Nop(),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.buildConfig()
	if err != nil {
		return err
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
	if !errors.As(err, &notFound) {
		configFile := m.viper.ConfigFileUsed()
		if configFile == "" {
			configFile, _ = GetConfigFile()
		}
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		configDir, _ := GetConfigDir()
		return fmt.Errorf("failed to create default config at %s: %w", configDir, createErr)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

// buildConfig unmarshals, normalizes and validates the current viper state.
func (m *Manager) buildConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	if err := ensureDatabasePath(config); err != nil {
		return nil, err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return config, nil
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

func normalizeConfig(config *Config) {
	switch strings.ToLower(strings.TrimSpace(config.Logging.Format)) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	config.Layout.StoreKeyPrefix = strings.TrimSpace(config.Layout.StoreKeyPrefix)
	config.Database.Path = os.ExpandEnv(config.Database.Path)
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	path := m.viper.ConfigFileUsed()
	if path == "" {
		var err error
		if path, err = GetConfigFile(); err != nil {
			return err
		}
	}

	// The watcher fires for our own write; the in-memory config is already current.
	if m.watching {
		m.skipNextReload = true
	}
	if err := WriteConfigOrdered(cfg, path); err != nil {
		m.skipNextReload = false
		return err
	}

	saved := *cfg
	m.config = &saved

	if !m.watching {
		if err := m.viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to re-read saved config: %w", err)
		}
	}
	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	if err := GenerateSchemaFile(filepath.Dir(configFile)); err != nil {
		return err
	}
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setLoggingDefaults(defaults)
	m.setCanvasDefaults(defaults)
	m.setPanelDefaults(defaults)
	m.setLayoutDefaults(defaults)
	m.viper.SetDefault("database.path", "")
}

func (m *Manager) setLoggingDefaults(defaults *Config) {
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
}

func (m *Manager) setCanvasDefaults(defaults *Config) {
	c := defaults.Canvas
	m.viper.SetDefault("canvas.leave_free_space", c.LeaveFreeSpace)
	m.setSizeDefault("canvas.minimum_free_space", c.MinimumFreeSpace)
	m.viper.SetDefault("canvas.prevent_detaching_last_docked_panel", c.PreventDetachingLastDockedPanel)
	m.viper.SetDefault("canvas.panel_resizable_area_length", c.PanelResizableAreaLength)
	m.viper.SetDefault("canvas.canvas_anchor_zone_length", c.CanvasAnchorZoneLength)
	m.viper.SetDefault("canvas.panel_anchor_zone_length", c.PanelAnchorZoneLength)
	m.viper.SetDefault("canvas.panel_anchor_zone_length_ratio", c.PanelAnchorZoneLengthRatio)
	m.viper.SetDefault("canvas.floating_visible_width", c.FloatingVisibleWidth)
	m.viper.SetDefault("canvas.floating_visible_height", c.FloatingVisibleHeight)
}

func (m *Manager) setPanelDefaults(defaults *Config) {
	p := defaults.Panel
	m.viper.SetDefault("panel.header_height", p.HeaderHeight)
	m.setSizeDefault("panel.default_tab_min_size", p.DefaultTabMinSize)
	m.setSizeDefault("panel.default_floating_size", p.DefaultFloatingSize)
	m.viper.SetDefault("panel.max_tab_width", p.MaxTabWidth)
}

func (m *Manager) setLayoutDefaults(defaults *Config) {
	m.viper.SetDefault("layout.store_key_prefix", defaults.Layout.StoreKeyPrefix)
	m.viper.SetDefault("layout.version", defaults.Layout.Version)
	m.viper.SetDefault("layout.auto_restore", defaults.Layout.AutoRestore)
}

// setSizeDefault registers leaf keys so env overrides such as
// DYNPANELS_PANEL_DEFAULT_TAB_MIN_SIZE_WIDTH are picked up by Unmarshal.
func (m *Manager) setSizeDefault(key string, s Size) {
	m.viper.SetDefault(key+".width", s.Width)
	m.viper.SetDefault(key+".height", s.Height)
}
