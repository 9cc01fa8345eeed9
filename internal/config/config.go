// Package config loads basket settings from defaults, the config file,
// a .env file and BASKET_* environment variables, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config.yaml"
	envPrefix      = "BASKET"
)

// Config keys
const (
	KeyDataDir        = "data_dir"
	KeyDBFile         = "db_file"
	KeyLogLevel       = "log_level"
	KeySocketPath     = "socket_path"
	KeyDaemonEnabled  = "daemon.enabled"
	KeyDaemonDebounce = "daemon.debounce"
	KeySplashDuration = "tui.splash_duration"
)

// Config represents the application configuration
type Config struct {
	DataDir     string       `yaml:"data_dir" mapstructure:"data_dir"`
	DBFile      string       `yaml:"db_file" mapstructure:"db_file"`
	LogLevel    string       `yaml:"log_level" mapstructure:"log_level"`
	SocketPath  string       `yaml:"socket_path,omitempty" mapstructure:"socket_path"`
	Daemon      DaemonConfig `yaml:"daemon" mapstructure:"daemon"`
	TUI         TUIConfig    `yaml:"tui" mapstructure:"tui"`
	KeyMappings KeyMappings  `yaml:"key_mappings" mapstructure:"key_mappings"`
	Theme       Theme        `yaml:"theme" mapstructure:"theme"`
}

// DaemonConfig controls cross-process live updates
type DaemonConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Debounce time.Duration `mapstructure:"debounce"`
}

// MarshalYAML writes durations in their human form ("100ms").
func (d DaemonConfig) MarshalYAML() (any, error) {
	return struct {
		Enabled  bool   `yaml:"enabled"`
		Debounce string `yaml:"debounce"`
	}{d.Enabled, d.Debounce.String()}, nil
}

// TUIConfig controls the terminal UI
type TUIConfig struct {
	SplashDuration time.Duration `mapstructure:"splash_duration"`
}

// MarshalYAML writes durations in their human form ("3s").
func (t TUIConfig) MarshalYAML() (any, error) {
	return struct {
		SplashDuration string `yaml:"splash_duration"`
	}{t.SplashDuration.String()}, nil
}

// DBPath returns the full path of the SQLite file
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, c.DBFile)
}

// LogDir returns the directory log files are written to
func (c *Config) LogDir() string {
	return filepath.Join(c.DataDir, "logs")
}

// Validate checks values that viper cannot type-check on its own.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return errors.New("data_dir must not be empty")
	}
	if c.DBFile == "" {
		return errors.New("db_file must not be empty")
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q (must be: debug, info, warn, error)", c.LogLevel)
	}
	if c.Daemon.Debounce <= 0 {
		return fmt.Errorf("daemon.debounce must be positive, got %s", c.Daemon.Debounce)
	}
	if c.TUI.SplashDuration < 0 {
		return fmt.Errorf("tui.splash_duration must not be negative, got %s", c.TUI.SplashDuration)
	}
	return nil
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Default returns the built-in configuration
func Default() *Config {
	dataDir := defaultDataDir()
	return &Config{
		DataDir:    dataDir,
		DBFile:     "basket.db",
		LogLevel:   "info",
		SocketPath: filepath.Join(dataDir, "basket.sock"),
		Daemon: DaemonConfig{
			Enabled:  true,
			Debounce: 100 * time.Millisecond,
		},
		TUI: TUIConfig{
			SplashDuration: 3 * time.Second,
		},
		KeyMappings: DefaultKeyMappings(),
		Theme:       DefaultTheme(),
	}
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".basket"
	}
	return filepath.Join(home, ".basket")
}

// Load reads the config file at its default location.
// A missing file yields the defaults.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		slog.Debug("could not resolve config path, using defaults", "error", err)
		path = ""
	}
	return LoadFile(path)
}

// LoadFile reads the config file at path. An empty path or a missing file
// is not an error.
func LoadFile(path string) (*Config, error) {
	// .env only fills variables that are not already set
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		} else if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to stat config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.DataDir = expandHome(cfg.DataDir)
	if cfg.SocketPath == "" {
		cfg.SocketPath = filepath.Join(cfg.DataDir, "basket.sock")
	}
	cfg.SocketPath = expandHome(cfg.SocketPath)
	cfg.KeyMappings.applyDefaults()
	cfg.Theme.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault(KeyDataDir, d.DataDir)
	v.SetDefault(KeyDBFile, d.DBFile)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeySocketPath, "")
	v.SetDefault(KeyDaemonEnabled, d.Daemon.Enabled)
	v.SetDefault(KeyDaemonDebounce, d.Daemon.Debounce)
	v.SetDefault(KeySplashDuration, d.TUI.SplashDuration)

	// Registering every nested key lets AutomaticEnv see it during Unmarshal
	for key, val := range d.KeyMappings.asMap() {
		v.SetDefault("key_mappings."+key, val)
	}
	for key, val := range d.Theme.asMap() {
		v.SetDefault("theme."+key, val)
	}
}

// Save writes c to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := c.Marshal()
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	return os.WriteFile(path, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "basket", configFileName), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "basket", configFileName), nil
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
