package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"
)

// DefaultConfigFile is the default configuration filename
const DefaultConfigFile = "config.yaml"

// ErrUnknownKey is returned by Config.Get and Config.Set for keys that
// are not configuration settings.
var ErrUnknownKey = errors.New("unknown config key")

// Config represents the persisted settings of the CLI
type Config struct {
	// AppName is the application name
	AppName string `yaml:"-"`

	// CompositionsDir holds user composition files (optional)
	CompositionsDir string `yaml:"compositions_dir,omitempty"`

	// BeatsPerSecond is the playback tempo (optional)
	BeatsPerSecond float64 `yaml:"beats_per_second,omitempty"`

	// Format is the default output format (optional)
	Format OutputFormat `yaml:"format,omitempty"`

	// configPath is the path to the config file
	configPath string
}

// LoadConfig loads configuration for the specified app from the default
// location
func LoadConfig(appName string) (*Config, error) {
	paths, err := NewPaths(appName)
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return LoadConfigWithPath(appName, paths.ConfigFile())
}

// LoadConfigWithPath loads configuration from a custom path. A missing
// file yields an empty config that is written on the first Save.
func LoadConfigWithPath(appName, configPath string) (*Config, error) {
	cfg := &Config{
		AppName:    appName,
		configPath: configPath,
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.AppName = appName
	cfg.configPath = configPath

	return cfg, nil
}

// Save saves the configuration to disk
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir(), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(c.configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Path returns the config file path
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the config directory path
func (c *Config) Dir() string {
	return filepath.Dir(c.configPath)
}

// Keys returns the settable configuration keys
func (c *Config) Keys() []string {
	return []string{"compositions_dir", "beats_per_second", "format"}
}

// Get returns a setting by key, empty if unset
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "compositions_dir":
		return c.CompositionsDir, nil
	case "beats_per_second":
		if c.BeatsPerSecond == 0 {
			return "", nil
		}
		return strconv.FormatFloat(c.BeatsPerSecond, 'g', -1, 64), nil
	case "format":
		return string(c.Format), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

// Set validates and stores a setting, then saves the config. An empty
// value clears the setting.
func (c *Config) Set(key, value string) error {
	switch key {
	case "compositions_dir":
		c.CompositionsDir = value
	case "beats_per_second":
		if value == "" {
			c.BeatsPerSecond = 0
			break
		}
		bps, err := strconv.ParseFloat(value, 64)
		if err != nil || bps <= 0 {
			return fmt.Errorf("beats_per_second must be a positive number, got %q", value)
		}
		c.BeatsPerSecond = bps
	case "format":
		if value == "" {
			c.Format = ""
			break
		}
		f, err := ParseFormat(value)
		if err != nil {
			return err
		}
		c.Format = f
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
	return c.Save()
}
