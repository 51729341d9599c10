// Package config handles configuration loading and validation for shapesum.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	// DefaultConfigFile is the default configuration file name (without extension).
	DefaultConfigFile = ".shapesum"
	// DefaultConfigType is the default configuration file type.
	DefaultConfigType = "yaml"

	// DefaultCatalogPath is the shape catalog read when nothing else is
	// configured, resolved relative to the working directory.
	DefaultCatalogPath = "shapes.txt"

	// DefaultDebounceMS is the watch-mode debounce window in milliseconds.
	DefaultDebounceMS = 300
)

// Config holds all configuration for shapesum.
type Config struct {
	// Input describes the shape catalog to read.
	Input InputConfig `mapstructure:"input" yaml:"input"`
	// Watch contains watch-mode configuration.
	Watch WatchConfig `mapstructure:"watch" yaml:"watch"`
}

// InputConfig describes the shape catalog.
type InputConfig struct {
	// Path is the catalog file path.
	Path string `mapstructure:"path" yaml:"path"`
}

// WatchConfig holds watch-mode configuration.
type WatchConfig struct {
	// DebounceMS is how long to coalesce bursts of file events, in
	// milliseconds.
	DebounceMS int `mapstructure:"debounce_ms" yaml:"debounce_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{Path: DefaultCatalogPath},
		Watch: WatchConfig{DebounceMS: DefaultDebounceMS},
	}
}

// Load loads configuration from file, environment variables, and defaults.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Check if a specific config file was set via CLI flag (stored in the
	// global viper).
	globalViper := viper.GetViper()
	if configFile := globalViper.GetString("config_file"); configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(DefaultConfigFile)
		v.SetConfigType(DefaultConfigType)

		// Look for config in the current directory.
		v.AddConfigPath(".")
	}

	// Environment variables
	v.SetEnvPrefix("SHAPESUM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration is valid.
func (c *Config) Validate() error {
	if c.Input.Path == "" {
		return fmt.Errorf("input path is required")
	}
	if c.Watch.DebounceMS <= 0 {
		return fmt.Errorf("watch debounce must be positive, got %d", c.Watch.DebounceMS)
	}
	return nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.path", DefaultCatalogPath)
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}
