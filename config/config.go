// Package config provides viper-backed configuration loading for the
// bvhdomain driver, adapted from the perf-analysis service's
// pkg/config.Load pattern: defaults, an optional file, environment
// overrides, then validation.
package config

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// TrackerConfig holds everything the CLI driver needs to run a session.
type TrackerConfig struct {
	Objects          int       `mapstructure:"objects"`
	Subdomains       int       `mapstructure:"subdomains"`
	RebuildThreshold float32   `mapstructure:"rebuild_threshold"`
	Log              LogConfig `mapstructure:"log"`
}

// LogConfig holds the log settings read from configuration and checked by
// Validate. The CLI driver builds its bvhlog.Logger from the --verbose flag
// and does not read these fields.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // text or json; only text is implemented
}

// Load reads configuration from configPath (if non-empty) or the standard
// search locations, applies defaults, lets environment variables override,
// and validates the result.
func Load(configPath string) (*TrackerConfig, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("bvhdomain")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/bvhdomain")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			fmt.Println("config file not found, using defaults")
		} else if os.IsNotExist(err) {
			fmt.Printf("config file %s not found, using defaults\n", configPath)
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var cfg TrackerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadFromReader loads configuration of the given type (yaml, json, toml...)
// from content, useful for tests that don't want a file on disk.
func LoadFromReader(configType string, content []byte) (*TrackerConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType(configType)
	if err := v.ReadConfig(bytes.NewReader(content)); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg TrackerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("objects", 0)
	v.SetDefault("subdomains", 1)
	v.SetDefault("rebuild_threshold", 0.30)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate enforces the ranges spec.md's Updater/SubdomainExtractor require:
// K >= 1 and threshold in [0, 1].
func (c *TrackerConfig) Validate() error {
	if c.Subdomains < 1 {
		return fmt.Errorf("subdomains (K) must be at least 1, got %d", c.Subdomains)
	}
	if c.RebuildThreshold < 0 || c.RebuildThreshold > 1 {
		return fmt.Errorf("rebuild_threshold must be in [0,1], got %v", c.RebuildThreshold)
	}
	switch c.Log.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unsupported log level: %s", c.Log.Level)
	}
	return nil
}
