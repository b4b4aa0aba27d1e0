// Package config provides configuration management for the logvalues CLI
// using Viper for flexible configuration loading from files, environment
// variables, and command-line flags.
//
// The configuration system supports YAML files and environment variable
// overrides with the LOGVALUES_ prefix. Precedence, highest to lowest:
// command-line flags, environment variables, .logvalues.yml, defaults.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type Config struct {
	Log    LogConfig    `yaml:"log" mapstructure:"log"`
	Output OutputConfig `yaml:"output" mapstructure:"output"`
	Watch  WatchConfig  `yaml:"watch" mapstructure:"watch"`
}

type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"`
}

type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce" mapstructure:"debounce"`
}

// BindFlags binds shared command flags into viper so flag values override
// file and environment configuration.
func BindFlags(flags *pflag.FlagSet) error {
	bindings := map[string]string{
		"log.level":     "log-level",
		"output.format": "output",
	}
	for key, flag := range bindings {
		if f := flags.Lookup(flag); f != nil {
			if err := viper.BindPFlag(key, f); err != nil {
				return fmt.Errorf("binding flag %s: %w", flag, err)
			}
		}
	}
	return nil
}

// Load resolves the effective configuration from viper's merged sources.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unmarshaling configuration: %w", err)
	}

	if config.Log.Level == "" {
		config.Log.Level = "info"
	}
	if config.Output.Format == "" {
		config.Output.Format = "text"
	}
	if config.Watch.Debounce <= 0 {
		config.Watch.Debounce = 300 * time.Millisecond
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects configuration values no command can act on.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (expected text or json)", c.Log.Format)
	}

	switch c.Output.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid output format %q (expected text or json)", c.Output.Format)
	}

	return nil
}
