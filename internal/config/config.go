// Package config provides configuration types and defaults for gadgets.
package config

import (
	"fmt"
	"strings"

	"github.com/npratt/gadgets/internal/counter"
)

// Config holds all configuration for gadgets.
type Config struct {
	Counter     CounterConfig     `yaml:"counter" mapstructure:"counter"`
	Advisor     AdvisorConfig     `yaml:"advisor" mapstructure:"advisor"`
	Paths       PathsConfig       `yaml:"paths" mapstructure:"paths"`
	LogRotation LogRotationConfig `yaml:"log_rotation" mapstructure:"log_rotation"`
}

// CounterConfig holds settings for the counter widget.
type CounterConfig struct {
	Limit int `yaml:"limit" mapstructure:"limit"` // Value at which the limit notice appears
}

// AdvisorConfig holds settings for the keyword advisor widget.
type AdvisorConfig struct {
	CatalogFile string   `yaml:"catalog_file" mapstructure:"catalog_file"` // Alternate suggestion catalog (empty = built-in)
	Examples    []string `yaml:"examples" mapstructure:"examples"`         // Example prompts (empty = built-in)
}

// PathsConfig holds file paths.
type PathsConfig struct {
	Log string `yaml:"log" mapstructure:"log"`
}

// LogRotationConfig holds settings for log file rotation.
// Used for the TUI debug log (lumberjack-based automatic rotation).
type LogRotationConfig struct {
	MaxSizeMB  int  `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int  `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAgeDays int  `yaml:"max_age_days" mapstructure:"max_age_days"`
	Compress   bool `yaml:"compress" mapstructure:"compress"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		Counter: CounterConfig{
			Limit: counter.DefaultLimit,
		},
		Advisor: AdvisorConfig{
			CatalogFile: "",
			Examples:    []string{},
		},
		Paths: PathsConfig{
			Log: ".gadgets/gadgets-debug.log",
		},
		LogRotation: LogRotationConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

// Validate checks values that would otherwise fail later in a confusing way.
func (c *Config) Validate() error {
	if c.Counter.Limit < 1 {
		return fmt.Errorf("counter.limit must be at least 1, got %d", c.Counter.Limit)
	}
	for i, ex := range c.Advisor.Examples {
		if strings.TrimSpace(ex) == "" {
			return fmt.Errorf("advisor.examples[%d] is blank", i)
		}
	}
	if c.LogRotation.MaxSizeMB < 0 || c.LogRotation.MaxBackups < 0 || c.LogRotation.MaxAgeDays < 0 {
		return fmt.Errorf("log_rotation values must not be negative")
	}
	return nil
}
