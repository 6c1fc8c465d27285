// Package config provides types and functions for managing BrainBox's
// operational configuration: where the store lives and how verbosely it
// logs. It handles loading defaults and an optional TOML file over them;
// command-line overrides are applied afterwards by the cmd package.
//
// Tuning constants for the Hebbian update rule, decay rates, and confidence
// gates are NOT part of this package — they are compile-time constants of
// the engine (internal/engine/constants.go) and are never configurable.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Supported log levels.
const (
	LogLevelWarn  = "warn"
	LogLevelInfo  = "info"
	LogLevelDebug = "debug"
)

var supportedLogLevels = []string{LogLevelWarn, LogLevelInfo, LogLevelDebug}

// AppConfig is the fully resolved configuration for a BrainBox CLI
// invocation: where the persisted graph lives and how it should log.
// LogLevel is checked by Validate, but nothing in the CLI or the engine
// reads it: warnings are always logged regardless of its value.
type AppConfig struct {
	DBPath   string `toml:"db_path"`
	LogLevel string `toml:"log_level"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DBPath:   "brainbox.db",
		LogLevel: LogLevelWarn,
	}
}

// LoadFile reads a TOML config file and merges it onto the defaults. A
// missing configFile path is not an error — callers pass "" to skip this
// step entirely.
func LoadFile(configFile string) (AppConfig, error) {
	cfg := DefaultAppConfig()
	if configFile == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(configFile, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to decode config file %s: %w", configFile, err)
	}
	return cfg, nil
}

// Validate checks AppConfig for consistency.
func (c *AppConfig) Validate() error {
	if c.DBPath == "" {
		return fmt.Errorf("db_path must not be empty")
	}
	c.DBPath = filepath.Clean(c.DBPath)

	valid := false
	for _, lvl := range supportedLogLevels {
		if c.LogLevel == lvl {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("invalid log_level %q, supported levels are: %v", c.LogLevel, supportedLogLevels)
	}
	return nil
}
