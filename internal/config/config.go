package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"contactbook/internal/contact"

	"gopkg.in/yaml.v3"
)

// Config holds all contactbook configuration.
type Config struct {
	// Core settings
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Command loop
	Session SessionConfig `yaml:"session"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// SessionConfig configures the interactive command loop.
type SessionConfig struct {
	Prompt             string `yaml:"prompt"`
	BirthdayWindowDays int    `yaml:"birthday_window_days"`
}

// MaxBirthdayWindowDays bounds session.birthday_window_days.
const MaxBirthdayWindowDays = contact.MaxWindowDays

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Name:    "contactbook",
		Version: "0.1.0",

		Session: SessionConfig{
			Prompt:             "Enter a command: ",
			BirthdayWindowDays: 7,
		},

		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Unparsable
// numbers are ignored and leave the current value in place.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CONTACTS_BIRTHDAY_WINDOW"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			c.Session.BirthdayWindowDays = days
		}
	}
	if v := os.Getenv("CONTACTS_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CONTACTS_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
}

// ValidLevels lists the accepted logging levels.
var ValidLevels = []string{"debug", "info", "warn", "error"}

// ValidFormats lists the accepted logging encodings.
var ValidFormats = []string{"json", "console"}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if w := c.Session.BirthdayWindowDays; w < 0 || w > MaxBirthdayWindowDays {
		return fmt.Errorf("invalid birthday window: %d (valid: 0..%d)", w, MaxBirthdayWindowDays)
	}
	if !slices.Contains(ValidLevels, c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLevels)
	}
	if !slices.Contains(ValidFormats, c.Logging.Format) {
		return fmt.Errorf("invalid log format: %s (valid: %v)", c.Logging.Format, ValidFormats)
	}
	return nil
}
