// Package config loads langtour configuration from langtour.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all langtour configuration.
type Config struct {
	// Sections lists the section names to run. Empty means all registered
	// sections in registration order.
	Sections []string `yaml:"sections"`

	// Output controls how section output is presented.
	Output OutputConfig `yaml:"output"`

	// Concurrency tunes the spawn-and-join demonstration.
	Concurrency ConcurrencyConfig `yaml:"concurrency"`

	// Logging configures the categorized debug log files.
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig controls presentation.
type OutputConfig struct {
	// Color enables lipgloss-styled headers.
	Color bool `yaml:"color"`
}

// ConcurrencyConfig tunes the concurrency section.
type ConcurrencyConfig struct {
	// SpawnedGreetings is how many lines the spawned goroutine prints.
	SpawnedGreetings int `yaml:"spawned_greetings"`

	// MainGreetings is how many lines the calling goroutine prints.
	MainGreetings int `yaml:"main_greetings"`

	// Delay is the pause between lines, as a duration string ("1ms").
	Delay string `yaml:"delay"`
}

// DelayDuration parses Delay, falling back to the default on error.
func (c ConcurrencyConfig) DelayDuration() time.Duration {
	d, err := time.ParseDuration(c.Delay)
	if err != nil || d < 0 {
		return time.Millisecond
	}
	return d
}

// LoggingConfig mirrors internal/logging's expectations.
type LoggingConfig struct {
	DebugMode  bool            `yaml:"debug_mode"`
	Level      string          `yaml:"level"`
	Categories map[string]bool `yaml:"categories"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Output: OutputConfig{Color: true},
		Concurrency: ConcurrencyConfig{
			SpawnedGreetings: 3,
			MainGreetings:    2,
			Delay:            "1ms",
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load reads the config file at path. A missing file yields Default().
// Environment overrides are applied after the file in both cases.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnvOverrides applies LANGTOUR_* environment variables on top of the
// file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("LANGTOUR_SECTIONS"); v != "" {
		var sections []string
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				sections = append(sections, s)
			}
		}
		c.Sections = sections
	}
	if os.Getenv("LANGTOUR_NO_COLOR") != "" || os.Getenv("NO_COLOR") != "" {
		c.Output.Color = false
	}
	if os.Getenv("LANGTOUR_DEBUG") != "" {
		c.Logging.DebugMode = true
		if c.Logging.Level == "" || c.Logging.Level == "info" {
			c.Logging.Level = "debug"
		}
	}
}

// Validate checks value ranges. Section names are validated against the
// registry by the caller, not here.
func (c *Config) Validate() error {
	if c.Concurrency.SpawnedGreetings < 0 {
		return fmt.Errorf("concurrency.spawned_greetings must be >= 0, got %d", c.Concurrency.SpawnedGreetings)
	}
	if c.Concurrency.MainGreetings < 0 {
		return fmt.Errorf("concurrency.main_greetings must be >= 0, got %d", c.Concurrency.MainGreetings)
	}
	if c.Concurrency.Delay != "" {
		if _, err := time.ParseDuration(c.Concurrency.Delay); err != nil {
			return fmt.Errorf("concurrency.delay is not a duration: %w", err)
		}
	}
	return nil
}
