// Package config provides configuration management for matchbox.
// Configuration can be loaded from environment variables or YAML files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/matchbox-ml/matchbox/internal/backend/cpu"
)

// Config holds all configuration for the matchbox CLI.
type Config struct {
	// Backend
	Backend BackendConfig `yaml:"backend"`

	// Graph export
	Graph GraphConfig `yaml:"graph"`

	// Logging
	Log LogConfig `yaml:"log"`
}

// BackendConfig selects and configures the computation backend.
type BackendConfig struct {
	Name    string `envconfig:"MATCHBOX_BACKEND" yaml:"name"`
	Seed    uint64 `envconfig:"MATCHBOX_SEED" yaml:"seed"`       // 0 = random seed
	Workers int    `envconfig:"MATCHBOX_WORKERS" yaml:"workers"` // 0 = one per CPU
}

// GraphConfig controls graph export.
type GraphConfig struct {
	Values     bool `envconfig:"MATCHBOX_GRAPH_VALUES" yaml:"values"`           // Export payloads
	LeavesOnly bool `envconfig:"MATCHBOX_GRAPH_LEAVES_ONLY" yaml:"leaves_only"` // Only leaf payloads
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `envconfig:"MATCHBOX_LOG_LEVEL" yaml:"level"`
	Format string `envconfig:"MATCHBOX_LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from environment and optional config file.
// Precedence: defaults, then the YAML file, then environment variables.
func Load(configPath string) (*Config, error) {
	cfg := &Config{}

	setDefaults(cfg)

	if configPath != "" {
		if err := loadFromFile(cfg, configPath); err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadFromEnv loads configuration from environment variables only.
func LoadFromEnv() (*Config, error) {
	return Load("")
}

func loadFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path comes from the command line
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func setDefaults(cfg *Config) {
	cfg.Backend = BackendConfig{
		Name: "cpu",
	}

	cfg.Graph = GraphConfig{
		Values:     false,
		LeavesOnly: true,
	}

	cfg.Log = LogConfig{
		Level:  "info",
		Format: "text",
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	var errs []string

	if c.Backend.Name != "cpu" {
		errs = append(errs, fmt.Sprintf("invalid backend: %s (must be cpu)", c.Backend.Name))
	}

	if c.Backend.Workers < 0 {
		errs = append(errs, fmt.Sprintf("invalid workers: %d (must be >= 0)", c.Backend.Workers))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("invalid log level: %s (must be debug, info, warn, or error)", c.Log.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[c.Log.Format] {
		errs = append(errs, fmt.Sprintf("invalid log format: %s (must be text or json)", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// CPU returns the CPU backend options.
func (c *Config) CPU() cpu.Config {
	return cpu.Config{
		Seed:    c.Backend.Seed,
		Workers: c.Backend.Workers,
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Log.Level == "debug"
}
