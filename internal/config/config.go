// Package config provides configuration loading and validation for the service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mathieu/talent-match/internal/matching"
)

// Config represents the service configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or come from
// the environment.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty"`         // HTTP listen port
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Logging
	JSONLogs bool `json:"json_logs,omitempty"` // Emit JSON logs instead of console
	Debug    bool `json:"debug,omitempty"`     // Enable debug-level logging

	// Matching
	MinScore    int              `json:"min_score,omitempty"`   // Default bulk ranking threshold
	Concurrency int              `json:"concurrency,omitempty"` // Bulk evaluation parallelism
	Scoring     *matching.Params `json:"scoring,omitempty"`     // Weight/decay overrides; nil uses engine defaults
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables. Used when no config
// file is supplied; .env files are loaded by main before this runs.
func FromEnv() *Config {
	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JSONLogs:    os.Getenv("LOG_JSON") == "true",
		Debug:       os.Getenv("LOG_DEBUG") == "true",
	}
	if port, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
		cfg.Port = port
	}
	return cfg
}

// ApplyDefaults fills zero-valued fields with service defaults.
func (c *Config) ApplyDefaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.MinScore == 0 {
		c.MinScore = matching.DefaultMinScore
	}
	if c.Concurrency == 0 {
		c.Concurrency = 8
	}
}

// Params returns the scoring parameters, falling back to engine defaults
// when no override is configured.
func (c *Config) Params() matching.Params {
	if c.Scoring != nil {
		return *c.Scoring
	}
	return matching.DefaultParams()
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' out of range: %d", c.Port)
	}
	if c.MinScore < 0 || c.MinScore > 100 {
		return fmt.Errorf("config error: 'min_score' must be in [0, 100]")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}
	if c.Scoring != nil {
		if err := c.Scoring.Validate(); err != nil {
			return fmt.Errorf("config error: invalid scoring params: %w", err)
		}
	}
	return nil
}
