// Package config provides configuration management for the license
// worker.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrNoSources                  = errors.New("at least one source is required")
	ErrSourceMissingURLOrFile     = errors.New("either url or file path is required")
	ErrSourceMissingJurisdiction  = errors.New("jurisdiction is required")
	ErrNoEnabledSources           = errors.New("at least one source must be enabled")
	ErrInvalidMaxAttempts         = errors.New("retry.max_attempts must be at least 1")
	ErrInvalidInitialDelay        = errors.New("retry.initial_delay_ms must be non-negative")
	ErrInvalidBackoffMultiplier   = errors.New("retry.backoff_multiplier must be >= 1.0")
	ErrInvalidTimeout             = errors.New("retry.timeout_sec must be at least 1")
	ErrMissingOutputPath          = errors.New("output.base_path is required")
	ErrSinkMissingURI             = errors.New("sink.uri is required when the sink is enabled")
	ErrSinkMissingDatabase        = errors.New("sink.database is required when the sink is enabled")
	ErrSinkMissingCollection      = errors.New("sink.collection is required when the sink is enabled")
	ErrInvalidLogLevel            = errors.New("logging.level must be one of: debug, info, warn, error")
)

// Config represents the complete worker configuration.
type Config struct {
	Worker WorkerConfig `yaml:"worker"`
}

// WorkerConfig contains worker-specific settings.
type WorkerConfig struct {
	Output  OutputConfig   `yaml:"output"`
	Sink    SinkConfig     `yaml:"sink"`
	Sources []SourceConfig `yaml:"sources"`
	Logging LoggingConfig  `yaml:"logging"`
	Retry   RetryPolicy    `yaml:"retry"`
}

// SourceConfig represents one jurisdiction source.
type SourceConfig struct {
	Jurisdiction string `yaml:"jurisdiction"`
	URL          string `yaml:"url"`
	File         string `yaml:"file"`
	Name         string `yaml:"name"`
	Enabled      bool   `yaml:"enabled"`
}

// IsLocalFile returns true if this source uses a local file.
func (s *SourceConfig) IsLocalFile() bool {
	return s.File != ""
}

// GetSource returns the file path if local, or URL if remote.
func (s *SourceConfig) GetSource() string {
	if s.IsLocalFile() {
		return s.File
	}

	return s.URL
}

// RetryPolicy defines retry behavior for remote sources.
type RetryPolicy struct {
	MaxAttempts       int     `yaml:"max_attempts"`
	InitialDelayMs    int     `yaml:"initial_delay_ms"`
	MaxDelayMs        int     `yaml:"max_delay_ms"`
	BackoffMultiplier float64 `yaml:"backoff_multiplier"`
	TimeoutSec        int     `yaml:"timeout_sec"`
}

// OutputConfig defines where serialized batches are written.
type OutputConfig struct {
	BasePath    string `yaml:"base_path"`
	PrettyPrint bool   `yaml:"pretty_print"`
}

// SinkConfig defines the optional MongoDB sink.
type SinkConfig struct {
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
	Enabled    bool   `yaml:"enabled"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// LoadConfig loads configuration from a YAML file.
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if len(c.Worker.Sources) == 0 {
		return ErrNoSources
	}

	enabledCount := 0

	for i, src := range c.Worker.Sources {
		if src.URL == "" && src.File == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingURLOrFile, i)
		}

		if src.Jurisdiction == "" {
			return fmt.Errorf("%w: source[%d]", ErrSourceMissingJurisdiction, i)
		}

		if src.Enabled {
			enabledCount++
		}
	}

	if enabledCount == 0 {
		return ErrNoEnabledSources
	}

	if c.Worker.Retry.MaxAttempts < 1 {
		return ErrInvalidMaxAttempts
	}

	if c.Worker.Retry.InitialDelayMs < 0 {
		return ErrInvalidInitialDelay
	}

	if c.Worker.Retry.BackoffMultiplier < 1.0 {
		return ErrInvalidBackoffMultiplier
	}

	if c.Worker.Retry.TimeoutSec < 1 {
		return ErrInvalidTimeout
	}

	if c.Worker.Output.BasePath == "" {
		return ErrMissingOutputPath
	}

	if c.Worker.Sink.Enabled {
		if c.Worker.Sink.URI == "" {
			return ErrSinkMissingURI
		}

		if c.Worker.Sink.Database == "" {
			return ErrSinkMissingDatabase
		}

		if c.Worker.Sink.Collection == "" {
			return ErrSinkMissingCollection
		}
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Worker.Logging.Level] {
		return ErrInvalidLogLevel
	}

	return nil
}

// GetEnabledSources returns only enabled sources.
func (c *Config) GetEnabledSources() []SourceConfig {
	var enabled []SourceConfig

	for _, src := range c.Worker.Sources {
		if src.Enabled {
			enabled = append(enabled, src)
		}
	}

	return enabled
}

// GetRetryDelay calculates exponential backoff delay for attempt number.
func (rp *RetryPolicy) GetRetryDelay(attempt int) time.Duration {
	if attempt <= 1 {
		return 0
	}

	delayMs := float64(rp.InitialDelayMs)
	for i := 1; i < attempt; i++ {
		delayMs *= rp.BackoffMultiplier
	}

	// Cap at max delay
	if int(delayMs) > rp.MaxDelayMs {
		delayMs = float64(rp.MaxDelayMs)
	}

	return time.Duration(int(delayMs)) * time.Millisecond
}

// GetTimeout returns the timeout duration.
func (rp *RetryPolicy) GetTimeout() time.Duration {
	return time.Duration(rp.TimeoutSec) * time.Second
}

// GetOutputPath follows structure: {base_path}/{jurisdiction_slug}.json.
func (c *Config) GetOutputPath(slug string) string {
	return fmt.Sprintf("%s/%s.json", c.Worker.Output.BasePath, slug)
}

// String returns a string representation of the config.
func (c *Config) String() string {
	return fmt.Sprintf(
		"Config{Sources: %d, MaxAttempts: %d, Output: %s}",
		len(c.Worker.Sources),
		c.Worker.Retry.MaxAttempts,
		c.Worker.Output.BasePath,
	)
}
