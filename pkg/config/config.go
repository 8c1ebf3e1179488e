// Package config loads engine configuration from config.yaml with
// environment variable overrides.
package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultConfigPath is the YAML file read when present.
const DefaultConfigPath = "config.yaml"

// Config holds all configuration for the scoping engine.
// Environment variables always override YAML values.
type Config struct {
	// Server configuration
	BindAddr string `yaml:"bind_addr" env:"BIND_ADDR" env-default:"127.0.0.1"`
	Port     string `yaml:"port" env:"PORT" env-default:"8080"`
	Env      string `yaml:"env" env:"ENVIRONMENT" env-default:"local"`
	Version  string `yaml:"-"` // Set at load time, not from config

	// Content pack locations. JSON and YAML files are both supported.
	Content ContentConfig `yaml:"content"`

	// Session registry housekeeping.
	Session SessionConfig `yaml:"session"`

	// Logging configuration
	Logging LoggingConfig `yaml:"logging"`
}

// ContentConfig points at the static content the engine consumes.
type ContentConfig struct {
	QuestionsPath string `yaml:"questions_path" env:"QUESTIONS_PATH" env-default:"content/questions.json"`
	KeywordsPath  string `yaml:"keywords_path" env:"KEYWORDS_PATH" env-default:"content/keywords.json"`
}

// SessionConfig holds in-memory session registry settings.
type SessionConfig struct {
	// IdleTTLMinutes is how long an idle session survives before the
	// sweeper drops it.
	IdleTTLMinutes int `yaml:"idle_ttl_minutes" env:"SESSION_IDLE_TTL_MINUTES" env-default:"60"`
	// SweepIntervalMinutes is how often the sweeper runs.
	SweepIntervalMinutes int `yaml:"sweep_interval_minutes" env:"SESSION_SWEEP_INTERVAL_MINUTES" env-default:"10"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
	// Development switches to the human-readable console encoder.
	Development bool `yaml:"development" env:"LOG_DEVELOPMENT" env-default:"false"`
}

// Load reads configuration from config.yaml with environment variable
// overrides. A missing config file is not an error; the engine then runs on
// env vars and defaults alone. The version parameter is injected at build
// time and set on the returned Config.
func Load(version string) (*Config, error) {
	return LoadFrom(DefaultConfigPath, version)
}

// LoadFrom is Load with an explicit config file path.
func LoadFrom(path, version string) (*Config, error) {
	cfg := &Config{Version: version}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
	} else {
		if err := cleanenv.ReadEnv(cfg); err != nil {
			return nil, fmt.Errorf("failed to read environment: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks invariants cleanenv defaults cannot express.
func (c *Config) Validate() error {
	if c.Content.QuestionsPath == "" {
		return fmt.Errorf("content.questions_path must not be empty")
	}
	if c.Content.KeywordsPath == "" {
		return fmt.Errorf("content.keywords_path must not be empty")
	}
	if c.Session.IdleTTLMinutes <= 0 {
		return fmt.Errorf("session.idle_ttl_minutes must be positive, got %d", c.Session.IdleTTLMinutes)
	}
	if c.Session.SweepIntervalMinutes <= 0 {
		return fmt.Errorf("session.sweep_interval_minutes must be positive, got %d", c.Session.SweepIntervalMinutes)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn or error, got %q", c.Logging.Level)
	}
	return nil
}
