// Package config holds the dashboard configuration, loaded from a YAML
// file with environment overrides on top.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all contractdash configuration.
type Config struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`

	// Mock data sources
	Data DataConfig `yaml:"data"`

	// Dashboard list view
	Dashboard DashboardConfig `yaml:"dashboard"`

	// Upload simulation
	Upload UploadConfig `yaml:"upload"`

	// Session marker persistence
	Session SessionConfig `yaml:"session"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// UI
	UI UIConfig `yaml:"ui"`
}

// DataConfig points at the mock JSON collections. Empty paths select the
// embedded copies.
type DataConfig struct {
	ContractsPath string `yaml:"contracts_path"`
	DetailsPath   string `yaml:"details_path"`
}

// DashboardConfig configures the contract list.
type DashboardConfig struct {
	PageSize int `yaml:"page_size"`
}

// UploadConfig configures the simulated upload.
type UploadConfig struct {
	Delay       string  `yaml:"delay"`        // per-file delay, e.g. "2s"
	SuccessRate float64 `yaml:"success_rate"` // probability of Success in [0,1]
}

// SessionConfig configures the persisted session marker.
type SessionConfig struct {
	MarkerPath string `yaml:"marker_path"`
}

// LoggingConfig configures the file logger. The TUI owns the terminal, so
// logs always go to a file.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// UIConfig configures the theme.
type UIConfig struct {
	Theme string `yaml:"theme"` // light, dark, auto
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	stateDir := defaultStateDir()
	return &Config{
		Name:    "contractdash",
		Version: "0.3.0",

		Dashboard: DashboardConfig{
			PageSize: 10,
		},

		Upload: UploadConfig{
			Delay:       "2s",
			SuccessRate: 0.8,
		},

		Session: SessionConfig{
			MarkerPath: filepath.Join(stateDir, "session"),
		},

		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(stateDir, "logs", "contractdash.log"),
		},

		UI: UIConfig{
			Theme: "auto",
		},
	}
}

// Load reads the config file at path, layered over the defaults, then
// applies environment overrides. A missing file is not an error; the
// defaults (plus environment) apply.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
func (c *Config) Save(path string) error {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// applyEnvOverrides layers CONTRACTDASH_* environment variables on top of
// whatever the file provided.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("CONTRACTDASH_CONTRACTS"); v != "" {
		c.Data.ContractsPath = v
	}
	if v := os.Getenv("CONTRACTDASH_DETAILS"); v != "" {
		c.Data.DetailsPath = v
	}
	if v := os.Getenv("CONTRACTDASH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("CONTRACTDASH_UPLOAD_DELAY"); v != "" {
		c.Upload.Delay = v
	}
	if v := os.Getenv("CONTRACTDASH_SUCCESS_RATE"); v != "" {
		if rate, err := strconv.ParseFloat(v, 64); err == nil {
			c.Upload.SuccessRate = rate
		}
	}
	if v := os.Getenv("CONTRACTDASH_THEME"); v != "" {
		c.UI.Theme = v
	}
}

func (c *Config) validate() error {
	if c.Dashboard.PageSize < 1 {
		return fmt.Errorf("dashboard.page_size must be >= 1, got %d", c.Dashboard.PageSize)
	}
	if c.Upload.SuccessRate < 0 || c.Upload.SuccessRate > 1 {
		return fmt.Errorf("upload.success_rate must be in [0,1], got %v", c.Upload.SuccessRate)
	}
	if _, err := c.UploadDelay(); err != nil {
		return err
	}
	return nil
}

// UploadDelay parses the configured per-file delay.
func (c *Config) UploadDelay() (time.Duration, error) {
	d, err := time.ParseDuration(c.Upload.Delay)
	if err != nil {
		return 0, fmt.Errorf("upload.delay: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("upload.delay must not be negative, got %s", d)
	}
	return d, nil
}

// DefaultPath returns the conventional config file location.
func DefaultPath() string {
	return filepath.Join(defaultStateDir(), "config.yaml")
}

func defaultStateDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".contractdash"
	}
	return filepath.Join(home, ".contractdash")
}
