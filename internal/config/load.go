package config

import (
	"fmt"
	"os"
	"time"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the YAML config file schema. Durations are strings in
// Go duration syntax ("30m", "10s").
type fileConfig struct {
	Profile       string `mapstructure:"profile"`
	CloudInit     string `mapstructure:"cloud_init"`
	Workers       int    `mapstructure:"workers"`
	StatusTimeout string `mapstructure:"status_timeout"`
	PollInterval  string `mapstructure:"poll_interval"`
}

// Load builds a configuration from defaults, the optional YAML file at
// path, and environment variable overrides, in that order. Flag overrides
// are the caller's responsibility.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.applyFile(path); err != nil {
			return nil, err
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyFile overlays a YAML config file onto the configuration. A missing
// or unparsable file is a fatal startup error.
func (c *Config) applyFile(path string) error {
	// #nosec G304 - path is an operator-supplied CLI argument
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var rawConfig map[string]interface{}
	if err := yaml.Unmarshal(data, &rawConfig); err != nil {
		return fmt.Errorf("failed to unmarshal yaml: %w", err)
	}

	var fc fileConfig
	if err := mapstructure.Decode(rawConfig, &fc); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}

	if fc.Profile != "" {
		c.Profile = fc.Profile
	}
	if fc.CloudInit != "" {
		c.CloudInitPath = fc.CloudInit
	}
	if fc.Workers != 0 {
		c.Workers = fc.Workers
	}
	if fc.StatusTimeout != "" {
		d, err := time.ParseDuration(fc.StatusTimeout)
		if err != nil {
			return fmt.Errorf("invalid status_timeout %q: %w", fc.StatusTimeout, err)
		}
		c.StatusTimeout = d
	}
	if fc.PollInterval != "" {
		d, err := time.ParseDuration(fc.PollInterval)
		if err != nil {
			return fmt.Errorf("invalid poll_interval %q: %w", fc.PollInterval, err)
		}
		c.PollInterval = d
	}

	return nil
}
