// Package config holds the run configuration for the bulk provisioner.
//
// Settings are resolved in precedence order: command-line flags override
// environment variables, which override the optional YAML config file,
// which overrides built-in defaults. Flag handling lives in the commands
// layer; this package covers the rest.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Defaults for the tunable knobs.
const (
	DefaultWorkers       = 5
	DefaultStatusTimeout = 30 * time.Minute
	DefaultPollInterval  = 10 * time.Second
)

// Config holds the application configuration for one run.
type Config struct {
	// Profile is the MAAS CLI profile (the username passed to
	// `maas login`).
	Profile string

	// CSVPath is the machine inventory. CloudInitPath is optional; empty
	// disables the configuration push.
	CSVPath       string
	CloudInitPath string

	// Workers bounds each provisioning phase's concurrency.
	Workers int

	// StatusTimeout caps each status wait; PollInterval is the fixed
	// delay between status queries.
	StatusTimeout time.Duration
	PollInterval  time.Duration
}

// Default returns the built-in configuration defaults.
func Default() *Config {
	return &Config{
		Workers:       DefaultWorkers,
		StatusTimeout: DefaultStatusTimeout,
		PollInterval:  DefaultPollInterval,
	}
}

// applyEnv overlays environment variables onto the configuration.
// If a variable is not set or invalid, the current value is kept.
//
// Environment Variables:
//   - MAAS_PROFILE
//   - MAAS_WORKERS (default: 5)
//   - MAAS_TIMEOUT_STATUS (default: 30m)
//   - MAAS_POLL_INTERVAL (default: 10s)
func (c *Config) applyEnv() {
	if v := os.Getenv("MAAS_PROFILE"); v != "" {
		c.Profile = v
	}
	c.Workers = parseInt("MAAS_WORKERS", c.Workers)
	c.StatusTimeout = parseDuration("MAAS_TIMEOUT_STATUS", c.StatusTimeout)
	c.PollInterval = parseDuration("MAAS_POLL_INTERVAL", c.PollInterval)
}

// Validate checks the configuration for a provisioning run.
func (c *Config) Validate() error {
	if c.Profile == "" {
		return fmt.Errorf("maas profile is required")
	}
	if c.CSVPath == "" {
		return fmt.Errorf("inventory path is required")
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	if c.StatusTimeout <= 0 {
		return fmt.Errorf("status timeout must be positive, got %s", c.StatusTimeout)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", c.PollInterval)
	}
	return nil
}

// parseDuration parses a duration from an environment variable.
// If the variable is not set or parsing fails, the fallback is returned.
func parseDuration(envVar string, fallback time.Duration) time.Duration {
	val := os.Getenv(envVar)
	if val == "" {
		return fallback
	}

	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}

	return d
}

// parseInt parses an integer from an environment variable.
// If the variable is not set or parsing fails, the fallback is returned.
func parseInt(envVar string, fallback int) int {
	val := os.Getenv(envVar)
	if val == "" {
		return fallback
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}

	return n
}
