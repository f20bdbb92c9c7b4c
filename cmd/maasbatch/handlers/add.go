// Package handlers implements the execution logic behind the CLI commands.
package handlers

import (
	"context"
	"fmt"
	"os"
	"time"

	"maasbatch/internal/config"
	"maasbatch/internal/inventory"
	"maasbatch/internal/platform/maas"
	"maasbatch/internal/provision"
)

// AddOptions carries the add command's flag values. Zero values mean the
// flag was not set and lower-precedence sources (environment, config file,
// defaults) apply.
type AddOptions struct {
	Profile       string
	CSVPath       string
	CloudInitPath string
	ConfigPath    string
	Workers       int
	StatusTimeout time.Duration
	PollInterval  time.Duration
}

// newClient creates the MAAS client. Replaced in tests.
var newClient = func(profile string) maas.Client {
	return maas.NewRealClient(profile)
}

// Add handles the add command: it resolves the configuration, loads the
// inventory, runs the two-phase provisioning workflow, and prints a
// summary. Startup problems (bad flags, unreadable inventory, missing
// cloud-init file) are returned as errors; per-machine failures are logged
// by the workflow and reflected in the summary, with exit code 0.
func Add(ctx context.Context, opts AddOptions) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	rows, err := inventory.Load(cfg.CSVPath)
	if err != nil {
		return err
	}

	// Per-machine pushes tolerate read failures, but a cloud-init file
	// that is unreadable up front is an operator mistake worth stopping
	// the whole run for.
	if cfg.CloudInitPath != "" {
		if _, err := os.Stat(cfg.CloudInitPath); err != nil {
			return fmt.Errorf("cloud-init file: %w", err)
		}
	}

	orch := &provision.Orchestrator{
		Client:        newClient(cfg.Profile),
		Workers:       cfg.Workers,
		CloudInitPath: cfg.CloudInitPath,
		StatusTimeout: cfg.StatusTimeout,
		PollInterval:  cfg.PollInterval,
	}

	summary := orch.Run(ctx, rows)
	fmt.Print(renderSummary(summary))

	return nil
}

// loadConfig resolves the effective configuration: defaults, then config
// file, then environment, then flags.
func loadConfig(opts AddOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Profile != "" {
		cfg.Profile = opts.Profile
	}
	if opts.CSVPath != "" {
		cfg.CSVPath = opts.CSVPath
	}
	if opts.CloudInitPath != "" {
		cfg.CloudInitPath = opts.CloudInitPath
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}
	if opts.StatusTimeout > 0 {
		cfg.StatusTimeout = opts.StatusTimeout
	}
	if opts.PollInterval > 0 {
		cfg.PollInterval = opts.PollInterval
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
