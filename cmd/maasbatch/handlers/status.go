package handlers

import (
	"context"
	"fmt"

	"maasbatch/internal/config"
)

// Status handles the status command: a one-shot status read for a single
// machine. Unlike the polling path, a failed read here is surfaced as an
// error rather than degraded to Unknown.
func Status(ctx context.Context, profile, systemID string) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if profile != "" {
		cfg.Profile = profile
	}
	if cfg.Profile == "" {
		return fmt.Errorf("maas profile is required (--profile or MAAS_PROFILE)")
	}

	status, err := newClient(cfg.Profile).ReadMachine(ctx, systemID)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", systemID, status)
	return nil
}
