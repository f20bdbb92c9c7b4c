package commands

import (
	"github.com/spf13/cobra"

	"maasbatch/cmd/maasbatch/handlers"
)

// Add returns the command for bulk-registering and deploying machines.
//
// Required settings (flag, environment, or config file):
//
//	--profile: MAAS CLI profile (the username passed to `maas login`)
//	--csv: path to the CSV inventory
//
// Optional flags:
//
//	--cloud-init: cloud-init file applied to each machine before deployment
//	--config: YAML file with defaults for profile, workers and timeouts
//	--workers, --timeout, --interval: concurrency and polling knobs
func Add() *cobra.Command {
	var opts handlers.AddOptions

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register and deploy all machines from a CSV inventory",
		Long: `Register and deploy machines listed in a CSV inventory.

The run has two phases, each fanned out over a bounded worker pool:
  1. Every row is registered with MAAS (machines create).
  2. Every registered machine is waited to Ready, optionally configured
     with cloud-init user-data, deployed, and waited to Deployed.

Per-machine failures are logged and never abort the batch; the remaining
machines keep provisioning. The process exits non-zero only for startup
errors such as an unreadable inventory.

The CSV needs a header row with columns: hostname, architecture,
mac_addresses, power_type, power_user, power_pass, power_driver,
power_address, cipher_suite_id, power_boot_type, privilege_level, k_g.

Examples:
  # Register and deploy every machine in the inventory
  maasbatch add --profile admin --csv machines.csv

  # Apply cloud-init to each machine before deployment
  maasbatch add --profile admin --csv machines.csv --cloud-init cloud-init.yaml`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Add(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "u", "", "MAAS CLI profile")
	cmd.Flags().StringVarP(&opts.CSVPath, "csv", "f", "", "Path to the CSV inventory")
	cmd.Flags().StringVar(&opts.CloudInitPath, "cloud-init", "", "Path to a cloud-init file applied before deployment")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Path to a YAML config file")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "Concurrent workers per phase (default 5)")
	cmd.Flags().DurationVar(&opts.StatusTimeout, "timeout", 0, "Per-machine status wait timeout (default 30m)")
	cmd.Flags().DurationVar(&opts.PollInterval, "interval", 0, "Delay between status polls (default 10s)")

	return cmd
}
