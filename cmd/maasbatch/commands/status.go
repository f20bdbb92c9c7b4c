package commands

import (
	"github.com/spf13/cobra"

	"maasbatch/cmd/maasbatch/handlers"
)

// Status returns the command for reading a single machine's status.
func Status() *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "status <system-id>",
		Short: "Print the current status of one machine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return handlers.Status(cmd.Context(), profile, args[0])
		},
	}

	cmd.Flags().StringVarP(&profile, "profile", "u", "", "MAAS CLI profile")

	return cmd
}
