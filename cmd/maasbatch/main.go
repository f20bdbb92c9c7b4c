// Package main is the entry point for the maasbatch CLI.
//
// maasbatch bulk-provisions bare-metal machines in MAAS from a CSV
// inventory: it registers every machine, waits for each to become Ready,
// optionally applies cloud-init user-data, and deploys them, fanning out
// over the batch with bounded worker pools.
//
// For detailed usage information, run:
//
//	maasbatch --help
package main

import (
	"fmt"
	"os"

	"maasbatch/cmd/maasbatch/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
