// Package provision implements the two-phase bulk provisioning workflow:
// concurrent machine registration, then concurrent configure-and-deploy of
// every machine that registered successfully.
package provision

// Result is the outcome of phase-1 registration for one inventory row.
// The power credentials are echoed from the row, not re-derived from the
// MAAS response.
type Result struct {
	Hostname string
	// SystemID is the MAAS handle for the machine. Empty means
	// registration failed and the machine is excluded from phase 2.
	SystemID string

	PowerUser    string
	PowerPass    string
	PowerAddress string
}

// Registered reports whether phase 1 produced a usable machine.
func (r Result) Registered() bool {
	return r.SystemID != ""
}

// Outcome is the terminal state of the configure-and-deploy sequence for
// one machine.
type Outcome int

const (
	// OutcomeSkipped means the machine had no system id from phase 1.
	OutcomeSkipped Outcome = iota
	// OutcomeNotReady means the machine never reached Ready; it was not
	// configured or deployed.
	OutcomeNotReady
	// OutcomeDeployed means the machine reached Deployed.
	OutcomeDeployed
	// OutcomeDeployTimeout means deployment was triggered but the machine
	// did not reach Deployed within the status timeout.
	OutcomeDeployTimeout
)

// Summary aggregates per-machine outcomes for a whole run.
type Summary struct {
	Total          int
	Registered     int
	Deployed       int
	NotReady       int
	DeployTimeouts int
}

// RegistrationFailures is the number of rows that never made it past
// phase 1.
func (s Summary) RegistrationFailures() int {
	return s.Total - s.Registered
}
