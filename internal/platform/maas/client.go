// Package maas provides a thin client for the MAAS region controller,
// driven through the `maas` CLI. The CLI must already be logged in for the
// profile passed to NewRealClient (`maas login <profile> <url> <token>`).
package maas

import "context"

// Status is a machine status as reported by MAAS (the `status_name` field).
type Status string

// Machine statuses of interest to the provisioning workflow. MAAS reports
// more states than these; anything unrecognized is handled opaquely by
// callers, which compare against an expected status and keep polling.
const (
	StatusReady            Status = "Ready"
	StatusDeployed         Status = "Deployed"
	StatusDeploying        Status = "Deploying"
	StatusCommissioning    Status = "Commissioning"
	StatusFailedDeployment Status = "Failed deployment"
	StatusUnknown          Status = "Unknown"
)

// MachineSpec holds all parameters for registering a machine with MAAS.
type MachineSpec struct {
	Hostname     string
	Architecture string
	// MACAddresses is passed through as a comma-separated list, the form
	// the `machines create` endpoint accepts.
	MACAddresses string
	PowerType    string
	// PowerParameters is the out-of-band management config (BMC
	// credentials, driver, address). Serialized to JSON on the wire.
	PowerParameters map[string]string
}

// Client defines the MAAS operations used by the provisioning workflow.
type Client interface {
	// ReadMachine returns the current status of a machine.
	ReadMachine(ctx context.Context, systemID string) (Status, error)
	// CreateMachine registers a new machine and returns its system id.
	CreateMachine(ctx context.Context, spec MachineSpec) (string, error)
	// UpdateMachine sets the machine's cloud-init user-data. The payload
	// is opaque text, passed through unmodified.
	UpdateMachine(ctx context.Context, systemID, userData string) error
	// DeployMachine triggers deployment of a Ready machine.
	DeployMachine(ctx context.Context, systemID string) error
}
