package maas

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// execCommand runs the given command and returns its stdout. Replaced in
// tests to avoid shelling out.
var execCommand = func(ctx context.Context, name string, args ...string) ([]byte, error) {
	// #nosec G204 - args are built from operator-supplied inventory, and the
	// binary name is fixed
	return exec.CommandContext(ctx, name, args...).Output()
}

// RealClient implements Client by shelling out to the `maas` CLI.
type RealClient struct {
	profile string
}

// Ensure interface compliance.
var _ Client = (*RealClient)(nil)

// NewRealClient returns a client that invokes the `maas` CLI under the
// given profile (the username passed to `maas login`).
func NewRealClient(profile string) *RealClient {
	return &RealClient{profile: profile}
}

// ReadMachine returns the machine's current status.
func (c *RealClient) ReadMachine(ctx context.Context, systemID string) (Status, error) {
	out, err := c.run(ctx, "machine", "read", systemID)
	if err != nil {
		return StatusUnknown, err
	}
	return parseStatus(out)
}

// CreateMachine registers a machine and returns the assigned system id.
func (c *RealClient) CreateMachine(ctx context.Context, spec MachineSpec) (string, error) {
	params, err := json.Marshal(spec.PowerParameters)
	if err != nil {
		return "", fmt.Errorf("failed to serialize power parameters: %w", err)
	}

	out, err := c.run(ctx, "machines", "create",
		"hostname="+spec.Hostname,
		"architecture="+spec.Architecture,
		"mac_addresses="+spec.MACAddresses,
		"power_type="+spec.PowerType,
		"power_parameters="+string(params),
	)
	if err != nil {
		return "", err
	}
	return parseSystemID(out)
}

// UpdateMachine pushes cloud-init user-data to a registered machine. The
// payload is passed as a JSON string literal, which is how the MAAS CLI
// expects multi-line values.
func (c *RealClient) UpdateMachine(ctx context.Context, systemID, userData string) error {
	encoded, err := json.Marshal(userData)
	if err != nil {
		return fmt.Errorf("failed to encode user-data: %w", err)
	}

	_, err = c.run(ctx, "machine", "update", systemID, "user_data="+string(encoded))
	return err
}

// DeployMachine triggers deployment of a machine.
func (c *RealClient) DeployMachine(ctx context.Context, systemID string) error {
	_, err := c.run(ctx, "machine", "deploy", systemID)
	return err
}

// run invokes `maas <profile> <args...>` and returns stdout.
func (c *RealClient) run(ctx context.Context, args ...string) ([]byte, error) {
	full := append([]string{c.profile}, args...)
	out, err := execCommand(ctx, "maas", full...)
	if err != nil {
		return nil, &CommandError{
			Subcommand: strings.Join(args[:2], " "),
			Output:     stderrOf(err),
			Err:        err,
		}
	}
	return out, nil
}

// stderrOf extracts captured stderr from a failed exec, if available.
func stderrOf(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return ""
}

func parseStatus(out []byte) (Status, error) {
	var machine struct {
		StatusName string `json:"status_name"`
	}
	if err := json.Unmarshal(out, &machine); err != nil {
		return StatusUnknown, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if machine.StatusName == "" {
		return StatusUnknown, nil
	}
	return Status(machine.StatusName), nil
}

func parseSystemID(out []byte) (string, error) {
	var machine struct {
		SystemID string `json:"system_id"`
	}
	if err := json.Unmarshal(out, &machine); err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if machine.SystemID == "" {
		return "", fmt.Errorf("%w: missing system_id", ErrMalformedResponse)
	}
	return machine.SystemID, nil
}
