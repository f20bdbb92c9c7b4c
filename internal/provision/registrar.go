package provision

import (
	"context"
	"log"

	"maasbatch/internal/inventory"
	"maasbatch/internal/platform/maas"
)

// Register submits one inventory row to MAAS and returns the registration
// result. Failures are logged and produce a Result with an empty SystemID;
// they never abort the batch.
func Register(ctx context.Context, client maas.Client, row inventory.Row) Result {
	spec := maas.MachineSpec{
		Hostname:        row.Hostname,
		Architecture:    row.Architecture,
		MACAddresses:    row.MACAddresses,
		PowerType:       row.PowerType,
		PowerParameters: row.PowerParameters(),
	}

	systemID, err := client.CreateMachine(ctx, spec)
	if err != nil {
		log.Printf("[Provision:Register] Error creating %s: %v", row.Hostname, err)
		return Result{Hostname: row.Hostname}
	}

	log.Printf("[Provision:Register] Successfully added %s (system id %s)", row.Hostname, systemID)
	return Result{
		Hostname:     row.Hostname,
		SystemID:     systemID,
		PowerUser:    row.PowerUser,
		PowerPass:    row.PowerPass,
		PowerAddress: row.PowerAddress,
	}
}
