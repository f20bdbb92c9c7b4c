package provision

import (
	"context"
	"log"
	"time"

	"maasbatch/internal/platform/maas"
)

// WaitForStatus polls a machine's status until it equals expected or the
// timeout elapses, and reports whether the status was reached. The interval
// is fixed: no backoff, no jitter. A failed status query counts as Unknown
// and keeps the loop going rather than aborting the wait; MAAS is routinely
// unreachable for a poll or two while machines power-cycle.
func WaitForStatus(ctx context.Context, client maas.Client, systemID, hostname string, expected maas.Status, timeout, interval time.Duration) bool {
	for elapsed := time.Duration(0); elapsed < timeout; elapsed += interval {
		status, err := client.ReadMachine(ctx, systemID)
		if err != nil {
			status = maas.StatusUnknown
		}
		log.Printf("[Provision:Poll] Current status of %s: %s", hostname, status)

		if status == expected {
			return true
		}

		select {
		case <-ctx.Done():
			return false
		case <-time.After(interval):
		}
	}

	log.Printf("[Provision:Poll] Timeout waiting for %s to reach %s", hostname, expected)
	return false
}
