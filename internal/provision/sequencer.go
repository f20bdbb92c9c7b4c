package provision

import (
	"context"
	"log"
	"os"
	"time"

	"maasbatch/internal/platform/maas"
)

// Sequencer runs the per-machine configure-and-deploy sequence: wait for
// Ready, optionally push cloud-init user-data, trigger deployment, wait for
// Deployed. Every step past the Ready wait is best-effort: failures are
// logged and the sequence continues.
type Sequencer struct {
	Client maas.Client

	// CloudInitPath is the cloud-init file pushed as user-data before
	// deployment. Empty means no configuration step.
	CloudInitPath string

	StatusTimeout time.Duration
	PollInterval  time.Duration
}

// ConfigureAndDeploy drives one machine to its terminal state.
func (s *Sequencer) ConfigureAndDeploy(ctx context.Context, res Result) Outcome {
	if !res.Registered() {
		log.Printf("[Provision:Deploy] Skipping %s due to missing system id", res.Hostname)
		return OutcomeSkipped
	}

	if !WaitForStatus(ctx, s.Client, res.SystemID, res.Hostname, maas.StatusReady, s.StatusTimeout, s.PollInterval) {
		log.Printf("[Provision:Deploy] Skipping deployment for %s as it did not reach %s state", res.Hostname, maas.StatusReady)
		return OutcomeNotReady
	}

	if s.CloudInitPath != "" {
		s.applyCloudInit(ctx, res)
	}

	if err := s.Client.DeployMachine(ctx, res.SystemID); err != nil {
		log.Printf("[Provision:Deploy] Failed to deploy %s: %v", res.Hostname, err)
	} else {
		log.Printf("[Provision:Deploy] Deployed %s", res.Hostname)
	}

	if WaitForStatus(ctx, s.Client, res.SystemID, res.Hostname, maas.StatusDeployed, s.StatusTimeout, s.PollInterval) {
		log.Printf("[Provision:Deploy] %s has been successfully deployed", res.Hostname)
		return OutcomeDeployed
	}

	log.Printf("[Provision:Deploy] %s did not reach %s state", res.Hostname, maas.StatusDeployed)
	return OutcomeDeployTimeout
}

// applyCloudInit reads the cloud-init file and pushes it as the machine's
// user-data. A failure here does not block deployment.
func (s *Sequencer) applyCloudInit(ctx context.Context, res Result) {
	// #nosec G304 - path is an operator-supplied CLI argument
	data, err := os.ReadFile(s.CloudInitPath)
	if err != nil {
		log.Printf("[Provision:Deploy] Failed to apply cloud-init for %s: %v", res.Hostname, err)
		return
	}

	if err := s.Client.UpdateMachine(ctx, res.SystemID, string(data)); err != nil {
		log.Printf("[Provision:Deploy] Failed to apply cloud-init for %s: %v", res.Hostname, err)
		return
	}

	log.Printf("[Provision:Deploy] Applied cloud-init to %s", res.Hostname)
}
