package provision

import (
	"context"
	"log"
	"time"

	"maasbatch/internal/inventory"
	"maasbatch/internal/platform/maas"
	"maasbatch/internal/util/async"
)

// Orchestrator fans the two provisioning phases out over the inventory.
// Phase 1 registers every row; phase 2 configures and deploys every machine
// that registered. Phase 2 never starts until every phase-1 task has
// finished, failures included.
type Orchestrator struct {
	Client maas.Client

	// Workers bounds the concurrency of each phase independently.
	Workers int

	CloudInitPath string
	StatusTimeout time.Duration
	PollInterval  time.Duration
}

// Run executes both phases and returns the aggregated outcomes.
// Per-machine failures are logged by the tasks themselves and never abort
// the batch.
func (o *Orchestrator) Run(ctx context.Context, rows []inventory.Row) Summary {
	summary := Summary{Total: len(rows)}
	if len(rows) == 0 {
		return summary
	}

	log.Printf("[Batch] Registering %d machines (%d workers)", len(rows), o.Workers)

	// Phase 1: registration. Tasks record their result positionally, so
	// no locking is needed and result order matches the inventory.
	results := make([]Result, len(rows))
	tasks := make([]async.Task, len(rows))
	for i, row := range rows {
		i, row := i, row
		tasks[i] = async.Task{
			Name: row.Hostname,
			Func: func(ctx context.Context) error {
				results[i] = Register(ctx, o.Client, row)
				return nil
			},
		}
	}
	// Registration tasks report failures through their Result, never as
	// an error, so the pool drains fully before phase 2.
	_ = async.RunBounded(ctx, o.Workers, tasks)

	for _, res := range results {
		if res.Registered() {
			summary.Registered++
		}
	}

	log.Printf("[Batch] Registration finished: %d of %d machines registered", summary.Registered, summary.Total)
	log.Printf("[Batch] Deploying %d machines (%d workers)", summary.Registered, o.Workers)

	// Phase 2: configure and deploy.
	seq := &Sequencer{
		Client:        o.Client,
		CloudInitPath: o.CloudInitPath,
		StatusTimeout: o.StatusTimeout,
		PollInterval:  o.PollInterval,
	}

	outcomes := make([]Outcome, len(results))
	tasks = make([]async.Task, len(results))
	for i, res := range results {
		i, res := i, res
		tasks[i] = async.Task{
			Name: res.Hostname,
			Func: func(ctx context.Context) error {
				outcomes[i] = seq.ConfigureAndDeploy(ctx, res)
				return nil
			},
		}
	}
	_ = async.RunBounded(ctx, o.Workers, tasks)

	for _, outcome := range outcomes {
		switch outcome {
		case OutcomeDeployed:
			summary.Deployed++
		case OutcomeNotReady:
			summary.NotReady++
		case OutcomeDeployTimeout:
			summary.DeployTimeouts++
		case OutcomeSkipped:
			// Already counted as a registration failure.
		}
	}

	return summary
}
