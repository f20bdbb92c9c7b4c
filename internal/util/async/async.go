// Package async provides utilities for parallel task execution.
//
// This package contains a generic helper for running multiple operations
// concurrently under a fixed concurrency limit. It's used for the two
// provisioning phases, which each fan out over the whole inventory with a
// bounded worker pool.
package async

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task represents an asynchronous operation with a name and function.
type Task struct {
	Name string
	Func func(context.Context) error
}

// RunBounded executes tasks with at most limit running concurrently and
// waits for all of them to finish. A failing task never stops its siblings;
// the first error (wrapped with the task name) is returned after the pool
// drains. A limit < 1 means no limit.
func RunBounded(ctx context.Context, limit int, tasks []Task) error {
	if len(tasks) == 0 {
		return nil
	}

	// Deliberately not errgroup.WithContext: one task failing must not
	// cancel the context the other tasks are running under.
	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}

	for _, task := range tasks {
		task := task
		g.Go(func() error {
			if err := task.Func(ctx); err != nil {
				return fmt.Errorf("%s: %w", task.Name, err)
			}
			return nil
		})
	}

	return g.Wait()
}
