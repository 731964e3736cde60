package workers

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Workers runs a set of background workers together.
type Workers struct {
	workers []Worker
}

// NewWorkers groups ws. Nil workers are skipped.
func NewWorkers(ws ...Worker) *Workers {
	w := &Workers{}
	for _, worker := range ws {
		w.Add(worker)
	}
	return w
}

// Add appends worker to the set.
func (w *Workers) Add(worker Worker) {
	if worker != nil {
		w.workers = append(w.workers, worker)
	}
}

// Len returns the number of workers in the set.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker and blocks until all have returned. The first
// failure cancels the others and is returned.
func (w *Workers) Run(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, worker := range w.workers {
		g.Go(func() error {
			return worker.Run(gctx)
		})
	}
	return g.Wait()
}
