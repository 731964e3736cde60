// Package workers runs the concurrent parts of the client: long-lived
// background workers such as the metrics listener, and bounded batches of
// independent ProcessData calls.
package workers

import "context"

// Worker is a long-lived background task. Run blocks until ctx is done or
// the worker fails, and returns nil on a clean stop.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) error {
//	    <-ctx.Done()
//	    return nil
//	}
type Worker interface {
	Run(ctx context.Context) error
}

// WorkerFunc adapts a function to [Worker].
type WorkerFunc func(ctx context.Context) error

// Run calls f(ctx).
func (f WorkerFunc) Run(ctx context.Context) error {
	return f(ctx)
}
