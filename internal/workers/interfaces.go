// Package workers provides abstractions for managing and running
// background workers in the client CLI.
// It defines the Worker interface and a Workers aggregate that runs
// several workers concurrently until their context is cancelled.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run is expected to block until ctx is cancelled or the work is finished.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    <-ctx.Done()
//	}
type Worker interface {
	Run(ctx context.Context)
}
