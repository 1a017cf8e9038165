// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface, a Workers aggregate that runs several
// workers side by side, and the Bot API update poller.
package workers

import "context"

// Worker is the interface that must be implemented by any background worker.
//
// Run blocks until ctx is cancelled or the worker has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}
