// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers in a unified way.
package workers

import (
	"context"
	"time"
)

// Worker is the interface that must be implemented by any background worker.
//
// Run must not block: long-running work belongs in a goroutine owned by the
// worker. Stop blocks until that goroutine has exited.
type Worker interface {
	Run()
	Stop()
}

// Job is a periodic task that can be started and stopped, such as the
// client's sync job.
type Job interface {
	Start(ctx context.Context, interval time.Duration)
	Stop()
}
