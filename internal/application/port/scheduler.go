package port

import "time"

// CancelFunc cancels a scheduled task. Calling it after the task ran, or
// more than once, is a no-op.
type CancelFunc func()

// Scheduler runs deferred, fire-and-forget tasks.
type Scheduler interface {
	// AfterFunc runs fn once after delay. A zero delay defers fn to the next
	// turn of the host's event loop.
	AfterFunc(delay time.Duration, fn func()) CancelFunc
}
