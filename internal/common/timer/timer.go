// Package timer provides cancellable delayed callbacks. Every timed phase of
// a session owns exactly one Handle, and the transition that ends the phase
// stops it before scheduling the next, so a stale callback can never fire
// against state that has already moved on.
package timer

import "time"

// Handle is a scheduled callback that can be stopped before it fires
type Handle interface {
	// Stop cancels the callback. It reports false when the callback has
	// already fired or was already stopped.
	Stop() bool
}

// Scheduler schedules delayed callbacks
type Scheduler interface {
	// Schedule runs fn after d on its own goroutine
	Schedule(d time.Duration, fn func()) Handle
}

// DefaultScheduler implements Scheduler with the runtime timer
type DefaultScheduler struct{}

// New creates a new DefaultScheduler
func New() *DefaultScheduler {
	return &DefaultScheduler{}
}

// Schedule runs fn after d
func (s *DefaultScheduler) Schedule(d time.Duration, fn func()) Handle {
	return &timerHandle{timer: time.AfterFunc(d, fn)}
}

type timerHandle struct {
	timer *time.Timer
}

func (h *timerHandle) Stop() bool {
	return h.timer.Stop()
}
