// Package scheduler implements the Recluster Scheduler:
// a single resettable timer that fires one global reclustering after a
// quiet period, plus a Force entry point that bypasses the timer for
// batched uploads.
package scheduler

import (
	"sync"
	"time"
)

// Scheduler batches many Ingest invocations into one reclustering call.
// Every Schedule() call cancels any pending timer and starts a new one;
// Force() bypasses the timer entirely. Callers are responsible for
// ensuring only one reclustering body executes at a time by holding the
// pipeline lock for the duration — Scheduler itself only guards its own
// timer handle.
type Scheduler struct {
	mu       sync.Mutex
	interval time.Duration
	timer    *time.Timer
	run      func()
}

// New returns a Scheduler that calls run after interval of quiet.
func New(interval time.Duration, run func()) *Scheduler {
	return &Scheduler{interval: interval, run: run}
}

// Schedule cancels any pending timer and starts a new one for
// interval. Called on every Ingest Pipeline invocation.
func (s *Scheduler) Schedule() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, s.run)
}

// Force bypasses the timer and runs immediately, used for batched
// uploads that shouldn't wait an extra debounce period.
func (s *Scheduler) Force() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()
	s.run()
}

// Stop cancels any pending timer without running it, used during
// shutdown.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
