package watch

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of events on the same path into one
// delayed delivery. Each incoming event restarts a timer
// of duration T_debounce; when it fires, the latest event kind for that
// path is delivered downstream and the pending entry removed. A
// `deleted` arriving after `created`/`modified` naturally supersedes
// them, since "latest kind wins" already covers that case.
type Debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	pending  map[string]*time.Timer
	deliver  func(Event)
}

// NewDebouncer returns a Debouncer that calls deliver with the latest
// event for a path once interval has elapsed with no further events on
// that path.
func NewDebouncer(interval time.Duration, deliver func(Event)) *Debouncer {
	return &Debouncer{
		interval: interval,
		pending:  make(map[string]*time.Timer),
		deliver:  deliver,
	}
}

// Push registers an incoming event, restarting the path's timer.
func (d *Debouncer) Push(ev Event) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if t, exists := d.pending[ev.Path]; exists {
		t.Stop()
	}
	d.pending[ev.Path] = time.AfterFunc(d.interval, func() {
		d.mu.Lock()
		delete(d.pending, ev.Path)
		d.mu.Unlock()
		d.deliver(ev)
	})
}

// Stop cancels every pending timer, preventing goroutine leaks on
// shutdown.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.pending {
		t.Stop()
		delete(d.pending, path)
	}
}
