package engine

import (
	"sync"

	"github.com/sefs-project/sefs/internal/config"
)

// Engine bundles the process-wide shared state the daemon needs:
// "bundle them into a single 'Engine' aggregate passed by reference;
// lock discipline as in §5." PipelineLock is the outermost lock,
// serializing ingest of one file, ingest of a batch, reclustering,
// reconciliation and startup. ReclusterTimerLock is not taken anywhere;
// the Recluster Scheduler guards its timer handle with its own mutex.
type Engine struct {
	Config *config.Global

	Index          *Index
	Ignore         *IgnoreRegistry
	Activity       *ActivityLog
	NameCache      *NameCache
	RateLimit      *RateLimitLatch

	PipelineLock      sync.Mutex
	ReclusterTimerLock sync.Mutex

	startupMu   sync.Mutex
	startupDone bool
}

// New builds an Engine from a loaded configuration.
func New(cfg *config.Global) *Engine {
	return &Engine{
		Config:    cfg,
		Index:     NewIndex(),
		Ignore:    NewIgnoreRegistry(),
		Activity:  NewActivityLog(50),
		NameCache: NewNameCache(cfg.Cluster.NameCacheMax),
		RateLimit: &RateLimitLatch{},
	}
}

// MarkStartupComplete flips the gate the Reconciler waits on so it
// starts applying ghost sweeps and orphan scans.
func (e *Engine) MarkStartupComplete() {
	e.startupMu.Lock()
	defer e.startupMu.Unlock()
	e.startupDone = true
}

// StartupComplete reports whether startup has finished.
func (e *Engine) StartupComplete() bool {
	e.startupMu.Lock()
	defer e.startupMu.Unlock()
	return e.startupDone
}
