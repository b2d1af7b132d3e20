// Package reconcile implements the Reconciler: a periodic disk<->index
// sweep that removes ghost records, injects missed events for orphaned
// files, and is the backstop for any watcher-event loss (network
// filesystems, sleep/wake, watcher bugs).
package reconcile

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/ingest"
	"github.com/sefs-project/sefs/internal/watch"
)

// Reconciler owns the periodic cron schedule that drives ticks. It
// never runs before startup has completed.
type Reconciler struct {
	Root          string
	StagingDir    string
	Prefix        string
	SupportedExts []string

	Engine   *engine.Engine
	Index    *engine.Index
	Activity *engine.ActivityLog
	Pipeline *ingest.Pipeline
	Logger   *slog.Logger

	OnSnapshot        func()
	ScheduleRecluster func()

	cron *cron.Cron
}

// Start schedules a tick every interval via robfig/cron
// (`cron.New(cron.WithSeconds())` + "@every Ns"), and returns
// immediately — the schedule runs in its own goroutine until Stop is
// called.
func (r *Reconciler) Start(intervalSeconds int) error {
	if intervalSeconds <= 0 {
		intervalSeconds = 8
	}
	r.cron = cron.New(cron.WithSeconds())
	spec := "@every " + strconv.Itoa(intervalSeconds) + "s"
	_, err := r.cron.AddFunc(spec, r.Tick)
	if err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the schedule, waiting for any in-flight tick to finish.
func (r *Reconciler) Stop() {
	if r.cron != nil {
		ctx := r.cron.Stop()
		<-ctx.Done()
	}
}

// Tick runs one reconciliation pass under the pipeline lock: ghost
// sweep, then orphan scan, then — if anything changed — an immediate
// snapshot broadcast and a scheduled reclustering.
func (r *Reconciler) Tick() {
	if r.Engine != nil && !r.Engine.StartupComplete() {
		return
	}

	r.Engine.PipelineLock.Lock()
	defer r.Engine.PipelineLock.Unlock()

	changed := r.ghostSweep()
	if r.orphanScan() {
		changed = true
	}

	if changed {
		if r.OnSnapshot != nil {
			r.OnSnapshot()
		}
		if r.ScheduleRecluster != nil {
			r.ScheduleRecluster()
		}
	}
}

// ghostSweep removes any indexed path that no longer exists on disk.
func (r *Reconciler) ghostSweep() bool {
	files, _ := r.Index.Snapshot()
	changed := false
	for _, rec := range files {
		if _, err := os.Stat(rec.Path); err == nil {
			continue
		}
		r.Index.Delete(rec.Path)
		entry := r.Activity.Add("delete", "Removed (missing): "+rec.Name, "🗑️")
		if r.Pipeline != nil && r.Pipeline.OnLog != nil {
			r.Pipeline.OnLog(entry)
		}
		changed = true
	}
	return changed
}

// orphanScan enumerates supported files under root, every managed
// `<PREFIX>*` subtree, and the staging directory, and ingests any not
// already tracked directly through the Ingest Pipeline — bypassing the
// Debouncer.
func (r *Reconciler) orphanScan() bool {
	known := map[string]struct{}{}
	files, _ := r.Index.Snapshot()
	for _, rec := range files {
		known[rec.Path] = struct{}{}
	}

	changed := false
	for _, path := range r.CandidateFiles() {
		norm := engine.NormalizePath(path)
		if _, tracked := known[norm]; tracked {
			continue
		}
		if r.Pipeline.IngestNoSchedule(watch.Created, path) {
			changed = true
			known[norm] = struct{}{}
		}
	}
	return changed
}

// CandidateFiles collects every supported file in root's direct
// children, inside managed `<PREFIX>*` subtrees (recursively), and in
// the staging directory. Exported so the daemon's startup sweep can
// reuse the exact same enumeration the Reconciler uses for its orphan
// scan.
func (r *Reconciler) CandidateFiles() []string {
	exts := make(map[string]struct{}, len(r.SupportedExts))
	for _, e := range r.SupportedExts {
		exts[strings.ToLower(e)] = struct{}{}
	}
	supported := func(name string) bool {
		_, ok := exts[strings.ToLower(filepath.Ext(name))]
		return ok
	}

	var out []string

	entries, err := os.ReadDir(r.Root)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Warn("reconciler failed to read root", "root", r.Root, "error", err)
		}
		return out
	}

	for _, entry := range entries {
		name := entry.Name()
		path := filepath.Join(r.Root, name)

		if !entry.IsDir() {
			if supported(name) {
				out = append(out, path)
			}
			continue
		}
		if strings.HasPrefix(name, r.Prefix) {
			out = append(out, walkSupported(path, supported)...)
		}
	}

	staging := r.StagingDir
	if stagingEntries, err := os.ReadDir(staging); err == nil {
		for _, entry := range stagingEntries {
			if !entry.IsDir() && supported(entry.Name()) {
				out = append(out, filepath.Join(staging, entry.Name()))
			}
		}
	}

	return out
}

func walkSupported(root string, supported func(string) bool) []string {
	var out []string
	filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		if supported(d.Name()) {
			out = append(out, path)
		}
		return nil
	})
	return out
}
