// Package ingest implements the Ingest Pipeline: for one (kind, path)
// event, it classifies the event, extracts text, computes an embedding,
// and updates the Index. It never moves files or triggers a
// reclustering itself — it only schedules one.
package ingest

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/extractor"
	"github.com/sefs-project/sefs/internal/watch"
)

// Embedder is the subset of *embedder.Embedder the pipeline needs,
// narrowed to an interface so tests can substitute a fake.
type Embedder interface {
	EmbedText(text string) ([]float32, error)
}

// Pipeline wires the Index, Ignore Registry and activity log together
// with text extraction and embedding. Callers (the watch dispatcher,
// the Reconciler, startup) are responsible for holding
// Engine.PipelineLock around every call.
type Pipeline struct {
	Index    *engine.Index
	Ignore   *engine.IgnoreRegistry
	Activity *engine.ActivityLog
	Embedder Embedder
	Logger   *slog.Logger

	// OnLog is called with every new activity entry, for the
	// Broadcaster's log-delta push.
	OnLog func(engine.ActivityEntry)
	// OnSnapshot is called to push an immediate snapshot broadcast —
	// used only for the deletion branch, which must be visible
	// without waiting for a reclustering.
	OnSnapshot func()
	// ScheduleRecluster is called unconditionally by Ingest (not by
	// IngestNoSchedule) after every invocation.
	ScheduleRecluster func()
}

// New builds a Pipeline from its collaborators.
func New(idx *engine.Index, ignore *engine.IgnoreRegistry, activity *engine.ActivityLog, emb Embedder, logger *slog.Logger) *Pipeline {
	return &Pipeline{Index: idx, Ignore: ignore, Activity: activity, Embedder: emb, Logger: logger}
}

// Ingest processes one event from the debounced watch stream and always
// schedules a reclustering afterward, regardless of outcome.
func (p *Pipeline) Ingest(kind watch.Kind, path string) {
	p.IngestNoSchedule(kind, path)
	if p.ScheduleRecluster != nil {
		p.ScheduleRecluster()
	}
}

// IngestNoSchedule runs the same algorithm without scheduling a
// reclustering — used by startup's existing-file sweep and the
// Reconciler's orphan scan, both of which schedule (or force) a
// reclustering themselves once per batch rather than once per file.
// Returns true if the Index was mutated.
func (p *Pipeline) IngestNoSchedule(kind watch.Kind, path string) bool {
	norm := engine.NormalizePath(path)
	if p.Ignore.IsIgnored(norm) {
		return false
	}

	switch kind {
	case watch.Deleted:
		return p.handleDeleted(path, norm)
	case watch.Created, watch.Modified:
		return p.handleCreatedOrModified(kind, path, norm)
	default:
		return false
	}
}

func (p *Pipeline) log(kind, message, icon string) {
	entry := p.Activity.Add(kind, message, icon)
	if p.OnLog != nil {
		p.OnLog(entry)
	}
}

// handleDeleted tries an exact/normalized lookup first, then falls
// back to a basename match against any record whose stored path no
// longer exists on disk (handles stale paths some OSes report).
func (p *Pipeline) handleDeleted(path, norm string) bool {
	name := filepath.Base(path)

	if _, ok := p.Index.Get(norm); ok {
		p.Index.Delete(norm)
		p.log("delete", "Removed: "+name, "🗑️")
		if p.OnSnapshot != nil {
			p.OnSnapshot()
		}
		return true
	}

	if rec, ok := p.Index.FindByBasename(name, fileExists); ok {
		p.Index.Delete(rec.Path)
		p.log("delete", "Removed: "+rec.Name, "🗑️")
		if p.OnSnapshot != nil {
			p.OnSnapshot()
		}
		return true
	}

	return false
}

// handleCreatedOrModified runs move detection first, then the
// redundant-modified drop, then extraction and embedding for a
// genuinely new/changed file.
func (p *Pipeline) handleCreatedOrModified(kind watch.Kind, path, norm string) bool {
	name := filepath.Base(path)

	if rec, ok := p.Index.FindByBasename(name, fileExists); ok && rec.Path != norm && fileExists(path) {
		p.Index.Rename(rec.Path, norm)
		p.log("move", "Moved: "+name, "📁")
		return true
	}

	if kind == watch.Modified {
		if _, ok := p.Index.Get(norm); ok {
			return false
		}
	}

	if !fileExists(path) {
		return false
	}

	p.log("detect", "Processing: "+name, "👁️")

	text := extractor.Extract(path)
	if strings.TrimSpace(text) == "" {
		p.log("warning", "No text in "+name+", skipping", "⚠️")
		return false
	}

	wordCount := len(strings.Fields(text))
	p.log("extract", "Extracted "+strconv.Itoa(wordCount)+" words from "+name, "📄")

	embedding, err := p.Embedder.EmbedText(text)
	if err != nil {
		p.log("warning", "Embedding failed for "+name, "⚠️")
		if p.Logger != nil {
			p.Logger.Warn("embedding failed", "path", path, "error", err)
		}
		return false
	}
	p.log("embed", "Embedded: "+name, "🧠")

	p.Index.Put(&engine.FileRecord{
		Path:      norm,
		Name:      name,
		Text:      text,
		Embedding: embedding,
		Snippet:   extractor.Snippet(text, 200),
		WordCount: wordCount,
		ClusterID: -1,
		Position:  [3]float64{0, 0, 0},
	})
	return true
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
