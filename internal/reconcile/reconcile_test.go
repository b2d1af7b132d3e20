package reconcile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/ingest"
	"github.com/sefs-project/sefs/internal/watch"
)

type fakeEmbedder struct{ calls int }

func (f *fakeEmbedder) EmbedText(text string) ([]float32, error) {
	f.calls++
	return []float32{1, 2, 3}, nil
}

func newTestReconciler(t *testing.T, root string) (*Reconciler, *ingest.Pipeline) {
	t.Helper()
	staging := filepath.Join(root, ".staging")
	if err := os.MkdirAll(staging, 0755); err != nil {
		t.Fatal(err)
	}

	eng := &engine.Engine{
		Index:    engine.NewIndex(),
		Ignore:   engine.NewIgnoreRegistry(),
		Activity: engine.NewActivityLog(50),
	}
	eng.MarkStartupComplete()

	p := ingest.New(eng.Index, eng.Ignore, eng.Activity, &fakeEmbedder{}, nil)

	r := &Reconciler{
		Root:          root,
		StagingDir:    staging,
		Prefix:        "SEFS_",
		SupportedExts: []string{".txt"},
		Engine:        eng,
		Index:         eng.Index,
		Activity:      eng.Activity,
		Pipeline:      p,
	}
	return r, p
}

func TestReconciler_GatedUntilStartupComplete(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)
	r.Engine = &engine.Engine{Index: r.Index, Ignore: engine.NewIgnoreRegistry(), Activity: r.Activity} // startupDone defaults false

	ran := false
	r.OnSnapshot = func() { ran = true }
	r.Tick()

	if ran {
		t.Error("expected Tick to no-op before startup completion")
	}
}

func TestReconciler_GhostSweepRemovesMissingFile(t *testing.T) {
	root := t.TempDir()
	r, p := newTestReconciler(t, root)

	path := filepath.Join(root, "doc.txt")
	os.WriteFile(path, []byte("some real content here"), 0644)
	p.IngestNoSchedule(watch.Created, path)

	os.Remove(path)

	changed := r.ghostSweep()
	if !changed {
		t.Fatal("expected ghost sweep to report a change")
	}
	if _, ok := r.Index.Get(engine.NormalizePath(path)); ok {
		t.Error("expected missing file's record to be removed")
	}
}

func TestReconciler_OrphanScanIngestsUntracked(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)

	path := filepath.Join(root, "orphan.txt")
	os.WriteFile(path, []byte("some real content here that nobody has seen"), 0644)

	changed := r.orphanScan()
	if !changed {
		t.Fatal("expected orphan scan to report a change")
	}
	if _, ok := r.Index.Get(engine.NormalizePath(path)); !ok {
		t.Error("expected orphan file to be indexed")
	}
}

func TestReconciler_OrphanScanFindsStagingFiles(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)

	path := filepath.Join(r.StagingDir, "uploaded.txt")
	os.WriteFile(path, []byte("some real content here from an upload"), 0644)

	changed := r.orphanScan()
	if !changed {
		t.Fatal("expected orphan scan to pick up staged upload")
	}
	if _, ok := r.Index.Get(engine.NormalizePath(path)); !ok {
		t.Error("expected staged file to be indexed")
	}
}

func TestReconciler_OrphanScanRecursesManagedFolders(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)

	managed := filepath.Join(root, "SEFS_Invoices")
	os.MkdirAll(managed, 0755)
	path := filepath.Join(managed, "invoice.txt")
	os.WriteFile(path, []byte("some real invoice content here"), 0644)

	changed := r.orphanScan()
	if !changed {
		t.Fatal("expected orphan scan to recurse into managed folders")
	}
	if _, ok := r.Index.Get(engine.NormalizePath(path)); !ok {
		t.Error("expected file inside managed folder to be indexed")
	}
}

func TestReconciler_OrphanScanIgnoresNonManagedSubfolder(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)

	other := filepath.Join(root, "MyOwnFolder")
	os.MkdirAll(other, 0755)
	path := filepath.Join(other, "private.txt")
	os.WriteFile(path, []byte("some private content here"), 0644)

	r.orphanScan()
	if _, ok := r.Index.Get(engine.NormalizePath(path)); ok {
		t.Error("expected non-managed subfolder to be left untouched")
	}
}

func TestReconciler_TickSchedulesReclusterOnlyWhenChanged(t *testing.T) {
	root := t.TempDir()
	r, _ := newTestReconciler(t, root)

	scheduled := 0
	r.ScheduleRecluster = func() { scheduled++ }
	r.Tick()
	if scheduled != 0 {
		t.Errorf("expected no reclustering scheduled when nothing changed, got %d", scheduled)
	}

	path := filepath.Join(root, "fresh.txt")
	os.WriteFile(path, []byte("brand new content nobody tracked yet"), 0644)
	r.Tick()
	if scheduled != 1 {
		t.Errorf("expected exactly one reclustering scheduled after a change, got %d", scheduled)
	}
}
