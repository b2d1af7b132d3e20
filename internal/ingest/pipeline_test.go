package ingest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/watch"
)

type fakeEmbedder struct {
	calls int
}

func (f *fakeEmbedder) EmbedText(text string) ([]float32, error) {
	f.calls++
	return []float32{1, 2, 3}, nil
}

func newTestPipeline() (*Pipeline, *fakeEmbedder) {
	emb := &fakeEmbedder{}
	p := New(engine.NewIndex(), engine.NewIgnoreRegistry(), engine.NewActivityLog(50), emb, nil)
	return p, emb
}

func TestIngest_CreatedIndexesNewFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello world, this is a real document"), 0644); err != nil {
		t.Fatal(err)
	}

	p, emb := newTestPipeline()
	changed := p.IngestNoSchedule(watch.Created, path)

	if !changed {
		t.Fatal("expected IngestNoSchedule to report a change")
	}
	if emb.calls != 1 {
		t.Errorf("expected embedder to be called once, got %d", emb.calls)
	}
	rec, ok := p.Index.Get(engine.NormalizePath(path))
	if !ok {
		t.Fatal("expected file to be indexed")
	}
	if rec.ClusterID != -1 {
		t.Errorf("expected new record to be unassigned, got cluster %d", rec.ClusterID)
	}
}

func TestIngest_EmptyTextIsDropped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.txt")
	if err := os.WriteFile(path, []byte("   \n\t  "), 0644); err != nil {
		t.Fatal(err)
	}

	p, emb := newTestPipeline()
	changed := p.IngestNoSchedule(watch.Created, path)

	if changed {
		t.Error("expected whitespace-only file to be dropped")
	}
	if emb.calls != 0 {
		t.Error("expected embedder not to be called for empty text")
	}
}

func TestIngest_ModifiedOnAlreadyIndexedPathIsRedundant(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	os.WriteFile(path, []byte("some real content here"), 0644)

	p, emb := newTestPipeline()
	p.IngestNoSchedule(watch.Created, path)
	if emb.calls != 1 {
		t.Fatalf("setup: expected one embed call, got %d", emb.calls)
	}

	changed := p.IngestNoSchedule(watch.Modified, path)
	if changed {
		t.Error("expected redundant modified event to be dropped")
	}
	if emb.calls != 1 {
		t.Errorf("expected no re-embed on redundant modified, got %d calls", emb.calls)
	}
}

func TestIngest_DeletedRemovesRecordAndBroadcastsImmediately(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	os.WriteFile(path, []byte("some real content here"), 0644)

	p, _ := newTestPipeline()
	p.IngestNoSchedule(watch.Created, path)

	snapshotCalls := 0
	p.OnSnapshot = func() { snapshotCalls++ }

	os.Remove(path)
	changed := p.IngestNoSchedule(watch.Deleted, path)

	if !changed {
		t.Fatal("expected deletion to report a change")
	}
	if snapshotCalls != 1 {
		t.Errorf("expected exactly one immediate snapshot broadcast, got %d", snapshotCalls)
	}
	if _, ok := p.Index.Get(engine.NormalizePath(path)); ok {
		t.Error("expected record to be removed from the index")
	}
}

func TestIngest_MoveDetectionRewritesPathKey(t *testing.T) {
	dir := t.TempDir()
	oldPath := filepath.Join(dir, "old.txt")
	newPath := filepath.Join(dir, "sub", "old.txt")
	os.MkdirAll(filepath.Join(dir, "sub"), 0755)
	os.WriteFile(oldPath, []byte("some real content here"), 0644)

	p, emb := newTestPipeline()
	p.IngestNoSchedule(watch.Created, oldPath)

	os.Rename(oldPath, newPath)
	changed := p.IngestNoSchedule(watch.Created, newPath)

	if !changed {
		t.Fatal("expected move detection to report a change")
	}
	if emb.calls != 1 {
		t.Errorf("expected move to avoid re-embedding, got %d calls", emb.calls)
	}
	if _, ok := p.Index.Get(engine.NormalizePath(newPath)); !ok {
		t.Error("expected record to exist under the new path")
	}
	if _, ok := p.Index.Get(engine.NormalizePath(oldPath)); ok {
		t.Error("expected old path to no longer be indexed")
	}
}

func TestIngest_IgnoredPathIsSkipped(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	os.WriteFile(path, []byte("some real content here"), 0644)

	p, emb := newTestPipeline()
	p.Ignore.Mark(engine.NormalizePath(path), time.Minute)

	changed := p.IngestNoSchedule(watch.Created, path)
	if changed {
		t.Error("expected ignored path to produce no change")
	}
	if emb.calls != 0 {
		t.Error("expected embedder not to be called for an ignored path")
	}
}

func TestIngest_Ingest_AlwaysSchedulesRecluster(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	os.WriteFile(path, []byte("   "), 0644)

	p, _ := newTestPipeline()
	scheduled := 0
	p.ScheduleRecluster = func() { scheduled++ }

	p.Ingest(watch.Created, path)

	if scheduled != 1 {
		t.Errorf("expected Ingest to schedule a reclustering even on a dropped file, got %d", scheduled)
	}
}
