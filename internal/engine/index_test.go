package engine

import "testing"

func TestIndex_PutGetDelete(t *testing.T) {
	idx := NewIndex()
	rec := &FileRecord{Path: "/root/a.txt", Name: "a.txt", ClusterID: -1}
	idx.Put(rec)

	got, ok := idx.Get("/root/a.txt")
	if !ok || got.Name != "a.txt" {
		t.Fatalf("expected to find record, got %+v, ok=%v", got, ok)
	}

	idx.Delete("/root/a.txt")
	if _, ok := idx.Get("/root/a.txt"); ok {
		t.Fatal("expected record to be gone after Delete")
	}
}

func TestIndex_Rename(t *testing.T) {
	idx := NewIndex()
	idx.Put(&FileRecord{Path: "/root/old.txt", Name: "old.txt", ClusterID: -1})

	if !idx.Rename("/root/old.txt", "/root/new.txt") {
		t.Fatal("expected Rename to succeed")
	}
	if _, ok := idx.Get("/root/old.txt"); ok {
		t.Fatal("old path should no longer resolve")
	}
	rec, ok := idx.Get("/root/new.txt")
	if !ok {
		t.Fatal("new path should resolve")
	}
	if rec.Name != "new.txt" {
		t.Errorf("expected renamed record's Name to update, got %s", rec.Name)
	}
}

func TestIndex_FindByBasename(t *testing.T) {
	idx := NewIndex()
	idx.Put(&FileRecord{Path: "/root/moved.txt", Name: "moved.txt", ClusterID: -1})

	exists := func(p string) bool { return p != "/root/moved.txt" }
	rec, ok := idx.FindByBasename("moved.txt", exists)
	if !ok {
		t.Fatal("expected to find record by basename")
	}
	if rec.Path != "/root/moved.txt" {
		t.Errorf("unexpected record: %+v", rec)
	}

	existsAll := func(p string) bool { return true }
	if _, ok := idx.FindByBasename("moved.txt", existsAll); ok {
		t.Fatal("should not match when the stored path still exists on disk")
	}
}

func TestIndex_SnapshotOrdering(t *testing.T) {
	idx := NewIndex()
	idx.Put(&FileRecord{Path: "/root/b.txt", Name: "b.txt", ClusterID: -1})
	idx.Put(&FileRecord{Path: "/root/a.txt", Name: "a.txt", ClusterID: -1})

	files, _ := idx.Snapshot()
	if len(files) != 2 || files[0].Path != "/root/a.txt" || files[1].Path != "/root/b.txt" {
		t.Fatalf("expected deterministic path-sorted snapshot, got %+v", files)
	}
}

func TestIndex_ReplaceClusters(t *testing.T) {
	idx := NewIndex()
	idx.ReplaceClusters(map[int]*Cluster{
		0: {ID: 0, Name: "Biology Research", Color: "#fff", FileCount: 2},
	})
	_, clusters := idx.Snapshot()
	if len(clusters) != 1 || clusters[0].Name != "Biology Research" {
		t.Fatalf("unexpected clusters: %+v", clusters)
	}
}
