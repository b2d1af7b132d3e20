package api

import (
	"reflect"
	"testing"

	"github.com/sefs-project/sefs/internal/engine"
)

func TestExtractKeywords_DropsStopwordsAndRanksByFrequency(t *testing.T) {
	text := "the quick brown fox jumps over the lazy dog the fox runs fox fox"
	got := ExtractKeywords(text, 3)
	want := []string{"fox", "quick", "brown"}
	// "the" is a stopword and must never appear.
	for _, w := range got {
		if w == "the" {
			t.Fatalf("expected stopwords to be excluded, got %v", got)
		}
	}
	if len(got) == 0 || got[0] != "fox" {
		t.Errorf("expected most frequent non-stopword first, got %v (want top like %v)", got, want)
	}
}

func TestExtractKeywords_DefaultTopNIsFive(t *testing.T) {
	text := "alpha beta gamma delta epsilon zeta eta theta"
	got := ExtractKeywords(text, 0)
	if len(got) != 5 {
		t.Errorf("expected default top-5, got %d: %v", len(got), got)
	}
}

func TestBuildSnapshot_RendersFilesAndClusters(t *testing.T) {
	idx := engine.NewIndex()
	idx.Put(&engine.FileRecord{
		Path: "/root/a.txt", Name: "a.txt", Text: "invoice payment receipt invoice",
		Snippet: "invoice...", WordCount: 4, ClusterID: 1, Position: [3]float64{1, 2, 3},
	})
	idx.ReplaceClusters(map[int]*engine.Cluster{
		1: {ID: 1, Name: "Finance", Color: "#FFB3BA", FileCount: 1},
	})

	snap := BuildSnapshot(idx)
	if snap.Type != "graph_update" {
		t.Fatalf("expected type graph_update, got %q", snap.Type)
	}
	if len(snap.Files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(snap.Files))
	}
	f := snap.Files[0]
	if f.ClusterName != "Finance" || f.Color != "#FFB3BA" {
		t.Errorf("expected file to carry its cluster's name/color, got %+v", f)
	}
	if !reflect.DeepEqual(f.Position, [3]float64{1, 2, 3}) {
		t.Errorf("expected position to round-trip, got %v", f.Position)
	}
	if len(snap.Clusters) != 1 || snap.Clusters[0].Name != "Finance" {
		t.Errorf("expected 1 cluster entry named Finance, got %+v", snap.Clusters)
	}
}

func TestBuildSnapshot_UnassignedFileGetsUnknownCluster(t *testing.T) {
	idx := engine.NewIndex()
	idx.Put(&engine.FileRecord{Path: "/root/b.txt", Name: "b.txt", ClusterID: -1})

	snap := BuildSnapshot(idx)
	if snap.Files[0].ClusterName != "Unknown" || snap.Files[0].Color != "#888888" {
		t.Errorf("expected unassigned file to default to Unknown/#888888, got %+v", snap.Files[0])
	}
}

func TestBuildLogEntry_RendersExpectedShape(t *testing.T) {
	entry := engine.ActivityEntry{Kind: "delete", Message: "Removed: a.txt", Icon: "🗑️"}
	got := BuildLogEntry(entry)
	if got.Type != "activity_log_entry" || got.Kind != "delete" || got.Message != "Removed: a.txt" {
		t.Errorf("unexpected log entry shape: %+v", got)
	}
}
