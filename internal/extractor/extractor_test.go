package extractor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestExtract_TXT(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.txt")
	if err := os.WriteFile(path, []byte("hello world\nsecond line"), 0644); err != nil {
		t.Fatal(err)
	}

	text := Extract(path)
	if !strings.Contains(text, "hello world") {
		t.Errorf("Extract() = %q, want it to contain %q", text, "hello world")
	}
}

func TestExtract_UnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "note.docx")
	if err := os.WriteFile(path, []byte("anything"), 0644); err != nil {
		t.Fatal(err)
	}

	if got := Extract(path); got != "" {
		t.Errorf("Extract() = %q, want empty for unsupported extension", got)
	}
}

func TestExtract_MissingFile(t *testing.T) {
	if got := Extract("/nonexistent/path/file.txt"); got != "" {
		t.Errorf("Extract() = %q, want empty for missing file", got)
	}
}

func TestSnippet_ShortTextUnchanged(t *testing.T) {
	if got := Snippet("short text", 200); got != "short text" {
		t.Errorf("Snippet() = %q, want unchanged short text", got)
	}
}

func TestSnippet_TruncatesOnWordBoundary(t *testing.T) {
	text := strings.Repeat("word ", 100)
	got := Snippet(text, 20)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Snippet() = %q, want it to end with ...", got)
	}
	if len(got) > 24 {
		t.Errorf("Snippet() length = %d, want roughly <= 20+3", len(got))
	}
}

func TestSnippet_DefaultLength(t *testing.T) {
	text := strings.Repeat("a", 300)
	got := Snippet(text, 0)
	if !strings.HasSuffix(got, "...") {
		t.Errorf("Snippet() with default length should truncate long text")
	}
}
