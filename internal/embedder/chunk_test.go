package embedder

import (
	"strings"
	"testing"
)

func TestSplitIntoChunks_ShortTextSingleChunk(t *testing.T) {
	chunks := splitIntoChunks(strings.Repeat("word ", 60))
	if len(chunks) != 1 {
		t.Fatalf("expected a single chunk for text under chunkSize, got %d", len(chunks))
	}
}

func TestSplitIntoChunks_SplitsOnSentenceBoundaries(t *testing.T) {
	sentence := strings.Repeat("alpha beta gamma delta. ", 40)
	chunks := splitIntoChunks(sentence)
	if len(chunks) < 2 {
		t.Fatalf("expected multiple chunks for long text, got %d", len(chunks))
	}
	for _, c := range chunks {
		if len(c) > chunkSize+50 {
			t.Errorf("chunk exceeds expected bound: %d chars", len(c))
		}
	}
}

func TestSplitIntoChunks_CapsAtMaxChunks(t *testing.T) {
	sentence := strings.Repeat("one two three four five six seven eight. ", 200)
	chunks := splitIntoChunks(sentence)
	if len(chunks) > maxChunks {
		t.Errorf("got %d chunks, want <= %d", len(chunks), maxChunks)
	}
}

func TestSplitIntoChunks_DropsTinyChunks(t *testing.T) {
	chunks := splitIntoChunks("hi. ok. no.")
	for _, c := range chunks {
		if len(c) <= 20 {
			t.Errorf("expected tiny chunks to be filtered, got %q", c)
		}
	}
}
