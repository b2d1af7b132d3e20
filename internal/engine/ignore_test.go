package engine

import (
	"testing"
	"time"
)

func TestIgnoreRegistry_MarkAndCheck(t *testing.T) {
	r := NewIgnoreRegistry()
	r.Mark("/root/a.txt", 50*time.Millisecond)

	if !r.IsIgnored("/root/a.txt") {
		t.Fatal("expected path to be ignored immediately after marking")
	}
	if r.IsIgnored("/root/b.txt") {
		t.Fatal("unmarked path should not be ignored")
	}
}

func TestIgnoreRegistry_ExpiresAfterTTL(t *testing.T) {
	r := NewIgnoreRegistry()
	r.Mark("/root/a.txt", 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)
	if r.IsIgnored("/root/a.txt") {
		t.Fatal("expected entry to expire after its TTL")
	}
}
