package engine

import "testing"

func TestNameCache_SetGet(t *testing.T) {
	c := NewNameCache(8)
	c.Set("k1", "Biology Research")

	name, ok := c.Get("k1")
	if !ok || name != "Biology Research" {
		t.Fatalf("expected cached name, got %q, ok=%v", name, ok)
	}
	if _, ok := c.Get("missing"); ok {
		t.Fatal("expected miss for unknown key")
	}
}

func TestNameCache_TrimsOldestQuarterOnOverflow(t *testing.T) {
	c := NewNameCache(8)
	for i := 0; i < 8; i++ {
		c.Set(string(rune('a'+i)), "name")
	}
	// Cache is full; one more insert should evict the oldest 2 (8/4).
	c.Set("i", "name")

	if _, ok := c.Get("a"); ok {
		t.Error("expected oldest entry 'a' to be evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected second-oldest entry 'b' to be evicted")
	}
	if _, ok := c.Get("c"); !ok {
		t.Error("expected entry 'c' to survive the trim")
	}
	if _, ok := c.Get("i"); !ok {
		t.Error("expected newly inserted entry to be present")
	}
}

func TestNameCache_UpdateExistingKeyDoesNotEvict(t *testing.T) {
	c := NewNameCache(2)
	c.Set("a", "one")
	c.Set("a", "two")
	name, ok := c.Get("a")
	if !ok || name != "two" {
		t.Fatalf("expected updated value, got %q", name)
	}
}
