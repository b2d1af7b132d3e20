package watch

import (
	"sync"
	"testing"
	"time"
)

func TestDebouncer_CollapsesBurstToLatestKind(t *testing.T) {
	var mu sync.Mutex
	var delivered []Event

	d := NewDebouncer(20*time.Millisecond, func(ev Event) {
		mu.Lock()
		delivered = append(delivered, ev)
		mu.Unlock()
	})

	d.Push(Event{Kind: Created, Path: "/root/a.txt"})
	d.Push(Event{Kind: Modified, Path: "/root/a.txt"})
	d.Push(Event{Kind: Deleted, Path: "/root/a.txt"})

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 1 {
		t.Fatalf("expected exactly one delivery for a burst on one path, got %d", len(delivered))
	}
	if delivered[0].Kind != Deleted {
		t.Errorf("expected latest kind (Deleted) to win, got %v", delivered[0].Kind)
	}
}

func TestDebouncer_DistinctPathsDeliverSeparately(t *testing.T) {
	var mu sync.Mutex
	var delivered []Event

	d := NewDebouncer(20*time.Millisecond, func(ev Event) {
		mu.Lock()
		delivered = append(delivered, ev)
		mu.Unlock()
	})

	d.Push(Event{Kind: Created, Path: "/root/a.txt"})
	d.Push(Event{Kind: Created, Path: "/root/b.txt"})

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(delivered) != 2 {
		t.Fatalf("expected two deliveries for two distinct paths, got %d", len(delivered))
	}
}

func TestDebouncer_Stop_CancelsPending(t *testing.T) {
	var mu sync.Mutex
	delivered := 0

	d := NewDebouncer(20*time.Millisecond, func(ev Event) {
		mu.Lock()
		delivered++
		mu.Unlock()
	})

	d.Push(Event{Kind: Created, Path: "/root/a.txt"})
	d.Stop()

	time.Sleep(60 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if delivered != 0 {
		t.Errorf("expected Stop to cancel pending delivery, got %d deliveries", delivered)
	}
}
