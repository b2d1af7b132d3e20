package broadcast

import "testing"

func TestHub_RegisterDeliversInitialPayloadsInOrder(t *testing.T) {
	h := NewHub(nil)
	sub := h.Register([]byte("snapshot"), []byte("log"))

	if got := string(<-sub.C()); got != "snapshot" {
		t.Fatalf("expected snapshot first, got %q", got)
	}
	if got := string(<-sub.C()); got != "log" {
		t.Fatalf("expected log second, got %q", got)
	}
}

func TestHub_BroadcastReachesAllSubscribers(t *testing.T) {
	h := NewHub(nil)
	a := h.Register()
	b := h.Register()

	h.Broadcast([]byte("update"))

	if got := string(<-a.C()); got != "update" {
		t.Errorf("subscriber a: expected update, got %q", got)
	}
	if got := string(<-b.C()); got != "update" {
		t.Errorf("subscriber b: expected update, got %q", got)
	}
}

func TestHub_UnregisterClosesChannelAndStopsDelivery(t *testing.T) {
	h := NewHub(nil)
	sub := h.Register()
	h.Unregister(sub)

	if h.Count() != 0 {
		t.Errorf("expected 0 subscribers after unregister, got %d", h.Count())
	}
	if _, ok := <-sub.C(); ok {
		t.Error("expected channel to be closed after unregister")
	}
}

func TestHub_BroadcastEvictsSlowSubscriberWithoutBlocking(t *testing.T) {
	h := NewHub(nil)
	slow := h.Register()

	for i := 0; i < 40; i++ {
		h.Broadcast([]byte("x"))
	}

	if h.Count() != 0 {
		t.Errorf("expected slow subscriber to be evicted once its queue fills, got %d subscribers", h.Count())
	}
	_ = slow
}

func TestHub_CountTracksLiveSubscribers(t *testing.T) {
	h := NewHub(nil)
	if h.Count() != 0 {
		t.Fatalf("expected 0, got %d", h.Count())
	}
	sub := h.Register()
	if h.Count() != 1 {
		t.Fatalf("expected 1, got %d", h.Count())
	}
	h.Unregister(sub)
	if h.Count() != 0 {
		t.Fatalf("expected 0 after unregister, got %d", h.Count())
	}
}
