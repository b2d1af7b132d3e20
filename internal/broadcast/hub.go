// Package broadcast implements the Broadcaster: a single-actor hub
// that fans out snapshot and activity-log payloads to every live
// WebSocket subscriber, evicting slow or dead subscribers without
// blocking the rest.
package broadcast

import (
	"log/slog"
	"sync"
)

// Subscription is one subscriber's outbound queue. Workers never write
// to it directly — every payload passes through Hub.Broadcast, which is
// the only thing that touches the subscriber set. No worker holds a
// direct queue to a subscriber.
type Subscription struct {
	out chan []byte
}

// C returns the channel payloads for this subscriber arrive on. It is
// closed when the subscription is unregistered.
func (s *Subscription) C() <-chan []byte {
	return s.out
}

// Hub is the one mediator between producers (the Ingest Pipeline, the
// Clustering Engine, the Reconciler) and consumers (one goroutine per
// open WebSocket connection).
type Hub struct {
	mu          sync.Mutex
	subscribers map[*Subscription]struct{}
	logger      *slog.Logger
}

// NewHub returns an empty Hub.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{subscribers: make(map[*Subscription]struct{}), logger: logger}
}

// Register adds a subscriber and enqueues every payload in initial
// before returning. Because registration and Broadcast both hold the
// same lock, no later broadcast can be interleaved ahead of these —
// the snapshot-then-log ordering guarantee subscribers depend on.
func (h *Hub) Register(initial ...[]byte) *Subscription {
	sub := &Subscription{out: make(chan []byte, 32+len(initial))}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[sub] = struct{}{}
	for _, payload := range initial {
		sub.out <- payload
	}
	return sub
}

// Unregister removes a subscriber and closes its channel.
func (h *Hub) Unregister(sub *Subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subscribers[sub]; !ok {
		return
	}
	delete(h.subscribers, sub)
	close(sub.out)
}

// Broadcast enqueues payload for every subscriber. A subscriber whose
// queue is already full is evicted silently rather than blocking the
// rest of the fan-out.
func (h *Hub) Broadcast(payload []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for sub := range h.subscribers {
		select {
		case sub.out <- payload:
		default:
			delete(h.subscribers, sub)
			close(sub.out)
			if h.logger != nil {
				h.logger.Warn("broadcast: evicted slow subscriber")
			}
		}
	}
}

// Count reports the number of live subscribers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}
