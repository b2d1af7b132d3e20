package engine

import (
	"strings"
	"sync"
	"time"
)

// RateLimitLatch tracks the LLM naming back-off window:
// once the naming service signals a rate limit, naming falls back to the
// keyword/TF-IDF path for T_ratelimit before the LLM is tried again.
type RateLimitLatch struct {
	mu    sync.Mutex
	until time.Time
}

// Active reports whether the back-off window is still in effect.
func (l *RateLimitLatch) Active() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return time.Now().Before(l.until)
}

// Trip latches the back-off for the given duration.
func (l *RateLimitLatch) Trip(d time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.until = time.Now().Add(d)
}

// LooksLikeRateLimit matches the substring heuristic
// specify: a 429 status or a message mentioning "rate" or "limit".
func LooksLikeRateLimit(statusCode int, errMsg string) bool {
	if statusCode == 429 {
		return true
	}
	lower := strings.ToLower(errMsg)
	return strings.Contains(lower, "rate") || strings.Contains(lower, "limit")
}
