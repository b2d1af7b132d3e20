// Package api wires the Engine to the outside world: a thin HTTP/WS
// transport exposing liveness, the current snapshot, recent activity,
// an on-demand recluster trigger, and a staged-upload endpoint.
package api

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/sefs-project/sefs/internal/broadcast"
	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/scheduler"
)

// Server holds the collaborators every handler needs.
type Server struct {
	Engine        *engine.Engine
	Scheduler     *scheduler.Scheduler
	Hub           *broadcast.Hub
	Logger        *slog.Logger
	StagingDir    string
	SupportedExts []string
	StartTime     time.Time
}

// NewServer builds a Server. StartTime defaults to now if zero.
func NewServer(eng *engine.Engine, sched *scheduler.Scheduler, hub *broadcast.Hub, stagingDir string, supportedExts []string, logger *slog.Logger) *Server {
	return &Server{
		Engine:        eng,
		Scheduler:     sched,
		Hub:           hub,
		Logger:        logger,
		StagingDir:    stagingDir,
		SupportedExts: supportedExts,
		StartTime:     time.Now(),
	}
}

// Routes builds the ServeMux, wrapped the same way the daemon wraps its own
// endpoints — a simple per-route token-bucket limiter guarding against
// accidental hammering, health/read endpoints more permissive than the
// mutating ones.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/healthz", rateLimited(60, s.handleHealthz))
	mux.HandleFunc("/graph", rateLimited(60, s.handleGraph))
	mux.HandleFunc("/logs", rateLimited(60, s.handleLogs))
	mux.HandleFunc("/recluster", rateLimited(10, s.handleRecluster))
	mux.HandleFunc("/upload", rateLimited(20, s.handleUpload))
	mux.HandleFunc("/ws", s.handleWS)

	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	resp := map[string]any{
		"status": "ok",
		"uptime": time.Since(s.StartTime).Truncate(time.Second).String(),
		"files":  s.Engine.Index.Len(),
	}
	writeJSON(w, resp)
}

func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, BuildSnapshot(s.Engine.Index))
}

func (s *Server) handleLogs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, recentLogEntries(s.Engine.Activity))
}

// handleRecluster bypasses the debounce timer entirely: a POST here
// calls Scheduler.Force() directly.
func (s *Server) handleRecluster(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.Scheduler.Force()
	writeJSON(w, map[string]any{"status": "reclustering"})
}

// handleUpload stages incoming files under StagingDir only — it never
// ingests synchronously. The Reconciler's orphan scan picks staged
// files up on its next tick, a deliberate departure from a
// synchronous-ingest upload handler.
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	files := r.MultipartForm.File["file"]
	if len(files) == 0 {
		http.Error(w, "no file provided", http.StatusBadRequest)
		return
	}

	if err := os.MkdirAll(s.StagingDir, 0755); err != nil {
		http.Error(w, "staging directory unavailable", http.StatusInternalServerError)
		return
	}

	staged := make([]string, 0, len(files))
	for _, fh := range files {
		name := filepath.Base(fh.Filename)
		if !s.supported(name) {
			continue
		}

		src, err := fh.Open()
		if err != nil {
			continue
		}
		dst, err := os.Create(filepath.Join(s.StagingDir, name))
		if err != nil {
			src.Close()
			continue
		}
		_, copyErr := io.Copy(dst, src)
		src.Close()
		dst.Close()
		if copyErr != nil {
			if s.Logger != nil {
				s.Logger.Warn("upload: failed to stage file", "name", name, "error", copyErr)
			}
			continue
		}
		staged = append(staged, name)
	}

	writeJSON(w, map[string]any{"staged": staged})
}

func (s *Server) supported(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range s.SupportedExts {
		if strings.ToLower(e) == ext {
			return true
		}
	}
	return false
}

// handleWS upgrades to a WebSocket and subscribes the client to the
// Broadcaster, sending the current snapshot and recent log as the
// initial payloads so the client never races its own first update.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	snapshot, err := json.Marshal(BuildSnapshot(s.Engine.Index))
	if err != nil {
		http.Error(w, "failed to build snapshot", http.StatusInternalServerError)
		return
	}

	initial := [][]byte{snapshot}
	for _, entry := range recentLogEntries(s.Engine.Activity) {
		if payload, err := json.Marshal(entry); err == nil {
			initial = append(initial, payload)
		}
	}

	broadcast.Serve(s.Hub, w, r, s.Logger, initial...)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, fmt.Sprintf("encoding response: %v", err), http.StatusInternalServerError)
	}
}

// rateLimited wraps handler with a token-bucket limiter, the same
// shape used across the rest of this daemon's HTTP endpoints.
func rateLimited(requestsPerMinute int, handler http.HandlerFunc) http.HandlerFunc {
	var mu sync.Mutex
	tokens := requestsPerMinute
	lastRefill := time.Now()

	return func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		now := time.Now()
		if refill := int(now.Sub(lastRefill).Minutes() * float64(requestsPerMinute)); refill > 0 {
			tokens += refill
			if tokens > requestsPerMinute {
				tokens = requestsPerMinute
			}
			lastRefill = now
		}
		if tokens <= 0 {
			mu.Unlock()
			w.Header().Set("Retry-After", "60")
			http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
			return
		}
		tokens--
		mu.Unlock()

		handler(w, r)
	}
}
