// cmd/sefsd/main.go
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sefs-project/sefs/internal/api"
	"github.com/sefs-project/sefs/internal/broadcast"
	"github.com/sefs-project/sefs/internal/cluster"
	"github.com/sefs-project/sefs/internal/config"
	"github.com/sefs-project/sefs/internal/embedder"
	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/ingest"
	"github.com/sefs-project/sefs/internal/logging"
	"github.com/sefs-project/sefs/internal/organiser"
	"github.com/sefs-project/sefs/internal/reconcile"
	"github.com/sefs-project/sefs/internal/scheduler"
	"github.com/sefs-project/sefs/internal/security"
	"github.com/sefs-project/sefs/internal/watch"
)

const defaultConfigPath = "/etc/sefs/config.yaml"
const httpShutdownTimeout = 5 * time.Second

func main() {
	configPath := os.Getenv("SEFS_CONFIG")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	var logWriter io.Writer = os.Stdout
	if cfg.Logging.FilePath != "" {
		rw, err := logging.NewRotatingWriter(cfg.Logging.FilePath, 10<<20)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file unavailable (%v), falling back to stdout\n", err)
		} else {
			logWriter = rw
		}
	}
	logger := logging.NewLogger(cfg.Logging.Format, cfg.Logging.Level, logWriter)

	if err := security.ValidateDirectoryPermissions(cfg.Root.Path); err != nil {
		logger.Warn("watched root has unsafe permissions", "error", err)
	}

	eng := engine.New(cfg)

	emb, err := embedder.New()
	if err != nil {
		logger.Error("failed to load embedding model", "error", err)
		os.Exit(1)
	}
	defer emb.Close()

	hub := broadcast.NewHub(logging.WithComponent(logger, "broadcast"))

	pipeline := ingest.New(eng.Index, eng.Ignore, eng.Activity, emb, logging.WithComponent(logger, "ingest"))

	broadcastSnapshot := func() {
		payload, err := json.Marshal(api.BuildSnapshot(eng.Index))
		if err != nil {
			logger.Error("failed to marshal snapshot", "error", err)
			return
		}
		hub.Broadcast(payload)
	}
	pipeline.OnSnapshot = broadcastSnapshot
	pipeline.OnLog = func(entry engine.ActivityEntry) {
		payload, err := json.Marshal(api.BuildLogEntry(entry))
		if err != nil {
			return
		}
		hub.Broadcast(payload)
	}

	namer := cluster.NewNamer(cfg.Naming, eng.NameCache, eng.RateLimit, cfg.Timers.RateLimit)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	orgLogger := logging.WithComponent(logger, "organiser")

	runRecluster := func() {
		eng.PipelineLock.Lock()
		defer eng.PipelineLock.Unlock()
		applyRecluster(ctx, eng, cfg, namer, orgLogger)
		broadcastSnapshot()
	}

	sched := scheduler.New(cfg.Timers.Recluster, runRecluster)
	pipeline.ScheduleRecluster = sched.Schedule

	source, err := watch.NewSource(cfg.Root.Path, cfg.Root.StagingDir, cfg.Root.SupportedExts, logging.WithComponent(logger, "watch"))
	if err != nil {
		logger.Error("failed to start file watcher", "error", err)
		os.Exit(1)
	}
	defer source.Close()

	debouncer := watch.NewDebouncer(cfg.Timers.Debounce, func(ev watch.Event) {
		eng.PipelineLock.Lock()
		defer eng.PipelineLock.Unlock()
		pipeline.Ingest(ev.Kind, ev.Path)
	})
	defer debouncer.Stop()

	recon := &reconcile.Reconciler{
		Root:              cfg.Root.Path,
		StagingDir:        cfg.Root.StagingDir,
		Prefix:            cfg.Root.Prefix,
		SupportedExts:     cfg.Root.SupportedExts,
		Engine:            eng,
		Index:             eng.Index,
		Activity:          eng.Activity,
		Pipeline:          pipeline,
		Logger:            logging.WithComponent(logger, "reconcile"),
		OnSnapshot:        broadcastSnapshot,
		ScheduleRecluster: sched.Schedule,
	}

	runStartupSweep(ctx, eng, pipeline, recon, cfg, namer, orgLogger, logger)
	broadcastSnapshot()

	events := make(chan watch.Event, 256)
	go func() {
		for ev := range events {
			debouncer.Push(ev)
		}
	}()
	go func() {
		if err := source.Run(ctx, events); err != nil && ctx.Err() == nil {
			logger.Error("file watcher stopped", "error", err)
		}
	}()

	if err := recon.Start(cfg.Timers.ReconcileSeconds); err != nil {
		logger.Error("failed to start reconciler", "error", err)
		os.Exit(1)
	}
	defer recon.Stop()

	server := api.NewServer(eng, sched, hub, cfg.Root.StagingDir, cfg.Root.SupportedExts, logging.WithComponent(logger, "api"))
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.ListenAddress, cfg.HTTP.ListenPort)
	httpServer := &http.Server{Addr: addr, Handler: server.Routes()}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), httpShutdownTimeout)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("sefsd listening", "address", addr, "root", cfg.Root.Path)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

// runStartupSweep starts from an empty cluster table (the Index, just
// built by engine.New, holds no file records yet), ingests
// every existing supported file (extract + embed, no folder moves)
// under the pipeline lock, runs one immediate reclustering if anything
// landed, then mark startup complete so the Reconciler activates. The
// Event Source is started by the caller only after this returns.
func runStartupSweep(ctx context.Context, eng *engine.Engine, pipeline *ingest.Pipeline, recon *reconcile.Reconciler, cfg *config.Global, namer *cluster.Namer, orgLogger, logger *slog.Logger) {
	eng.PipelineLock.Lock()
	eng.Index.ReplaceClusters(map[int]*engine.Cluster{})

	landed := false
	for _, path := range recon.CandidateFiles() {
		if pipeline.IngestNoSchedule(watch.Created, path) {
			landed = true
		}
	}
	if landed {
		applyRecluster(ctx, eng, cfg, namer, orgLogger)
	}
	eng.PipelineLock.Unlock()

	eng.MarkStartupComplete()
	logger.Info("startup sweep complete", "files", eng.Index.Len())
}

// applyRecluster runs the Clustering Engine over the full Index and
// applies its result: cluster table, per-file positions, and the
// Organiser's folder moves. Callers must already hold
// Engine.PipelineLock.
func applyRecluster(ctx context.Context, eng *engine.Engine, cfg *config.Global, namer *cluster.Namer, orgLogger *slog.Logger) {
	files, _ := eng.Index.Snapshot()
	if len(files) == 0 {
		return
	}

	inputs := make([]cluster.FileInput, len(files))
	for i, f := range files {
		inputs[i] = cluster.FileInput{Path: f.Path, Name: f.Name, Text: f.Text, Embedding: f.Embedding}
	}

	clusters, assignments := cluster.Recluster(ctx, inputs, cfg.Cluster.MaxK, namer)

	clusterTable := make(map[int]*engine.Cluster, len(clusters))
	names := make(map[int]string, len(clusters))
	for _, c := range clusters {
		clusterTable[c.ID] = &engine.Cluster{ID: c.ID, Name: c.Name, Color: c.Color, FileCount: c.FileCount}
		names[c.ID] = c.Name
	}

	assignByPath := make(map[string]int, len(assignments))
	for _, a := range assignments {
		assignByPath[a.Path] = a.ClusterID
		if rec, ok := eng.Index.Get(a.Path); ok {
			rec.ClusterID = a.ClusterID
			rec.Position = a.Position
		}
	}
	eng.Index.ReplaceClusters(clusterTable)

	clusterMap := organiser.BuildClusterMap(assignByPath, names)
	moves := organiser.SyncFolders(cfg.Root.Path, cfg.Root.Prefix, clusterMap, orgLogger)
	for oldPath, newPath := range moves {
		norm := engine.NormalizePath(newPath)
		eng.Ignore.Mark(oldPath, cfg.Timers.IgnoreTTL)
		eng.Ignore.Mark(norm, cfg.Timers.IgnoreTTL)
		eng.Index.Rename(oldPath, norm)
	}
}
