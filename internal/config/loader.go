// internal/config/loader.go
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Load reads and validates the daemon configuration from a YAML file.
func Load(path string) (*Global, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Global
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyGlobalDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that a loaded configuration is usable.
func Validate(cfg *Global) error {
	if cfg.Root.Path == "" {
		return fmt.Errorf("root.path is required")
	}
	info, err := os.Stat(cfg.Root.Path)
	if err != nil {
		return fmt.Errorf("root.path %q is not accessible: %w", cfg.Root.Path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("root.path %q is not a directory", cfg.Root.Path)
	}

	if len(cfg.Root.SupportedExts) == 0 {
		return fmt.Errorf("root.supported_exts must list at least one extension")
	}
	for _, ext := range cfg.Root.SupportedExts {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("root.supported_exts entry %q must start with \".\"", ext)
		}
	}

	if cfg.Timers.DebounceSeconds <= 0 {
		return fmt.Errorf("timers.debounce_seconds must be > 0")
	}
	if cfg.Timers.ReclusterSeconds <= 0 {
		return fmt.Errorf("timers.recluster_seconds must be > 0")
	}
	if cfg.Timers.ReconcileSeconds <= 0 {
		return fmt.Errorf("timers.reconcile_seconds must be > 0")
	}
	if cfg.Timers.IgnoreTTLSeconds <= 0 {
		return fmt.Errorf("timers.ignore_ttl_seconds must be > 0")
	}
	if cfg.Timers.RateLimitSeconds <= 0 {
		return fmt.Errorf("timers.rate_limit_seconds must be > 0")
	}

	if cfg.Cluster.MaxK < 2 {
		return fmt.Errorf("cluster.max_k must be >= 2")
	}
	if cfg.Cluster.NameCacheMax <= 0 {
		return fmt.Errorf("cluster.name_cache_max must be > 0")
	}

	if cfg.Naming.Enabled && cfg.Naming.Endpoint == "" {
		return fmt.Errorf("naming.endpoint is required when naming.enabled is true")
	}

	return nil
}

func applyGlobalDefaults(cfg *Global) {
	if cfg.Root.Prefix == "" {
		cfg.Root.Prefix = "SEFS_"
	}
	if cfg.Root.StagingDir == "" {
		cfg.Root.StagingDir = ".staging"
	}
	if len(cfg.Root.SupportedExts) == 0 {
		cfg.Root.SupportedExts = []string{".pdf", ".txt"}
	}

	if cfg.Timers.DebounceSeconds == 0 {
		cfg.Timers.DebounceSeconds = 3
	}
	if cfg.Timers.ReclusterSeconds == 0 {
		cfg.Timers.ReclusterSeconds = 5
	}
	if cfg.Timers.ReconcileSeconds == 0 {
		cfg.Timers.ReconcileSeconds = 8
	}
	if cfg.Timers.IgnoreTTLSeconds == 0 {
		cfg.Timers.IgnoreTTLSeconds = 15
	}
	if cfg.Timers.RateLimitSeconds == 0 {
		cfg.Timers.RateLimitSeconds = 300
	}
	cfg.Timers.Debounce = time.Duration(cfg.Timers.DebounceSeconds) * time.Second
	cfg.Timers.Recluster = time.Duration(cfg.Timers.ReclusterSeconds) * time.Second
	cfg.Timers.Reconcile = time.Duration(cfg.Timers.ReconcileSeconds) * time.Second
	cfg.Timers.IgnoreTTL = time.Duration(cfg.Timers.IgnoreTTLSeconds) * time.Second
	cfg.Timers.RateLimit = time.Duration(cfg.Timers.RateLimitSeconds) * time.Second

	if cfg.Cluster.MaxK == 0 {
		cfg.Cluster.MaxK = 8
	}
	if cfg.Cluster.NameCacheMax == 0 {
		cfg.Cluster.NameCacheMax = 200
	}

	if cfg.HTTP.ListenAddress == "" {
		cfg.HTTP.ListenAddress = "127.0.0.1"
	}
	if cfg.HTTP.ListenPort == 0 {
		cfg.HTTP.ListenPort = 8420
	}

	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	if cfg.Naming.TimeoutSeconds == 0 {
		cfg.Naming.TimeoutSeconds = 5
	}
}
