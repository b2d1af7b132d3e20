// internal/config/types.go
package config

import "time"

// Global is the daemon's top-level configuration, loaded from config.yaml.
type Global struct {
	Root    RootConfig    `yaml:"root"`
	Timers  TimersConfig  `yaml:"timers"`
	Cluster ClusterConfig `yaml:"cluster"`
	HTTP    HTTPConfig    `yaml:"http"`
	Logging LoggingConfig `yaml:"logging"`
	Naming  NamingConfig  `yaml:"naming"`
}

// RootConfig describes the managed directory and the file types it holds.
type RootConfig struct {
	Path          string   `yaml:"path"`
	Prefix        string   `yaml:"prefix"`
	SupportedExts []string `yaml:"supported_exts"`
	StagingDir    string   `yaml:"staging_dir"`
}

// TimersConfig holds every duration the engine's actors run on. Declared
// in seconds in YAML for operator readability; applyGlobalDefaults fills
// in the time.Duration fields consumed by the rest of the code.
type TimersConfig struct {
	DebounceSeconds  int `yaml:"debounce_seconds"`
	ReclusterSeconds int `yaml:"recluster_seconds"`
	ReconcileSeconds int `yaml:"reconcile_seconds"`
	IgnoreTTLSeconds int `yaml:"ignore_ttl_seconds"`
	RateLimitSeconds int `yaml:"rate_limit_seconds"`

	Debounce  time.Duration `yaml:"-"`
	Recluster time.Duration `yaml:"-"`
	Reconcile time.Duration `yaml:"-"`
	IgnoreTTL time.Duration `yaml:"-"`
	RateLimit time.Duration `yaml:"-"`
}

// ClusterConfig controls the clustering engine's tunables.
type ClusterConfig struct {
	MaxK         int `yaml:"max_k"`
	NameCacheMax int `yaml:"name_cache_max"`
}

// HTTPConfig controls the thin HTTP/WebSocket transport (§12.1).
type HTTPConfig struct {
	ListenAddress string `yaml:"listen_address"`
	ListenPort    int    `yaml:"listen_port"`
}

// LoggingConfig controls the daemon's own operational log.
type LoggingConfig struct {
	Format   string `yaml:"format"`
	Level    string `yaml:"level"`
	FilePath string `yaml:"file_path"`
}

// NamingConfig controls the optional external LLM naming service used as
// the first step of post-hoc cluster naming, ahead of the keyword and
// TF-IDF fallbacks.
type NamingConfig struct {
	Enabled        bool   `yaml:"enabled"`
	Endpoint       string `yaml:"endpoint"`
	APIKeyEnvVar   string `yaml:"api_key_env_var"`
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}
