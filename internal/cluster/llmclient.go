package cluster

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/sefs-project/sefs/internal/config"
	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/security"
)

// Namer is the post-hoc cluster-naming pipeline (grounded on
// original_source/backend/clusterer.py's name_all_clusters): a
// name-cache lookup, then the optional LLM naming service
// (rate-limit-latched), then the keyword/TF-IDF/filename fallback chain
// already implemented by NameUncategorizedGroup.
type Namer struct {
	cfg          config.NamingConfig
	cache        *engine.NameCache
	rateLimit    *engine.RateLimitLatch
	rateLimitTTL time.Duration
	client       *http.Client
}

// NewNamer builds a Namer. cache and rateLimit are shared Engine state;
// passing nil for either disables caching / rate-limit tracking (tests).
// rateLimitTTL is the rate-limit back-off window (default 300s).
func NewNamer(cfg config.NamingConfig, cache *engine.NameCache, rateLimit *engine.RateLimitLatch, rateLimitTTL time.Duration) *Namer {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Namer{
		cfg:          cfg,
		cache:        cache,
		rateLimit:    rateLimit,
		rateLimitTTL: rateLimitTTL,
		client:       &http.Client{Timeout: timeout},
	}
}

// Name produces a cluster name for one uncategorized sub-group, trying
// (in order) the name cache, the external LLM naming service, then the
// keyword/TF-IDF/filename fallback chain.
func (n *Namer) Name(ctx context.Context, texts, fileNames []string) string {
	key := fingerprint(texts)

	if n != nil && n.cache != nil {
		if cached, ok := n.cache.Get(key); ok {
			return cached
		}
	}

	var name string
	if n != nil && n.cfg.Enabled && !n.rateLimitActive() {
		if llmName, err := n.callLLM(ctx, texts, fileNames); err == nil && llmName != "" {
			name = llmName
		} else if err != nil && n.rateLimit != nil {
			n.noteFailure(err)
		}
	}

	if name == "" {
		name = NameUncategorizedGroup(texts, fileNames)
	}

	if n != nil && n.cache != nil {
		n.cache.Set(key, name)
	}
	return name
}

func (n *Namer) rateLimitActive() bool {
	if n.rateLimit == nil {
		return false
	}
	return n.rateLimit.Active()
}

// noteFailure latches the rate-limit back-off when the error looks like
// a 429/rate-limit signal.
func (n *Namer) noteFailure(err error) {
	msg := err.Error()
	status := 0
	if he, ok := err.(*httpStatusError); ok {
		status = he.status
	}
	if engine.LooksLikeRateLimit(status, msg) {
		n.rateLimit.Trip(n.rateLimitTTL)
	}
}

type httpStatusError struct {
	status int
	body   string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("llm naming service returned status %d: %s", e.status, redactSecret(e.body))
}

// llmRequest mirrors the minimal chat-completions shape the naming
// service (Groq-compatible, per original_source/backend/clusterer.py's
// _name_clusters_groq) expects.
type llmRequest struct {
	Model       string       `json:"model"`
	Messages    []llmMessage `json:"messages"`
	MaxTokens   int          `json:"max_tokens"`
	Temperature float64      `json:"temperature"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Choices []struct {
		Message llmMessage `json:"message"`
	} `json:"choices"`
}

var quoteTrim = regexp.MustCompile(`^["'` + "`" + `]|["'` + "`" + `]$`)

// callLLM asks the naming service to suggest a short category name from
// a sample of the group's texts and filenames, matching the prompt shape
// of original_source/backend/clusterer.py's _name_clusters_groq.
func (n *Namer) callLLM(ctx context.Context, texts, fileNames []string) (string, error) {
	apiKey := os.Getenv(n.cfg.APIKeyEnvVar)
	if apiKey == "" {
		return "", fmt.Errorf("naming service enabled but %s is unset", n.cfg.APIKeyEnvVar)
	}

	textSample := texts
	if len(textSample) > 3 {
		textSample = textSample[:3]
	}
	fileSample := fileNames
	if len(fileSample) > 5 {
		fileSample = fileSample[:5]
	}

	var samples strings.Builder
	for _, t := range textSample {
		samples.WriteString("- ")
		samples.WriteString(smartTruncate(t, 150))
		samples.WriteString("\n")
	}

	prompt := fmt.Sprintf(
		"Based on these file excerpts and names, suggest a brief category name (2-4 words):\n\nFiles: %s\n\nContent samples:\n%s\nCategory name:",
		strings.Join(fileSample, ", "), samples.String(),
	)

	reqBody := llmRequest{
		Model: n.cfg.Model,
		Messages: []llmMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens:   30,
		Temperature: 0.3,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling naming request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, n.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("building naming request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+apiKey)

	resp, err := n.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("naming request failed: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode != http.StatusOK {
		return "", &httpStatusError{status: resp.StatusCode, body: string(body)}
	}

	var parsed llmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("parsing naming response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("naming response had no choices")
	}

	name := strings.TrimSpace(parsed.Choices[0].Message.Content)
	name = quoteTrim.ReplaceAllString(name, "")
	if idx := strings.IndexByte(name, '\n'); idx >= 0 {
		name = name[:idx]
	}
	name = strings.TrimSpace(name)
	if len(name) > 50 {
		name = name[:50]
	}
	return name, nil
}

func smartTruncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := s[:n]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}

// fingerprint derives the name-cache key from a sub-group's texts, the
// same role original_source/backend/clusterer.py's _cache_key plays:
// content-addressed, so an unchanged group of files skips naming work on
// the next reclustering.
func fingerprint(texts []string) string {
	h := sha1.New()
	for _, t := range texts {
		io.WriteString(h, t)
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// redactSecret strips anything that looks like a bearer token or API key
// from error text before it reaches the activity log or process log.
func redactSecret(s string) string {
	return security.ScrubOutput(s)
}
