package api

import (
	"regexp"
	"sort"
	"strings"

	"github.com/sefs-project/sefs/internal/engine"
	"github.com/sefs-project/sefs/internal/security"
)

// stopwords mirrors the original engine's inline English stopword list
// used only for the snapshot's per-file keyword summary: the top-5
// non-stop-word alphabetic tokens of length >= 3, by frequency.
var stopwords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {}, "being": {},
	"have": {}, "has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "shall": {}, "should": {},
	"may": {}, "might": {}, "can": {}, "could": {}, "and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "yet": {},
	"so": {}, "in": {}, "on": {}, "at": {}, "to": {}, "from": {}, "by": {}, "with": {}, "of": {}, "about": {},
	"into": {}, "through": {}, "during": {}, "before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"this": {}, "that": {}, "these": {}, "those": {}, "it": {}, "its": {}, "i": {}, "we": {}, "they": {}, "he": {},
	"she": {}, "you": {}, "my": {}, "your": {}, "his": {}, "her": {}, "our": {}, "their": {}, "not": {}, "no": {},
	"as": {}, "if": {}, "then": {}, "than": {}, "also": {}, "just": {}, "more": {}, "most": {}, "very": {}, "much": {},
	"many": {}, "some": {}, "any": {}, "each": {}, "every": {}, "all": {}, "both": {}, "such": {}, "only": {}, "same": {},
	"other": {}, "new": {}, "old": {}, "one": {}, "two": {}, "three": {}, "first": {}, "last": {}, "long": {}, "great": {},
	"which": {}, "what": {}, "when": {}, "where": {}, "how": {}, "who": {}, "whom": {}, "there": {}, "here": {}, "up": {},
	"out": {}, "over": {},
}

var wordPattern = regexp.MustCompile(`[a-zA-Z]{3,}`)

// ExtractKeywords returns the topN most frequent non-stopword
// alphabetic tokens in text, lowercased, ties broken by first
// occurrence (stable sort).
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = 5
	}
	words := wordPattern.FindAllString(strings.ToLower(text), -1)

	counts := make(map[string]int)
	order := make(map[string]int)
	for i, w := range words {
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, seen := order[w]; !seen {
			order[w] = i
		}
		counts[w]++
	}

	unique := make([]string, 0, len(counts))
	for w := range counts {
		unique = append(unique, w)
	}
	sort.Slice(unique, func(i, j int) bool {
		if counts[unique[i]] != counts[unique[j]] {
			return counts[unique[i]] > counts[unique[j]]
		}
		return order[unique[i]] < order[unique[j]]
	})

	if len(unique) > topN {
		unique = unique[:topN]
	}
	return unique
}

// FileEntry is one file's row in the snapshot message.
type FileEntry struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Snippet     string     `json:"snippet"`
	WordCount   int        `json:"word_count"`
	ClusterID   int        `json:"cluster_id"`
	ClusterName string     `json:"cluster_name"`
	Color       string     `json:"color"`
	Keywords    []string   `json:"keywords"`
	Position    [3]float64 `json:"position"`
}

// ClusterEntry is one cluster's row in the snapshot message.
type ClusterEntry struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	FileCount int    `json:"file_count"`
}

// Snapshot is the full `graph_update` push payload.
type Snapshot struct {
	Type     string         `json:"type"`
	Files    []FileEntry    `json:"files"`
	Clusters []ClusterEntry `json:"clusters"`
}

// BuildSnapshot reads a consistent copy of the Index and renders it
// into the wire shape clients expect.
func BuildSnapshot(idx *engine.Index) Snapshot {
	files, clusters := idx.Snapshot()

	byID := make(map[int]*engine.Cluster, len(clusters))
	for _, c := range clusters {
		byID[c.ID] = c
	}

	out := Snapshot{Type: "graph_update", Files: make([]FileEntry, 0, len(files)), Clusters: make([]ClusterEntry, 0, len(clusters))}
	for _, rec := range files {
		name := "Unknown"
		color := "#888888"
		if c, ok := byID[rec.ClusterID]; ok {
			name = c.Name
			color = c.Color
		}
		out.Files = append(out.Files, FileEntry{
			ID:          rec.Path,
			Name:        rec.Name,
			Snippet:     security.SanitizeValue(rec.Snippet),
			WordCount:   rec.WordCount,
			ClusterID:   rec.ClusterID,
			ClusterName: name,
			Color:       color,
			Keywords:    ExtractKeywords(rec.Text, 5),
			Position:    rec.Position,
		})
	}
	for _, c := range clusters {
		out.Clusters = append(out.Clusters, ClusterEntry{ID: c.ID, Name: c.Name, Color: c.Color, FileCount: c.FileCount})
	}
	return out
}

// LogEntry is the `activity_log_entry` push payload.
type LogEntry struct {
	Type      string `json:"type"`
	Timestamp int64  `json:"timestamp"`
	TimeStr   string `json:"time_str"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	Icon      string `json:"icon"`
}

// BuildLogEntry renders an activity entry into its wire shape.
func BuildLogEntry(e engine.ActivityEntry) LogEntry {
	return LogEntry{
		Type:      "activity_log_entry",
		Timestamp: e.Timestamp.Unix(),
		TimeStr:   e.TimeStr(),
		Kind:      e.Kind,
		Message:   e.Message,
		Icon:      e.Icon,
	}
}

// recentLogEntries renders the full bounded log, oldest first, for the
// `GET /logs` endpoint and the WebSocket on-subscribe replay.
func recentLogEntries(activity *engine.ActivityLog) []LogEntry {
	recent := activity.Recent()
	out := make([]LogEntry, 0, len(recent))
	for _, e := range recent {
		out = append(out, BuildLogEntry(e))
	}
	return out
}
