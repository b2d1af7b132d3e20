package cluster

import (
	"regexp"
	"sort"
	"strings"
)

var alphaTokenPattern = regexp.MustCompile(`[a-zA-Z]+`)

// TopKeywords extracts up to n of a file's most frequent non-stop-word
// alphabetic tokens (length >= 3). The snapshot's per-file `keywords`
// field is built by api.ExtractKeywords, not by this function. Ties are
// broken by first occurrence
// order so results are stable across calls.
func TopKeywords(text string, n int) []string {
	counts := map[string]int{}
	var order []string

	for _, tok := range alphaTokenPattern.FindAllString(strings.ToLower(text), -1) {
		if len(tok) < 3 {
			continue
		}
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		if _, seen := counts[tok]; !seen {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}
