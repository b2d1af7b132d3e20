package cluster

import (
	"math"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// englishStopWords is the standard list of high-frequency English words
// excluded from the TF-IDF fallback naming pass, matching scikit-learn's
// `stop_words="english"` vectorizer option in spirit (not reproduced
// byte-for-byte — this only feeds a naming heuristic, not a clustering
// invariant).
var englishStopWords = buildStopWordSet([]string{
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any",
	"are", "as", "at", "be", "because", "been", "before", "being", "below", "between",
	"both", "but", "by", "can", "did", "do", "does", "doing", "down", "during", "each",
	"few", "for", "from", "further", "had", "has", "have", "having", "he", "her", "here",
	"hers", "herself", "him", "himself", "his", "how", "i", "if", "in", "into", "is", "it",
	"its", "itself", "just", "me", "more", "most", "my", "myself", "no", "nor", "not",
	"now", "of", "off", "on", "once", "only", "or", "other", "our", "ours", "ourselves",
	"out", "over", "own", "same", "she", "should", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there", "these", "they",
	"this", "those", "through", "to", "too", "under", "until", "up", "very", "was", "we",
	"were", "what", "when", "where", "which", "while", "who", "whom", "why", "will",
	"with", "you", "your", "yours", "yourself", "yourselves", "also", "however", "would",
	"could", "shall", "may", "might", "must",
})

func buildStopWordSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

var tokenPattern = regexp.MustCompile(`\b\w\w+\b`)

// NameUncategorizedGroup names one uncategorized KMeans sub-cluster via
// a fallback chain: keyword scoring, then TF-IDF, then filename-token
// frequency, then the literal "Mixed Documents". The
// single-uncategorized-file case ("General Documents") is handled by
// the caller before subclustering is even attempted, since it isn't a
// sub-group of a KMeans run.
func NameUncategorizedGroup(texts, fileNames []string) string {
	if name, ok := NameClusterByKeywords(texts, fileNames); ok {
		return name
	}
	if name := tfidfName(texts); name != "" {
		return name
	}
	if name := nameFromFilenames(fileNames); name != "" {
		return name
	}
	return "Mixed Documents"
}

// tfidfName implements original_source/backend/clusterer.py's
// `_name_single_cluster_tfidf`: tokenize with unigrams+bigrams over
// stop-word-filtered tokens, score by TF-IDF averaged across the
// group's documents, take the top two terms with positive score,
// title-case and join, truncated to 50 characters.
func tfidfName(texts []string) string {
	if len(texts) == 0 {
		return ""
	}

	docsTokens := make([][]string, len(texts))
	df := map[string]int{}
	for i, t := range texts {
		terms := ngramTerms(t)
		docsTokens[i] = terms
		seen := map[string]struct{}{}
		for _, term := range terms {
			if _, dup := seen[term]; dup {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := float64(len(texts))
	scoreSum := map[string]float64{}
	for _, terms := range docsTokens {
		if len(terms) == 0 {
			continue
		}
		tf := map[string]float64{}
		for _, term := range terms {
			tf[term]++
		}
		// L2-normalize this document's raw TF vector before
		// weighting by IDF, matching the vectorizer's default norm.
		var sumSq float64
		for _, count := range tf {
			sumSq += count * count
		}
		norm := math.Sqrt(sumSq)
		if norm == 0 {
			continue
		}
		for term, count := range tf {
			idf := math.Log(n/float64(df[term])) + 1
			scoreSum[term] += (count / norm) * idf
		}
	}

	if len(scoreSum) == 0 {
		return ""
	}

	type scored struct {
		term  string
		score float64
	}
	ranked := make([]scored, 0, len(scoreSum))
	for term, total := range scoreSum {
		avg := total / n
		if avg > 0 {
			ranked = append(ranked, scored{term, avg})
		}
	}
	if len(ranked) == 0 {
		return ""
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].term < ranked[j].term
	})

	top := ranked
	if len(top) > 3 {
		top = top[:3]
	}

	limit := 2
	if len(top) < limit {
		limit = len(top)
	}
	terms := make([]string, 0, limit)
	for _, s := range top[:limit] {
		terms = append(terms, titleCase(s.term))
	}

	name := strings.Join(terms, " ")
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}

// ngramTerms tokenizes text into lowercase word-tokens (len >= 2),
// drops stop words, and returns unigrams followed by bigrams built from
// the remaining consecutive tokens.
func ngramTerms(text string) []string {
	raw := tokenPattern.FindAllString(strings.ToLower(text), -1)
	filtered := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, stop := englishStopWords[tok]; stop {
			continue
		}
		filtered = append(filtered, tok)
	}

	terms := make([]string, 0, len(filtered)*2)
	terms = append(terms, filtered...)
	for i := 0; i+1 < len(filtered); i++ {
		terms = append(terms, filtered[i]+" "+filtered[i+1])
	}
	return terms
}

// nameFromFilenames implements `_name_from_filenames`: strip extensions,
// split on separators, count words longer than 3 characters across (at
// most) the first 10 filenames, and title-case the top two by frequency.
func nameFromFilenames(fileNames []string) string {
	if len(fileNames) == 0 {
		return ""
	}

	limit := fileNames
	if len(limit) > 10 {
		limit = limit[:10]
	}

	counts := map[string]int{}
	order := []string{}
	for _, fname := range limit {
		base := strings.TrimSuffix(fname, filepath.Ext(fname))
		cleaned := separatorPattern.ReplaceAllString(base, " ")
		for _, word := range strings.Fields(cleaned) {
			word = strings.ToLower(word)
			if len(word) <= 3 {
				continue
			}
			if _, seen := counts[word]; !seen {
				order = append(order, word)
			}
			counts[word]++
		}
	}

	if len(counts) == 0 {
		return ""
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	top := order
	if len(top) > 2 {
		top = top[:2]
	}
	words := make([]string, 0, len(top))
	for _, w := range top {
		words = append(words, titleCase(w))
	}
	return strings.Join(words, " ")
}

var separatorPattern = regexp.MustCompile(`[_\-.]`)

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "" {
			continue
		}
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
