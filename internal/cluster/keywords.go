package cluster

import (
	"regexp"
	"strings"
)

// compiledKeyword pairs a dictionary keyword with its pre-compiled
// word-boundary pattern. Compiling once at package init avoids
// recompiling ~1900 patterns for every file scored.
type compiledKeyword struct {
	raw string
	re  *regexp.Regexp
}

type compiledCategory struct {
	Name     string
	Keywords []compiledKeyword
}

var compiledCategories = compileCategories(DefaultCategories)

func compileCategories(cats []Category) []compiledCategory {
	out := make([]compiledCategory, 0, len(cats))
	for _, c := range cats {
		kws := make([]compiledKeyword, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			pattern := `\b` + regexp.QuoteMeta(strings.ToLower(kw)) + `\b`
			kws = append(kws, compiledKeyword{raw: kw, re: regexp.MustCompile(pattern)})
		}
		out = append(out, compiledCategory{Name: c.Name, Keywords: kws})
	}
	return out
}

// CategorizeFile scores a single file's text+name against every
// category, uniform weighting (no filename boost — that's only applied
// in post-hoc naming, see NameClusterByKeywords). Returns the category
// name and true when match_count >= 1 and score >= 2; otherwise the
// file is uncategorized.
func CategorizeFile(text, name string) (category string, ok bool) {
	combined := strings.ToLower(text) + " " + strings.ToLower(name)

	bestScore := 0
	bestName := ""
	found := false

	for _, cat := range compiledCategories {
		score := 0
		matchCount := 0
		for _, kw := range cat.Keywords {
			hits := len(kw.re.FindAllStringIndex(combined, -1))
			if hits > 0 {
				matchCount++
				score += hits
			}
		}
		if matchCount >= 1 && score >= 2 && score > bestScore {
			bestScore = score
			bestName = cat.Name
			found = true
		}
	}

	return bestName, found
}

// NameClusterByKeywords implements the post-hoc cluster-naming keyword
// pass used for uncategorized KMeans sub-clusters: filename matches are
// weighted x3 relative to body-text matches, and ties on score are
// broken by match_count (grounded on
// original_source/backend/clusterer.py's _name_cluster_by_keywords).
func NameClusterByKeywords(texts, fileNames []string) (string, bool) {
	combinedText := strings.ToLower(strings.Join(texts, " "))
	combinedFiles := strings.ToLower(strings.Join(fileNames, " "))

	bestScore, bestMatch := 0, 0
	bestName := ""
	found := false

	for _, cat := range compiledCategories {
		score := 0
		matchCount := 0
		for _, kw := range cat.Keywords {
			textHits := len(kw.re.FindAllStringIndex(combinedText, -1))
			fileHits := len(kw.re.FindAllStringIndex(combinedFiles, -1))
			if textHits > 0 || fileHits > 0 {
				matchCount++
				score += textHits + fileHits*3
			}
		}
		if matchCount >= 1 && score >= 2 {
			if score > bestScore || (score == bestScore && matchCount > bestMatch) {
				bestScore, bestMatch = score, matchCount
				bestName = cat.Name
				found = true
			}
		}
	}

	return bestName, found
}
