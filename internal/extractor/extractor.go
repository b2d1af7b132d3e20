// Package extractor implements the text-extraction collaborator
// contract of an extract_text(path) -> string call, returning
// empty on any failure and never raising, plus the snippet helper used
// in the snapshot message.
package extractor

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"golang.org/x/net/html/charset"
)

// maxPDFPages caps PDF extraction at the first 10 pages.
const maxPDFPages = 10

// Extract returns the plain text content of a PDF or TXT file. It never
// returns an error to the caller — extraction failures produce an empty
// string, which the Ingest Pipeline treats as a drop-with-warning.
func Extract(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		text, err := extractPDF(path)
		if err != nil {
			return ""
		}
		return text
	case ".txt":
		text, err := extractTXT(path)
		if err != nil {
			return ""
		}
		return text
	default:
		return ""
	}
}

// extractPDF reads the first maxPDFPages pages of a PDF and joins their
// plain text, collapsing blank lines the way
// original_source/backend/extractor.py's _extract_pdf does.
func extractPDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	pages := r.NumPage()
	if pages > maxPDFPages {
		pages = maxPDFPages
	}

	var lines []string
	for i := 1; i <= pages; i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			line = strings.TrimSpace(line)
			if line != "" {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, " "), nil
}

// extractTXT reads a text file and decodes it using whatever encoding
// charset.DetermineEncoding sniffs from the content, falling back to
// UTF-8 (original_source/backend/extractor.py's _extract_txt uses
// chardet for the same purpose).
func extractTXT(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	enc, _, _ := charset.DetermineEncoding(raw, "text/plain")
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		// Decoding failed outright (rare for DetermineEncoding's
		// guesses) — fall back to treating the bytes as UTF-8.
		return string(raw), nil
	}
	return string(decoded), nil
}

// Snippet returns a short preview of text, truncated to length and
// broken on a word boundary, matching
// original_source/backend/extractor.py's get_snippet.
func Snippet(text string, length int) string {
	if length <= 0 {
		length = 200
	}
	if len(text) <= length {
		return text
	}
	cut := text[:length]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
