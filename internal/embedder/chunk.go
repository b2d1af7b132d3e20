package embedder

import (
	"math"
	"regexp"
	"strings"
)

// chunkSize and maxChunks mirror
// original_source/backend/embedder.py's CHUNK_SIZE/MAX_CHUNKS: the
// underlying model's token budget is ~256 word pieces, which maps
// roughly to 500 characters, and chunking caps out at 20 chunks
// (~10,000 characters) per document.
const (
	chunkSize = 500
	maxChunks = 20
)

var sentenceBoundary = regexp.MustCompile(`(?:[.!?])\s+`)

// EmbedText embeds a document's extracted text: short text is embedded
// directly; long text is split into sentence-aligned chunks, each
// embedded, weighted-averaged (earlier chunks weighted more heavily,
// since the intro/abstract tends to matter more), and the result
// unit-normalized for cosine similarity.
func (e *Embedder) EmbedText(text string) ([]float32, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return make([]float32, 384), nil
	}

	if len(text) <= chunkSize {
		return e.Embed(text)
	}

	chunks := splitIntoChunks(text)
	if len(chunks) == 0 {
		return make([]float32, 384), nil
	}

	embeddings, err := e.EmbedBatch(chunks)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, len(embeddings))
	var weightSum float64
	for i := range weights {
		weights[i] = 1.0 / (1 + 0.1*float64(i))
		weightSum += weights[i]
	}
	for i := range weights {
		weights[i] /= weightSum
	}

	dims := len(embeddings[0])
	avg := make([]float64, dims)
	for i, emb := range embeddings {
		for d := 0; d < dims && d < len(emb); d++ {
			avg[d] += float64(emb[d]) * weights[i]
		}
	}

	var normSq float64
	for _, v := range avg {
		normSq += v * v
	}
	norm := math.Sqrt(normSq)

	out := make([]float32, dims)
	for d, v := range avg {
		if norm > 0 {
			v /= norm
		}
		out[d] = float32(v)
	}
	return out, nil
}

// splitIntoChunks splits text into chunks up to chunkSize characters,
// preferring sentence boundaries and falling back to word boundaries for
// any single over-long sentence, matching
// original_source/backend/embedder.py's _split_into_chunks.
func splitIntoChunks(text string) []string {
	sentences := sentenceBoundary.Split(text, -1)

	var chunks []string
	var current strings.Builder

	appendCurrent := func() {
		if current.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(current.String()))
			current.Reset()
		}
	}

	for _, sentence := range sentences {
		if len(chunks) >= maxChunks {
			break
		}
		if current.Len()+len(sentence) <= chunkSize {
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(sentence)
			continue
		}

		appendCurrent()

		if len(sentence) > chunkSize {
			for _, word := range strings.Fields(sentence) {
				if len(chunks) >= maxChunks {
					break
				}
				if current.Len()+len(word)+1 <= chunkSize {
					if current.Len() > 0 {
						current.WriteString(" ")
					}
					current.WriteString(word)
				} else {
					appendCurrent()
					current.WriteString(word)
				}
			}
		} else {
			current.WriteString(sentence)
		}
	}
	if len(chunks) < maxChunks {
		appendCurrent()
	}

	filtered := chunks[:0]
	for _, c := range chunks {
		if len(c) > 20 {
			filtered = append(filtered, c)
		}
	}
	if len(filtered) > maxChunks {
		filtered = filtered[:maxChunks]
	}
	return filtered
}
