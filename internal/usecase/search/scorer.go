package search

import (
	"math"
	"strings"

	"github.com/closetiq/outfitsearch/internal/domain/outfit"
)

// Keyword-overlap weights for outfits without a stored embedding.
const (
	occasionWeight = 0.5
	styleWeight    = 0.3
	combinedWeight = 0.2
)

// score computes the relevance of one catalog outfit against the query.
// Exactly one strategy applies: cosine similarity when the outfit carries an
// embedding, weighted keyword overlap otherwise.
func score(queryVec []float32, normalized string, o outfit.Outfit) float64 {
	if vec, ok := o.Embedding(); ok {
		return cosine(queryVec, vec)
	}
	return keywordOverlap(normalized, o)
}

// cosine returns the cosine similarity of two vectors. Zero vectors,
// mismatched dimensions, and NaN all resolve to 0 rather than propagating.
func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}

	sim := dot / denom
	if math.IsNaN(sim) {
		return 0
	}
	return sim
}

// keywordOverlap scores an embedding-less outfit by substring overlap with
// the normalized query. The three checks are independent and additive, so an
// outfit can score up to 1.0.
func keywordOverlap(normalized string, o outfit.Outfit) float64 {
	occasion := strings.ToLower(o.Occasion())
	style := strings.ToLower(o.Style())
	combined := occasion + " " + style + " " + strings.ToLower(strings.Join(o.Items(), " "))

	var s float64
	if strings.Contains(occasion, normalized) {
		s += occasionWeight
	}
	if strings.Contains(style, normalized) {
		s += styleWeight
	}
	if strings.Contains(combined, normalized) {
		s += combinedWeight
	}
	return s
}
