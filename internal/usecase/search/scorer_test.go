package search

import (
	"math"
	"testing"

	"github.com/closetiq/outfitsearch/internal/domain/outfit"
)

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"zero query vector", []float32{0, 0}, []float32{1, 2}, 0},
		{"zero item vector", []float32{1, 2}, []float32{0, 0}, 0},
		{"both zero", []float32{0, 0}, []float32{0, 0}, 0},
		{"empty vectors", nil, nil, 0},
		{"dimension mismatch", []float32{1, 2}, []float32{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("cosine(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

// Infinite components produce NaN in the similarity ratio, which must
// resolve to 0 rather than escape to the caller.
func TestCosine_NaNResolvesToZero(t *testing.T) {
	inf := float32(math.Inf(1))
	if got := cosine([]float32{inf}, []float32{1}); got != 0 {
		t.Errorf("cosine with infinite input = %v, want 0", got)
	}
}

func TestKeywordOverlap_Additive(t *testing.T) {
	o := outfit.Reconstruct("date", "casual", []string{"White linen shirt", "Dark jeans"}, "", nil)

	tests := []struct {
		name       string
		normalized string
		want       float64
	}{
		// "date" hits occasion (0.5) and the combined text (0.2).
		{"occasion and combined", "date", 0.7},
		// "casual" hits style (0.3) and the combined text (0.2).
		{"style and combined", "casual", 0.5},
		// "jeans" only appears in the combined text.
		{"combined only", "jeans", 0.2},
		{"no overlap", "wedding", 0},
		// The empty string is a substring of everything.
		{"empty query matches all fields", "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := keywordOverlap(tt.normalized, o)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("keywordOverlap(%q) = %v, want %v", tt.normalized, got, tt.want)
			}
		})
	}
}

func TestScore_PicksExactlyOneStrategy(t *testing.T) {
	queryVec := []float32{1, 0}

	embedded := outfit.Reconstruct("date", "casual", []string{"Shirt"}, "", []float32{1, 0})
	if got := score(queryVec, "date", embedded); math.Abs(got-1) > 1e-9 {
		t.Errorf("embedded outfit should use cosine: got %v, want 1", got)
	}

	// Same fields without an embedding: keyword overlap, not cosine.
	bare := outfit.Reconstruct("date", "casual", []string{"Shirt"}, "", nil)
	if got := score(queryVec, "date", bare); math.Abs(got-0.7) > 1e-9 {
		t.Errorf("bare outfit should use keyword overlap: got %v, want 0.7", got)
	}
}
