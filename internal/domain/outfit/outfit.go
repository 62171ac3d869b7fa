package outfit

import "fmt"

// Outfit is a catalog reference outfit (immutable value object).
// The embedding is optional: absent until backfilled by the seeder.
type Outfit struct {
	occasion  string
	style     string
	items     []string
	image     string
	embedding []float32
}

// New validates and creates an Outfit without an embedding.
// Occasion and style are required; items must contain at least one
// non-empty garment description.
func New(occasion, style string, items []string, image string) (Outfit, error) {
	if occasion == "" {
		return Outfit{}, fmt.Errorf("occasion is required")
	}
	if style == "" {
		return Outfit{}, fmt.Errorf("style is required")
	}
	if len(items) == 0 {
		return Outfit{}, fmt.Errorf("at least one item is required")
	}
	for i, it := range items {
		if it == "" {
			return Outfit{}, fmt.Errorf("item %d is empty", i)
		}
	}

	return Outfit{
		occasion: occasion,
		style:    style,
		items:    cloneStrings(items),
		image:    image,
	}, nil
}

// Reconstruct creates an Outfit without validation (storage hydration).
func Reconstruct(occasion, style string, items []string, image string, embedding []float32) Outfit {
	return Outfit{
		occasion:  occasion,
		style:     style,
		items:     cloneStrings(items),
		image:     image,
		embedding: cloneFloats(embedding),
	}
}

// WithEmbedding returns a copy of the outfit with the embedding set.
func (o Outfit) WithEmbedding(vec []float32) Outfit {
	o.embedding = cloneFloats(vec)
	return o
}

func (o Outfit) Occasion() string { return o.occasion }
func (o Outfit) Style() string    { return o.style }
func (o Outfit) Image() string    { return o.image }

// Items returns a copy of the garment descriptions.
func (o Outfit) Items() []string { return cloneStrings(o.items) }

// Embedding returns the stored vector and whether one is present.
func (o Outfit) Embedding() ([]float32, bool) {
	if len(o.embedding) == 0 {
		return nil, false
	}
	return o.embedding, true
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}

func cloneFloats(v []float32) []float32 {
	if v == nil {
		return nil
	}
	out := make([]float32, len(v))
	copy(out, v)
	return out
}
