package catalog

import "github.com/closetiq/outfitsearch/internal/domain/outfit"

// outfitDTO is the stored JSON shape of a catalog outfit.
type outfitDTO struct {
	Seq       int64     `json:"seq"`
	Occasion  string    `json:"occasion"`
	Style     string    `json:"style"`
	Items     []string  `json:"items"`
	Image     string    `json:"image"`
	Embedding []float32 `json:"embedding,omitempty"`
}

func fromDomain(o outfit.Outfit, seq int64) outfitDTO {
	vec, _ := o.Embedding()
	return outfitDTO{
		Seq:       seq,
		Occasion:  o.Occasion(),
		Style:     o.Style(),
		Items:     o.Items(),
		Image:     o.Image(),
		Embedding: vec,
	}
}

func (d outfitDTO) toDomain() outfit.Outfit {
	return outfit.Reconstruct(d.Occasion, d.Style, d.Items, d.Image, d.Embedding)
}
