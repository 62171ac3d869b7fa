package match

import "github.com/closetiq/outfitsearch/internal/domain/outfit"

// Match pairs a catalog outfit with its relevance score for one search
// response. The score always comes from exactly one scoring strategy:
// embedding similarity, keyword overlap, or the uniform fallback score.
type Match struct {
	outfit outfit.Outfit
	score  float64
}

// New creates a Match.
func New(o outfit.Outfit, score float64) Match {
	return Match{outfit: o, score: score}
}

func (m Match) Outfit() outfit.Outfit { return m.outfit }
func (m Match) Score() float64        { return m.score }
