package seed

import (
	"context"

	"github.com/closetiq/outfitsearch/internal/domain"
	"github.com/closetiq/outfitsearch/internal/domain/outfit"
)

// Catalog is the write-side storage contract for seeding.
type Catalog interface {
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, o outfit.Outfit) error
	DeleteAll(ctx context.Context) error
}

// Embedder vectorizes outfit descriptions at seed time.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
