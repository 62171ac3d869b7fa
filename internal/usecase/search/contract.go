package search

import (
	"context"

	"github.com/closetiq/outfitsearch/internal/domain"
	"github.com/closetiq/outfitsearch/internal/domain/outfit"
)

// Catalog reads the reference outfits. The search path never writes.
type Catalog interface {
	All(ctx context.Context) ([]outfit.Outfit, error)
}

// Embedder vectorizes text into embeddings.
type Embedder interface {
	Embed(ctx context.Context, text string) (domain.EmbeddingResult, error)
}
