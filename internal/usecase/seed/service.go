package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/closetiq/outfitsearch/internal/domain"
)

// Service populates an empty catalog with the reference outfit set.
// It runs once at startup, before search traffic is accepted, and must not
// be invoked concurrently with itself.
type Service struct {
	catalog Catalog
	embed   Embedder
	logger  *zap.Logger
	reset   bool
}

// New creates a seed service.
func New(catalog Catalog, embed Embedder, logger *zap.Logger) *Service {
	return &Service{catalog: catalog, embed: embed, logger: logger}
}

// WithReset makes Run wipe the catalog before seeding, forcing a reseed on
// every start.
func (s *Service) WithReset(reset bool) *Service {
	s.reset = reset
	return s
}

// Run seeds the catalog. A non-empty catalog is left untouched (no top-up,
// no validation of existing entries). Each reference outfit is embedded
// synchronously before insert; the first embedding failure aborts the
// remaining entries with domain.ErrSeedIncomplete, leaving a partial catalog
// that the next start does not correct.
func (s *Service) Run(ctx context.Context) error {
	if s.reset {
		if err := s.catalog.DeleteAll(ctx); err != nil {
			return fmt.Errorf("reset catalog: %w: %w", domain.ErrCatalogUnavailable, err)
		}
		s.logger.Info("catalog wiped before seeding")
	}

	count, err := s.catalog.Count(ctx)
	if err != nil {
		return fmt.Errorf("count outfits: %w: %w", domain.ErrCatalogUnavailable, err)
	}
	if count > 0 {
		s.logger.Info("catalog already seeded, skipping", zap.Int("outfits", count))
		return nil
	}

	for i, ref := range referenceSet {
		o, err := ref.toDomain()
		if err != nil {
			return fmt.Errorf("reference outfit %q: %w", ref.occasion, err)
		}

		embRes, err := s.embed.Embed(ctx, embeddingText(ref))
		if err != nil {
			return fmt.Errorf("embed outfit %q (%d of %d): %w: %w",
				ref.occasion, i+1, len(referenceSet), domain.ErrSeedIncomplete, err)
		}

		if err := s.catalog.Insert(ctx, o.WithEmbedding(embRes.Embedding)); err != nil {
			return fmt.Errorf("insert outfit %q: %w: %w", ref.occasion, domain.ErrCatalogUnavailable, err)
		}
	}

	s.logger.Info("catalog seeded", zap.Int("outfits", len(referenceSet)))
	return nil
}

// embeddingText builds the text embedded for one outfit: occasion, style,
// and the comma-joined items.
func embeddingText(ref referenceOutfit) string {
	return ref.occasion + " " + ref.style + " " + strings.Join(ref.items, ", ")
}
