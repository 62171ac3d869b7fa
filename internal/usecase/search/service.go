package search

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/closetiq/outfitsearch/internal/domain"
	"github.com/closetiq/outfitsearch/internal/domain/match"
	"github.com/closetiq/outfitsearch/internal/domain/outfit"
	"github.com/closetiq/outfitsearch/internal/domain/query"
	"github.com/closetiq/outfitsearch/internal/logger"
	"github.com/closetiq/outfitsearch/internal/metrics"
)

// Ranking policy. The thresholds are a fixed product decision, not tunables:
// queries longer than 20 characters are treated as more specific and noisy,
// so the acceptance bar is relaxed for them.
const (
	maxResults       = 5
	thresholdDefault = 0.4
	thresholdRelaxed = 0.3
	longQueryRunes   = 20
	fallbackScore    = 0.1
)

const defaultEmbedTimeout = 5 * time.Second

// Service ranks catalog outfits against a free-text query.
type Service struct {
	catalog      Catalog
	embed        Embedder
	embedTimeout time.Duration
}

// New creates a search service.
func New(catalog Catalog, embed Embedder) *Service {
	return &Service{catalog: catalog, embed: embed, embedTimeout: defaultEmbedTimeout}
}

// WithEmbedTimeout overrides the per-search embedding call timeout.
func (s *Service) WithEmbedTimeout(d time.Duration) *Service {
	if d > 0 {
		s.embedTimeout = d
	}
	return s
}

// Search returns up to 5 outfits ranked by descending relevance.
// Empty or whitespace-only queries fail with domain.ErrInvalidQuery.
// An embedding provider failure or timeout fails the whole search with
// domain.ErrEmbeddingUnavailable; it is never downgraded to the keyword
// fallback, which only covers the "every item scored below threshold" case.
func (s *Service) Search(ctx context.Context, rawQuery string) ([]match.Match, error) {
	if strings.TrimSpace(rawQuery) == "" {
		metrics.SearchRequestsTotal.WithLabelValues("none", "invalid_query").Inc()
		return nil, fmt.Errorf("%w: query is empty", domain.ErrInvalidQuery)
	}

	normalized := query.Normalize(rawQuery)

	embCtx, cancel := context.WithTimeout(ctx, s.embedTimeout)
	defer cancel()

	embRes, err := s.embed.Embed(embCtx, normalized)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("none", "embedding_error").Inc()
		if errors.Is(err, domain.ErrEmbeddingUnavailable) {
			return nil, fmt.Errorf("vectorize query: %w", err)
		}
		return nil, fmt.Errorf("vectorize query: %w: %w", domain.ErrEmbeddingUnavailable, err)
	}

	outfits, err := s.catalog.All(ctx)
	if err != nil {
		metrics.SearchRequestsTotal.WithLabelValues("none", "catalog_error").Inc()
		return nil, fmt.Errorf("read catalog: %w: %w", domain.ErrCatalogUnavailable, err)
	}

	threshold := thresholdFor(rawQuery)

	matches := sortByScore(filterByThreshold(scoreAll(outfits, embRes.Embedding, normalized), threshold))
	strategy := metrics.StrategySemantic

	if len(matches) == 0 {
		matches = keywordFallback(outfits, query.Terms(normalized))
		strategy = metrics.StrategyFallback
		logger.FromContext(ctx).Debug("keyword fallback activated",
			zap.String("normalized_query", normalized),
			zap.Float64("threshold", threshold),
			zap.Int("hits", len(matches)),
		)
	}

	if len(matches) > maxResults {
		matches = matches[:maxResults]
	}

	metrics.SearchRequestsTotal.WithLabelValues(strategy, "ok").Inc()
	metrics.SearchResultsReturned.Observe(float64(len(matches)))

	return matches, nil
}

// thresholdFor selects the acceptance threshold from the raw query length.
func thresholdFor(rawQuery string) float64 {
	if utf8.RuneCountInString(rawQuery) > longQueryRunes {
		return thresholdRelaxed
	}
	return thresholdDefault
}

// scoreAll scores every catalog outfit, preserving catalog order.
func scoreAll(outfits []outfit.Outfit, queryVec []float32, normalized string) []match.Match {
	scored := make([]match.Match, len(outfits))
	for i, o := range outfits {
		scored[i] = match.New(o, score(queryVec, normalized, o))
	}
	return scored
}

// filterByThreshold keeps matches scoring at or above the threshold.
func filterByThreshold(matches []match.Match, threshold float64) []match.Match {
	kept := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		if m.Score() >= threshold {
			kept = append(kept, m)
		}
	}
	return kept
}

// sortByScore orders matches by descending score; ties keep catalog order.
func sortByScore(matches []match.Match) []match.Match {
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score() > matches[j].Score()
	})
	return matches
}

// keywordFallback selects outfits where any query term is a substring of the
// occasion, the style, or any item. Survivors all get the same low-confidence
// score and stay in catalog order.
func keywordFallback(outfits []outfit.Outfit, terms []string) []match.Match {
	var matches []match.Match
	for _, o := range outfits {
		if anyTermMatches(o, terms) {
			matches = append(matches, match.New(o, fallbackScore))
		}
	}
	return matches
}

func anyTermMatches(o outfit.Outfit, terms []string) bool {
	occasion := strings.ToLower(o.Occasion())
	style := strings.ToLower(o.Style())
	items := o.Items()

	for _, term := range terms {
		if strings.Contains(occasion, term) || strings.Contains(style, term) {
			return true
		}
		for _, it := range items {
			if strings.Contains(strings.ToLower(it), term) {
				return true
			}
		}
	}
	return false
}
