package domain

import "errors"

var (
	// ErrInvalidQuery signals an empty or whitespace-only search query.
	ErrInvalidQuery = errors.New("invalid query")
	// ErrEmbeddingUnavailable signals an embedding provider failure or timeout.
	ErrEmbeddingUnavailable = errors.New("embedding unavailable")
	// ErrCatalogUnavailable signals a catalog storage failure.
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	// ErrSeedIncomplete signals that seeding aborted before inserting every reference outfit.
	ErrSeedIncomplete = errors.New("seed incomplete")
)
