package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/closetiq/outfitsearch/internal/domain/outfit"
)

// store is the consumer interface for catalog persistence (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Del(ctx context.Context, key string) error
	Scan(ctx context.Context, pattern string) ([]string, error)
	IncrBy(ctx context.Context, key string, val int64) (int64, error)
}

// Repo implements the catalog store boundary: read-all, insert, delete-all.
// Each outfit lives under <prefix>outfit:<seq>; seq comes from an INCR
// counter so All returns outfits in insertion order, which the ranking
// pipeline relies on for tie-breaking and fallback ordering.
type Repo struct {
	store  store
	prefix string
}

// New creates a catalog repository with the given key prefix.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, prefix: keyPrefix}
}

// All returns every catalog outfit in insertion order.
func (r *Repo) All(ctx context.Context) ([]outfit.Outfit, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"outfit:*")
	if err != nil {
		return nil, fmt.Errorf("scan outfits: %w", err)
	}

	dtos := make([]outfitDTO, 0, len(keys))
	for _, key := range keys {
		raw, err := r.store.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("get %s: %w", key, err)
		}
		var dto outfitDTO
		if err := json.Unmarshal(raw, &dto); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", key, err)
		}
		dtos = append(dtos, dto)
	}

	sort.Slice(dtos, func(i, j int) bool { return dtos[i].Seq < dtos[j].Seq })

	outfits := make([]outfit.Outfit, len(dtos))
	for i, dto := range dtos {
		outfits[i] = dto.toDomain()
	}
	return outfits, nil
}

// Insert appends an outfit to the catalog.
func (r *Repo) Insert(ctx context.Context, o outfit.Outfit) error {
	seq, err := r.store.IncrBy(ctx, r.counterKey(), 1)
	if err != nil {
		return fmt.Errorf("next seq: %w", err)
	}

	data, err := json.Marshal(fromDomain(o, seq))
	if err != nil {
		return fmt.Errorf("marshal outfit: %w", err)
	}

	key := fmt.Sprintf("%soutfit:%d", r.prefix, seq)
	if err := r.store.Set(ctx, key, data); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// DeleteAll removes every outfit and resets the sequence counter.
func (r *Repo) DeleteAll(ctx context.Context) error {
	keys, err := r.store.Scan(ctx, r.prefix+"outfit:*")
	if err != nil {
		return fmt.Errorf("scan outfits: %w", err)
	}
	for _, key := range keys {
		if err := r.store.Del(ctx, key); err != nil {
			return fmt.Errorf("del %s: %w", key, err)
		}
	}
	if err := r.store.Del(ctx, r.counterKey()); err != nil {
		return fmt.Errorf("del %s: %w", r.counterKey(), err)
	}
	return nil
}

// Count returns the number of stored outfits.
func (r *Repo) Count(ctx context.Context) (int, error) {
	keys, err := r.store.Scan(ctx, r.prefix+"outfit:*")
	if err != nil {
		return 0, fmt.Errorf("scan outfits: %w", err)
	}
	return len(keys), nil
}

func (r *Repo) counterKey() string {
	return r.prefix + "outfit_seq"
}
