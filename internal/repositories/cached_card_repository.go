package repositories

import (
	"context"
	"fmt"
	"time"

	"card-advisor/internal/models"

	"github.com/dgraph-io/ristretto"
	"github.com/google/uuid"
)

const catalogCacheKey = "catalog"

// CacheSettings sizes the catalog cache
type CacheSettings struct {
	TTL         time.Duration
	NumCounters int64
	MaxCost     int64
	BufferItems int64
}

// cachedCardRepository keeps the active catalog snapshot in memory. Cached cards are
// shared between requests and must not be modified by callers.
type cachedCardRepository struct {
	next  CardRepositoryInterface
	cache *ristretto.Cache
	ttl   time.Duration
}

// NewCachedCardRepository wraps a card repository with a ristretto cache for catalog reads
func NewCachedCardRepository(next CardRepositoryInterface, settings CacheSettings) (CardRepositoryInterface, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: settings.NumCounters,
		MaxCost:     settings.MaxCost,
		BufferItems: settings.BufferItems,
		// the catalog is one entry of cost 1; item overhead must not count against MaxCost
		IgnoreInternalCost: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize catalog cache: %w", err)
	}

	return &cachedCardRepository{
		next:  next,
		cache: cache,
		ttl:   settings.TTL,
	}, nil
}

func (r *cachedCardRepository) GetCatalog(ctx context.Context) ([]models.Card, error) {
	if value, found := r.cache.Get(catalogCacheKey); found {
		if cards, ok := value.([]models.Card); ok {
			return cards, nil
		}
	}

	cards, err := r.next.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	r.cache.SetWithTTL(catalogCacheKey, cards, 1, r.ttl)
	r.cache.Wait()
	return cards, nil
}

func (r *cachedCardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	return r.next.GetByID(ctx, id)
}

func (r *cachedCardRepository) List(ctx context.Context, filters models.CardFilters) ([]models.Card, error) {
	return r.next.List(ctx, filters)
}

func (r *cachedCardRepository) Search(ctx context.Context, term string) ([]models.Card, error) {
	return r.next.Search(ctx, term)
}

func (r *cachedCardRepository) GetByNames(ctx context.Context, names []string) ([]models.Card, error) {
	return r.next.GetByNames(ctx, names)
}

func (r *cachedCardRepository) GetPromotional(ctx context.Context) ([]models.Card, error) {
	return r.next.GetPromotional(ctx)
}

func (r *cachedCardRepository) GetPromotionalBanners(ctx context.Context) ([]models.PromotionalBanner, error) {
	return r.next.GetPromotionalBanners(ctx)
}
