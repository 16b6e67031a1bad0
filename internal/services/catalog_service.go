package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"card-advisor/internal/models"
	"card-advisor/internal/repositories"

	"github.com/google/uuid"
)

// CatalogServiceName labels logs and metrics about the catalog store
const CatalogServiceName = "card_catalog"

var (
	ErrCatalogUnavailable = errors.New("card catalog is unavailable")
	ErrCategoryRequired   = errors.New("category is required")
	ErrCardNotFound       = errors.New("card not found")
)

// CatalogService reads the card catalog through a circuit breaker
type CatalogService struct {
	cardRepo repositories.CardRepositoryInterface
	breaker  CircuitBreakerInterface
	metrics  MetricsRecorderInterface
	logger   RecommendationLoggerInterface
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	cardRepo repositories.CardRepositoryInterface,
	breaker CircuitBreakerInterface,
	metrics MetricsRecorderInterface,
	logger RecommendationLoggerInterface,
) CatalogServiceInterface {
	return &CatalogService{
		cardRepo: cardRepo,
		breaker:  breaker,
		metrics:  metrics,
		logger:   logger,
	}
}

// guard runs a catalog read unless the breaker is open. Store failures trip the
// breaker and surface as ErrCatalogUnavailable; not-found results do not count as failures.
func (s *CatalogService) guard(ctx context.Context, read func() error) error {
	if s.breaker.IsOpen() {
		s.metrics.IncrementCounter(MetricCatalogLoad, map[string]string{"status": "rejected"})
		return fmt.Errorf("%w: %w", ErrCatalogUnavailable, ErrCircuitBreakerOpen)
	}

	err := read()
	if err == nil || errors.Is(err, repositories.ErrCardNotFound) {
		s.breaker.RecordSuccess()
		return err
	}

	if ctx.Err() == nil {
		s.breaker.RecordFailure()
	}
	s.logger.LogCatalogLoadFailed(ctx, err.Error())
	s.metrics.IncrementCounter(MetricCatalogLoad, map[string]string{"status": "failed"})
	return fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
}

func (s *CatalogService) LoadCatalog(ctx context.Context) ([]models.Card, error) {
	start := time.Now()

	var cards []models.Card
	err := s.guard(ctx, func() error {
		var err error
		cards, err = s.cardRepo.GetCatalog(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}

	duration := time.Since(start)
	s.metrics.IncrementCounter(MetricCatalogLoad, map[string]string{"status": "success"})
	s.metrics.RecordProcessingTime(MetricCatalogLoadDuration, duration)
	s.metrics.RecordGauge(MetricCatalogSize, float64(len(cards)), nil)
	s.logger.LogCatalogLoaded(ctx, len(cards), duration.Milliseconds())

	return cards, nil
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	cards, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "category"})
	return DistinctCategories(cards), nil
}

func (s *CatalogService) ListSubcategories(ctx context.Context, category string) ([]string, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, ErrCategoryRequired
	}

	cards, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "subcategory"})
	return DistinctSubcategories(cards, category), nil
}

func (s *CatalogService) ListBrands(ctx context.Context, category, subcategory string) ([]string, error) {
	cards, err := s.LoadCatalog(ctx)
	if err != nil {
		return nil, err
	}
	s.metrics.IncrementCounter(MetricCatalogLookup, map[string]string{"kind": "brand"})
	return DistinctBrands(cards, strings.TrimSpace(category), strings.TrimSpace(subcategory)), nil
}

func (s *CatalogService) ListCards(ctx context.Context, filters models.CardFilters) ([]models.Card, error) {
	var cards []models.Card
	err := s.guard(ctx, func() error {
		var err error
		cards, err = s.cardRepo.List(ctx, filters)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CatalogService) GetCard(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	var card *models.Card
	err := s.guard(ctx, func() error {
		var err error
		card, err = s.cardRepo.GetByID(ctx, id)
		return err
	})
	if errors.Is(err, repositories.ErrCardNotFound) {
		return nil, ErrCardNotFound
	}
	if err != nil {
		return nil, err
	}
	return card, nil
}

func (s *CatalogService) ListPromotionalCards(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	err := s.guard(ctx, func() error {
		var err error
		cards, err = s.cardRepo.GetPromotional(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (s *CatalogService) ListPromotionalBanners(ctx context.Context) ([]models.PromotionalBanner, error) {
	var banners []models.PromotionalBanner
	err := s.guard(ctx, func() error {
		var err error
		banners, err = s.cardRepo.GetPromotionalBanners(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return banners, nil
}

func (s *CatalogService) SearchCards(ctx context.Context, query string) ([]models.Card, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []models.Card{}, nil
	}

	var cards []models.Card
	err := s.guard(ctx, func() error {
		var err error
		cards, err = s.cardRepo.Search(ctx, query)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}

// CompareCards returns the named cards. Blank and repeated names are dropped.
func (s *CatalogService) CompareCards(ctx context.Context, names []string) ([]models.Card, error) {
	wanted := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		wanted = append(wanted, name)
	}
	if len(wanted) == 0 {
		return []models.Card{}, nil
	}

	var cards []models.Card
	err := s.guard(ctx, func() error {
		var err error
		cards, err = s.cardRepo.GetByNames(ctx, wanted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cards, nil
}
