package services

import (
	"context"
	"time"

	"card-advisor/internal/models"

	"github.com/google/uuid"
)

// CatalogServiceInterface provides read access to the card catalog
type CatalogServiceInterface interface {
	// LoadCatalog returns the active cards the recommender works on
	LoadCatalog(ctx context.Context) ([]models.Card, error)

	ListCategories(ctx context.Context) ([]string, error)
	ListSubcategories(ctx context.Context, category string) ([]string, error)
	ListBrands(ctx context.Context, category, subcategory string) ([]string, error)

	ListCards(ctx context.Context, filters models.CardFilters) ([]models.Card, error)
	GetCard(ctx context.Context, id uuid.UUID) (*models.Card, error)
	ListPromotionalCards(ctx context.Context) ([]models.Card, error)
	ListPromotionalBanners(ctx context.Context) ([]models.PromotionalBanner, error)
	// SearchCards matches name, bank, type and network; a blank query matches nothing
	SearchCards(ctx context.Context, query string) ([]models.Card, error)
	CompareCards(ctx context.Context, names []string) ([]models.Card, error)
}

// RecommendationServiceInterface answers recommendation requests
type RecommendationServiceInterface interface {
	Recommend(ctx context.Context, spending []models.SpendEntry, groupSize int) (*models.RecommendationReport, error)
	MaxGroupSize() int
}

// FormSchemaServiceInterface serves the static front-end form definitions
type FormSchemaServiceInterface interface {
	GetFormSchema(name string) (*models.FormSchema, error)
	FormNames() []string
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}

type RecommendationLoggerInterface interface {
	LogRecommendationStarted(ctx context.Context, spendCount, groupSize int)
	LogRecommendationCompleted(ctx context.Context, resultCount, catalogSize int, durationMs int64)
	LogRecommendationFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogCatalogLoaded(ctx context.Context, cardCount int, durationMs int64)
	LogCatalogLoadFailed(ctx context.Context, errorMsg string)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
