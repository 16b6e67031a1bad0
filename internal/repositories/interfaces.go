package repositories

import (
	"context"

	"card-advisor/internal/models"

	"github.com/google/uuid"
)

// CardRepositoryInterface defines the contract for card catalog reads
type CardRepositoryInterface interface {
	// GetCatalog returns every active card with its rules and benefits, in storage order
	GetCatalog(ctx context.Context) ([]models.Card, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error)
	List(ctx context.Context, filters models.CardFilters) ([]models.Card, error)
	Search(ctx context.Context, term string) ([]models.Card, error)
	GetByNames(ctx context.Context, names []string) ([]models.Card, error)
	GetPromotional(ctx context.Context) ([]models.Card, error)
	GetPromotionalBanners(ctx context.Context) ([]models.PromotionalBanner, error)
}
