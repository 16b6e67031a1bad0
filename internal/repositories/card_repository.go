package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"card-advisor/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrCardNotFound = errors.New("card not found")

const (
	cardOrder = "cards.created_at ASC, cards.id ASC"
	joinBanks = "JOIN banks ON banks.id = cards.bank_id"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// containsPattern builds a lowercase LIKE pattern matching s anywhere, with wildcards in s taken literally
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// cardRepository implements CardRepositoryInterface on gorm
type cardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a new card repository
func NewCardRepository(db *gorm.DB) CardRepositoryInterface {
	return &cardRepository{
		db: db,
	}
}

// withCatalog preloads everything the recommender reads. Rules keep their stored position.
func (r *cardRepository) withCatalog(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Bank").
		Preload("CashbackRules", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC, id ASC")
		}).
		Preload("DefaultCashback").
		Preload("WelcomeBenefits").
		Preload("MilestoneBonuses").
		Preload("CardBenefits")
}

// GetCatalog retrieves all active cards
func (r *cardRepository) GetCatalog(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := r.withCatalog(ctx).
		Where("cards.status = ?", models.CardStatusActive).
		Order(cardOrder).
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to load card catalog: %w", err)
	}
	return cards, nil
}

// GetByID retrieves a single card with its rules and benefits
func (r *cardRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Card, error) {
	var card models.Card
	if err := r.withCatalog(ctx).Where("cards.id = ?", id).First(&card).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	return &card, nil
}

// List retrieves cards matching the filters. Bank, type and network match case-insensitively.
func (r *cardRepository) List(ctx context.Context, filters models.CardFilters) ([]models.Card, error) {
	query := r.withCatalog(ctx).Model(&models.Card{})

	if filters.Bank != "" {
		query = query.Joins(joinBanks).
			Where("LOWER(banks.name) = ?", strings.ToLower(filters.Bank))
	}
	if filters.CardType != "" {
		query = query.Where("LOWER(cards.card_type) = ?", strings.ToLower(filters.CardType))
	}
	if filters.Network != "" {
		// network is a JSON array of names; match one whole element
		query = query.Where(`LOWER(cards.network) LIKE ? ESCAPE '\'`, containsPattern(`"`+filters.Network+`"`))
	}
	if filters.MinFee != nil {
		query = query.Where("cards.annual_fee >= ?", *filters.MinFee)
	}
	if filters.MaxFee != nil {
		query = query.Where("cards.annual_fee <= ?", *filters.MaxFee)
	}
	if filters.MinEffectiveFee != nil {
		query = query.Where("cards.effective_annual_fee >= ?", *filters.MinEffectiveFee)
	}
	if filters.MaxEffectiveFee != nil {
		query = query.Where("cards.effective_annual_fee <= ?", *filters.MaxEffectiveFee)
	}
	if filters.MinCashback != nil {
		query = query.Where(
			"(EXISTS (SELECT 1 FROM default_cashbacks dc WHERE dc.card_id = cards.id AND dc.cashback_percent >= ?)"+
				" OR EXISTS (SELECT 1 FROM cashback_rules cr WHERE cr.card_id = cards.id AND cr.cashback_percent >= ?))",
			*filters.MinCashback, *filters.MinCashback,
		)
	}
	if filters.Status != nil {
		query = query.Where("cards.status = ?", *filters.Status)
	} else {
		query = query.Where("cards.status = ?", models.CardStatusActive)
	}

	var cards []models.Card
	if err := query.Order(cardOrder).Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return cards, nil
}

// Search retrieves active cards whose name, bank, type or network contains the term, ignoring case
func (r *cardRepository) Search(ctx context.Context, term string) ([]models.Card, error) {
	pattern := containsPattern(term)

	var cards []models.Card
	if err := r.withCatalog(ctx).
		Joins(joinBanks).
		Where("cards.status = ?", models.CardStatusActive).
		Where(`(LOWER(cards.card_name) LIKE @p ESCAPE '\' OR LOWER(banks.name) LIKE @p ESCAPE '\'`+
			` OR LOWER(cards.card_type) LIKE @p ESCAPE '\' OR LOWER(cards.network) LIKE @p ESCAPE '\')`,
			sql.Named("p", pattern)).
		Order(cardOrder).
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to search cards: %w", err)
	}
	return cards, nil
}

// GetByNames retrieves active cards whose name is one of names
func (r *cardRepository) GetByNames(ctx context.Context, names []string) ([]models.Card, error) {
	if len(names) == 0 {
		return []models.Card{}, nil
	}

	var cards []models.Card
	if err := r.withCatalog(ctx).
		Where("cards.card_name IN ? AND cards.status = ?", names, models.CardStatusActive).
		Order(cardOrder).
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get cards by name: %w", err)
	}
	return cards, nil
}

// GetPromotional retrieves active promotional cards by their promotional order
func (r *cardRepository) GetPromotional(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := r.withCatalog(ctx).
		Where("cards.promotional_card = ? AND cards.status = ?", true, models.CardStatusActive).
		Order("cards.promotional_order ASC, " + cardOrder).
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("failed to get promotional cards: %w", err)
	}
	return cards, nil
}

// GetPromotionalBanners retrieves every banner by display order, with the linked card and its bank
func (r *cardRepository) GetPromotionalBanners(ctx context.Context) ([]models.PromotionalBanner, error) {
	var banners []models.PromotionalBanner
	if err := r.db.WithContext(ctx).
		Preload("Card").
		Preload("Card.Bank").
		Order("display_order ASC, id ASC").
		Find(&banners).Error; err != nil {
		return nil, fmt.Errorf("failed to get promotional banners: %w", err)
	}
	return banners, nil
}
