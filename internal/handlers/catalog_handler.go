package handlers

import (
	stderrors "errors"
	"strings"

	"card-advisor/internal/dto"
	"card-advisor/internal/errors"
	"card-advisor/internal/models"
	"card-advisor/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CatalogHandler serves catalog lookups and card browsing
type CatalogHandler struct {
	catalog services.CatalogServiceInterface
	logger  services.RecommendationLoggerInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	catalog services.CatalogServiceInterface,
	logger services.RecommendationLoggerInterface,
) *CatalogHandler {
	return &CatalogHandler{
		catalog: catalog,
		logger:  logger,
	}
}

// ListCategories returns the distinct rule categories
// @Summary List categories
// @Tags Catalog
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]string}
// @Failure 503 {object} errors.ErrorResponse "CATALOG_001 - Card catalog unavailable"
// @Router /categories [get]
func (h *CatalogHandler) ListCategories(c echo.Context) error {
	categories, err := h.catalog.ListCategories(c.Request().Context())
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, categories)
}

// ListSubcategories returns the distinct subcategories of a category
// @Summary List subcategories
// @Tags Catalog
// @Produce json
// @Param category query string true "Category"
// @Success 200 {object} SuccessResponse{data=[]string}
// @Failure 400 {object} errors.ErrorResponse "CATALOG_002 - Category is required"
// @Router /subcategories [get]
func (h *CatalogHandler) ListSubcategories(c echo.Context) error {
	subcategories, err := h.catalog.ListSubcategories(c.Request().Context(), c.QueryParam("category"))
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, subcategories)
}

// ListBrands returns the distinct brands, optionally narrowed by category and subcategory
// @Summary List brands
// @Tags Catalog
// @Produce json
// @Param category query string false "Category"
// @Param subcategory query string false "Subcategory"
// @Success 200 {object} SuccessResponse{data=[]string}
// @Router /brands [get]
func (h *CatalogHandler) ListBrands(c echo.Context) error {
	brands, err := h.catalog.ListBrands(c.Request().Context(), c.QueryParam("category"), c.QueryParam("subcategory"))
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, brands)
}

// ListCards lists active cards
// @Summary List cards
// @Tags Cards
// @Produce json
// @Param bank query string false "Bank name"
// @Param card_type query string false "Card type"
// @Param network query string false "Card network, e.g. Visa"
// @Param min_fee query number false "Minimum annual fee"
// @Param max_fee query number false "Maximum annual fee"
// @Param min_effective_fee query number false "Minimum effective annual fee"
// @Param max_effective_fee query number false "Maximum effective annual fee"
// @Param min_cashback query number false "Minimum cashback percent of the default rate or any rule"
// @Success 200 {object} SuccessResponse{data=dto.CardListResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_003 - Invalid filter"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Filter range out of order"
// @Router /cards [get]
func (h *CatalogHandler) ListCards(c echo.Context) error {
	ctx := c.Request().Context()

	filters, violation := parseCardFilters(c)
	if violation != nil {
		if violation.code == errors.ValidationInvalidFormat {
			h.logger.LogValidationFailure(ctx, "list_cards", violation.detail)
		}
		return SendError(c, violation.code, errors.WithDetails(violation.detail))
	}

	cards, err := h.catalog.ListCards(ctx, filters)
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewCardListResponse(cards))
}

// filterViolation is a rejected listing filter and the code it is reported with
type filterViolation struct {
	code   errors.ErrorCode
	detail string
}

func parseCardFilters(c echo.Context) (models.CardFilters, *filterViolation) {
	filters := models.CardFilters{
		Bank:     strings.TrimSpace(c.QueryParam("bank")),
		CardType: strings.TrimSpace(c.QueryParam("card_type")),
		Network:  strings.TrimSpace(c.QueryParam("network")),
	}

	var violation *filterViolation
	if filters.MinFee, filters.MaxFee, violation = decimalRange(c, "min_fee", "max_fee"); violation != nil {
		return filters, violation
	}
	if filters.MinEffectiveFee, filters.MaxEffectiveFee, violation = decimalRange(c, "min_effective_fee", "max_effective_fee"); violation != nil {
		return filters, violation
	}

	minCashback, err := getDecimalParam(c, "min_cashback")
	if err != nil {
		return filters, &filterViolation{code: errors.ValidationInvalidFormat, detail: err.Error()}
	}
	filters.MinCashback = minCashback
	return filters, nil
}

// decimalRange reads an optional lower and upper bound; the lower may not exceed the upper
func decimalRange(c echo.Context, minKey, maxKey string) (*decimal.Decimal, *decimal.Decimal, *filterViolation) {
	low, err := getDecimalParam(c, minKey)
	if err != nil {
		return nil, nil, &filterViolation{code: errors.ValidationInvalidFormat, detail: err.Error()}
	}
	high, err := getDecimalParam(c, maxKey)
	if err != nil {
		return nil, nil, &filterViolation{code: errors.ValidationInvalidFormat, detail: err.Error()}
	}
	if low != nil && high != nil && low.GreaterThan(*high) {
		return nil, nil, &filterViolation{code: errors.ValidationOutOfRange, detail: minKey + " cannot exceed " + maxKey}
	}
	return low, high, nil
}

// SearchCards finds active cards by name, bank, type or network
// @Summary Search cards
// @Tags Cards
// @Produce json
// @Param q query string false "Search text; blank returns no cards"
// @Success 200 {object} SuccessResponse{data=dto.CardListResponse}
// @Router /cards/search [get]
func (h *CatalogHandler) SearchCards(c echo.Context) error {
	cards, err := h.catalog.SearchCards(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewCardListResponse(cards))
}

// CompareCards returns the named cards side by side
// @Summary Compare cards
// @Tags Cards
// @Produce json
// @Param cards query []string false "Card names" collectionFormat(multi)
// @Success 200 {object} SuccessResponse{data=dto.CardListResponse}
// @Router /cards/compare [get]
func (h *CatalogHandler) CompareCards(c echo.Context) error {
	cards, err := h.catalog.CompareCards(c.Request().Context(), c.QueryParams()["cards"])
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewCardListResponse(cards))
}

// GetCard returns one card with its rules and benefits
// @Summary Get card
// @Tags Cards
// @Produce json
// @Param id path string true "Card ID"
// @Success 200 {object} SuccessResponse{data=dto.CardResponse}
// @Failure 400 {object} errors.ErrorResponse "CARD_002 - Invalid card ID"
// @Failure 404 {object} errors.ErrorResponse "CARD_001 - Card not found"
// @Router /cards/{id} [get]
func (h *CatalogHandler) GetCard(c echo.Context) error {
	id, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.CardInvalidID)
	}

	card, err := h.catalog.GetCard(c.Request().Context(), id)
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewCardResponse(card))
}

// ListPromotionalCards lists the promoted cards in promotion order
// @Summary List promotional cards
// @Tags Cards
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.CardListResponse}
// @Router /cards/promotional [get]
func (h *CatalogHandler) ListPromotionalCards(c echo.Context) error {
	cards, err := h.catalog.ListPromotionalCards(c.Request().Context())
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewCardListResponse(cards))
}

// ListPromotionalBanners lists the homepage banners in display order
// @Summary List promotional banners
// @Tags Cards
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]dto.PromotionalBannerResponse}
// @Router /cards/promotional-banners [get]
func (h *CatalogHandler) ListPromotionalBanners(c echo.Context) error {
	banners, err := h.catalog.ListPromotionalBanners(c.Request().Context())
	if err != nil {
		return h.sendCatalogError(c, err)
	}
	return SendData(c, dto.NewPromotionalBannerResponses(banners))
}

func (h *CatalogHandler) sendCatalogError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrCategoryRequired):
		h.logger.LogValidationFailure(c.Request().Context(), "list_subcategories", err.Error())
		return SendError(c, errors.CatalogCategoryRequired)
	case stderrors.Is(err, services.ErrCardNotFound):
		return SendError(c, errors.CardNotFound)
	case stderrors.Is(err, services.ErrCatalogUnavailable):
		return SendError(c, errors.CatalogUnavailable)
	default:
		return SendSystemError(c, err)
	}
}
