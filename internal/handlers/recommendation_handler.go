package handlers

import (
	stderrors "errors"
	"fmt"

	"card-advisor/internal/dto"
	"card-advisor/internal/errors"
	"card-advisor/internal/services"

	"github.com/labstack/echo/v4"
)

// RecommendationHandler handles recommendation requests
type RecommendationHandler struct {
	service services.RecommendationServiceInterface
	logger  services.RecommendationLoggerInterface
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(
	service services.RecommendationServiceInterface,
	logger services.RecommendationLoggerInterface,
) *RecommendationHandler {
	return &RecommendationHandler{
		service: service,
		logger:  logger,
	}
}

// Recommend ranks cards and card groups for a spending profile
// @Summary Recommend cards
// @Description Returns up to 5 single cards or card groups ordered by net annual benefit
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body dto.RecommendationRequest true "Spending profile and preferences"
// @Success 200 {object} SuccessResponse{data=dto.RecommendationResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid spending profile"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Card count out of range"
// @Failure 503 {object} errors.ErrorResponse "CATALOG_001 - Card catalog unavailable"
// @Router /recommend [post]
func (h *RecommendationHandler) Recommend(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.RecommendationRequest
	if err := c.Bind(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "recommend", err.Error())
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}

	if err := c.Validate(&req); err != nil {
		h.logger.LogValidationFailure(ctx, "recommend", err.Error())
		return err
	}

	groupSize := req.GroupSize()
	report, err := h.service.Recommend(ctx, req.SpendEntries(), groupSize)
	if err != nil {
		switch {
		case stderrors.Is(err, services.ErrGroupSizeTooLarge):
			return SendError(c, errors.ValidationOutOfRange,
				errors.WithDetails(fmt.Sprintf("desiredCardCount: must be at most %d", h.service.MaxGroupSize())))
		case stderrors.Is(err, services.ErrInvalidGroupSize):
			return SendError(c, errors.ValidationOutOfRange,
				errors.WithDetails("desiredCardCount: must be at least 0"))
		case stderrors.Is(err, services.ErrCatalogUnavailable):
			return SendError(c, errors.CatalogUnavailable)
		default:
			return SendSystemError(c, err)
		}
	}

	return SendData(c, dto.NewRecommendationResponse(report))
}
