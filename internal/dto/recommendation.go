package dto

import (
	"strings"

	"card-advisor/internal/models"

	"github.com/shopspring/decimal"
)

// DefaultGroupSize is used when the request states no card count preference
const DefaultGroupSize = 1

// SpendEntryRequest is one spending entry of a recommendation request
type SpendEntryRequest struct {
	Name         string          `json:"name" validate:"omitempty,max=200"`
	Amount       decimal.Decimal `json:"amount" validate:"gte=0"`
	Category     string          `json:"category" validate:"omitempty,max=100"`
	Subcategory  string          `json:"subcategory" validate:"omitempty,max=100"`
	Brand        string          `json:"brand" validate:"omitempty,max=100"`
	Platform     string          `json:"platform" validate:"omitempty,max=100"`
	Channel      string          `json:"channel" validate:"omitempty,spending_channel"`
	SpendingType string          `json:"spendingType" validate:"omitempty,spending_channel"`
}

// Preferences carries the optional card count preferences. desiredCardCount wins over numNewCards.
type Preferences struct {
	DesiredCardCount *int `json:"desiredCardCount" validate:"omitempty,gte=0"`
	NumNewCards      *int `json:"numNewCards" validate:"omitempty,gte=0"`
}

// RecommendationRequest is the body of POST /api/v1/recommend
type RecommendationRequest struct {
	Spending    []SpendEntryRequest `json:"spending" validate:"max=100,dive"`
	Preferences *Preferences        `json:"preferences"`
}

// RecommendationResponse is the data payload of a recommendation answer
type RecommendationResponse struct {
	Recommendations    []models.RecommendationResult `json:"recommendations"`
	SpendToCardSavings []models.SpendCardSavings     `json:"spendToCardSavings"`
	GroupSize          int                           `json:"groupSize"`
}

// GroupSize resolves the requested group size
func (r *RecommendationRequest) GroupSize() int {
	if r.Preferences == nil {
		return DefaultGroupSize
	}
	if r.Preferences.DesiredCardCount != nil {
		return *r.Preferences.DesiredCardCount
	}
	if r.Preferences.NumNewCards != nil {
		return *r.Preferences.NumNewCards
	}
	return DefaultGroupSize
}

// SpendEntries converts the request entries into core spend entries in request order
func (r *RecommendationRequest) SpendEntries() []models.SpendEntry {
	entries := make([]models.SpendEntry, 0, len(r.Spending))
	for _, spend := range r.Spending {
		entries = append(entries, spend.ToModel())
	}
	return entries
}

// ToModel trims descriptors and normalizes the channel to lower case
func (s SpendEntryRequest) ToModel() models.SpendEntry {
	return models.SpendEntry{
		Name:         strings.TrimSpace(s.Name),
		Amount:       s.Amount,
		Category:     strings.TrimSpace(s.Category),
		Subcategory:  strings.TrimSpace(s.Subcategory),
		Brand:        strings.TrimSpace(s.Brand),
		Platform:     strings.TrimSpace(s.Platform),
		Channel:      strings.ToLower(strings.TrimSpace(s.Channel)),
		SpendingType: strings.ToLower(strings.TrimSpace(s.SpendingType)),
	}
}

// NewRecommendationResponse builds the response payload from a service report
func NewRecommendationResponse(report *models.RecommendationReport) RecommendationResponse {
	return RecommendationResponse{
		Recommendations:    report.Recommendations,
		SpendToCardSavings: report.SpendToCardSavings,
		GroupSize:          report.GroupSize,
	}
}
