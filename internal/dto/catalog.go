package dto

import (
	"time"

	"card-advisor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CardResponse is the public view of a catalog card
type CardResponse struct {
	ID                 uuid.UUID               `json:"id"`
	CardName           string                  `json:"cardName"`
	Bank               string                  `json:"bank"`
	CardType           string                  `json:"cardType"`
	Variant            string                  `json:"variant,omitempty"`
	Network            []string                `json:"network"`
	Status             int                     `json:"status"`
	AnnualFee          decimal.Decimal         `json:"annualFee"`
	WaiverOnSpend      *decimal.Decimal        `json:"waiverOnSpend,omitempty"`
	EffectiveAnnualFee decimal.Decimal         `json:"effectiveAnnualFee"`
	ImageURL           string                  `json:"imageUrl,omitempty"`
	ApplyURL           string                  `json:"applyUrl,omitempty"`
	Summary            string                  `json:"summary,omitempty"`
	PromotionalCard    bool                    `json:"promotionalCard"`
	PromotionalOrder   int                     `json:"promotionalOrder"`
	CashbackRules      []CashbackRuleResponse  `json:"cashbackRules"`
	DefaultCashback    *decimal.Decimal        `json:"defaultCashback,omitempty"`
	WelcomeBenefits    []models.WelcomeBenefit `json:"welcomeBenefits"`
	MilestoneBonuses   []models.MilestoneBonus `json:"milestoneBonuses"`
	CardBenefits       []models.CardBenefit    `json:"cardBenefits"`
	CreatedAt          time.Time               `json:"createdAt"`
}

// CashbackRuleResponse is one earning rule of a card
type CashbackRuleResponse struct {
	ID              uuid.UUID        `json:"id"`
	Category        string           `json:"category,omitempty"`
	Subcategory     string           `json:"subcategory,omitempty"`
	Platform        string           `json:"platform,omitempty"`
	Brand           []string         `json:"brand,omitempty"`
	SpendingType    string           `json:"spendingType,omitempty"`
	CashbackPercent decimal.Decimal  `json:"cashbackPercent"`
	MonthlyCap      *decimal.Decimal `json:"monthlyCap,omitempty"`
	MaxPerTxn       *decimal.Decimal `json:"maxCashbackPerTransaction,omitempty"`
}

// CardListResponse wraps a card listing
type CardListResponse struct {
	Cards []CardResponse `json:"cards"`
	Total int            `json:"total"`
}

// NewCardResponse maps a catalog card to its public view
func NewCardResponse(card *models.Card) CardResponse {
	rules := make([]CashbackRuleResponse, 0, len(card.CashbackRules))
	for _, rule := range card.CashbackRules {
		rules = append(rules, CashbackRuleResponse{
			ID:              rule.ID,
			Category:        rule.Category,
			Subcategory:     rule.Subcategory,
			Platform:        rule.Platform,
			Brand:           rule.Brand.Values(),
			SpendingType:    rule.SpendingType,
			CashbackPercent: rule.CashbackPercent,
			MonthlyCap:      rule.MonthlyCap,
			MaxPerTxn:       rule.MaxCashbackPerTxn,
		})
	}

	response := CardResponse{
		ID:                 card.ID,
		CardName:           card.CardName,
		Bank:               card.Bank.Name,
		CardType:           card.CardType,
		Variant:            card.Variant,
		Network:            []string(card.Network),
		Status:             card.Status,
		AnnualFee:          card.AnnualFee,
		WaiverOnSpend:      card.WaiverOnSpend,
		EffectiveAnnualFee: card.EffectiveAnnualFee,
		ImageURL:           card.ImageURL,
		ApplyURL:           card.ApplyURL,
		Summary:            card.Summary,
		PromotionalCard:    card.PromotionalCard,
		PromotionalOrder:   card.PromotionalOrder,
		CashbackRules:      rules,
		WelcomeBenefits:    card.WelcomeBenefits,
		MilestoneBonuses:   card.MilestoneBonuses,
		CardBenefits:       card.CardBenefits,
		CreatedAt:          card.CreatedAt,
	}
	if response.Network == nil {
		response.Network = []string{}
	}
	if card.DefaultCashback != nil {
		percent := card.DefaultCashback.CashbackPercent
		response.DefaultCashback = &percent
	}
	return response
}

// NewCardListResponse maps a card listing
func NewCardListResponse(cards []models.Card) CardListResponse {
	responses := make([]CardResponse, 0, len(cards))
	for i := range cards {
		responses = append(responses, NewCardResponse(&cards[i]))
	}
	return CardListResponse{Cards: responses, Total: len(responses)}
}

// PromotionalBannerResponse is a homepage banner with its linked card, if any
type PromotionalBannerResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Color       string        `json:"color"`
	Icon        string        `json:"icon,omitempty"`
	Order       int           `json:"order"`
	Card        *CardResponse `json:"card,omitempty"`
	LinkURL     string        `json:"linkUrl,omitempty"`
	Description string        `json:"description,omitempty"`
}

// NewPromotionalBannerResponses maps banners in the order given
func NewPromotionalBannerResponses(banners []models.PromotionalBanner) []PromotionalBannerResponse {
	responses := make([]PromotionalBannerResponse, 0, len(banners))
	for i := range banners {
		banner := &banners[i]
		response := PromotionalBannerResponse{
			ID:          banner.ID,
			Title:       banner.DisplayTitle(),
			Color:       banner.Color,
			Icon:        banner.Icon,
			Order:       banner.Order,
			LinkURL:     banner.LinkURL,
			Description: banner.Description,
		}
		if banner.Card != nil {
			card := NewCardResponse(banner.Card)
			response.Card = &card
		}
		responses = append(responses, response)
	}
	return responses
}
