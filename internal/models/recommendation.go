package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RecommendationTypeIndividual = "individual"
	RecommendationTypeGroup      = "group"
)

// CardRef identifies a card inside a recommendation payload
type CardRef struct {
	ID        uuid.UUID       `json:"id"`
	CardName  string          `json:"cardName"`
	BankName  string          `json:"bank"`
	CardType  string          `json:"cardType"`
	AnnualFee decimal.Decimal `json:"annualFee"`
	ImageURL  string          `json:"imageUrl,omitempty"`
	ApplyURL  string          `json:"applyUrl,omitempty"`
}

// BenefitBreakdown is the net annual benefit of one card for a given cashback total
type BenefitBreakdown struct {
	TotalCashback    decimal.Decimal `json:"totalCashback"`
	AnnualFee        decimal.Decimal `json:"annualFee"`
	WelcomeBenefits  decimal.Decimal `json:"welcomeBenefits"`
	MilestoneBonuses decimal.Decimal `json:"milestoneBonuses"`
	OtherBenefits    decimal.Decimal `json:"otherBenefits"`
	NetBenefit       decimal.Decimal `json:"netBenefit"`
}

// SpendSavings is one row of a recommendation breakdown
type SpendSavings struct {
	SpendEntry      SpendEntry      `json:"spendEntry"`
	SpendLabel      string          `json:"spendLabel"`
	BestCardID      *uuid.UUID      `json:"bestCardId"`
	BestCardName    string          `json:"bestCardName,omitempty"`
	Savings         decimal.Decimal `json:"savings"`
	CashbackPercent decimal.Decimal `json:"cashbackPercent"`
}

// RecommendationResult is a single recommended card or card group
type RecommendationResult struct {
	Type            string                         `json:"type"`
	Cards           []CardRef                      `json:"cards"`
	TotalSavings    decimal.Decimal                `json:"totalSavings"`
	SpendCoverage   decimal.Decimal                `json:"spendCoverage"`
	NetBenefit      decimal.Decimal                `json:"netBenefit"`
	CardNetBenefits map[uuid.UUID]BenefitBreakdown `json:"cardNetBenefits"`
	Breakdown       []SpendSavings                 `json:"breakdown"`
	Reasoning       string                         `json:"reasoning"`
}

// CardIDs returns the member card ids in payload order
func (r *RecommendationResult) CardIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(r.Cards))
	for _, card := range r.Cards {
		ids = append(ids, card.ID)
	}
	return ids
}

// CardSavings is what a single card would save on one spend entry
type CardSavings struct {
	CardID          uuid.UUID       `json:"cardId"`
	CardName        string          `json:"cardName"`
	Savings         decimal.Decimal `json:"savings"`
	CashbackPercent decimal.Decimal `json:"cashbackPercent"`
}

// SpendCardSavings compares every catalog card on one spend entry
type SpendCardSavings struct {
	SpendEntryIndex int             `json:"spendEntryIndex"`
	SpendLabel      string          `json:"spendLabel"`
	Category        string          `json:"category"`
	Amount          decimal.Decimal `json:"amount"`
	CardSavings     []CardSavings   `json:"cardSavings"`
}

// RecommendationReport is the full answer to a recommendation request
type RecommendationReport struct {
	Recommendations    []RecommendationResult `json:"recommendations"`
	SpendToCardSavings []SpendCardSavings     `json:"spendToCardSavings"`
	GroupSize          int                    `json:"groupSize"`
	CatalogSize        int                    `json:"catalogSize"`
}
