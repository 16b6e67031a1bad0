package services

import (
	"card-advisor/internal/models"

	"github.com/shopspring/decimal"
)

// NetBenefit computes a card's net annual benefit for the cashback it earns.
// Every welcome benefit and milestone bonus is counted as achieved.
func NetBenefit(card *models.Card, totalCashback decimal.Decimal) models.BenefitBreakdown {
	welcome := decimal.Zero
	for _, benefit := range card.WelcomeBenefits {
		welcome = welcome.Add(models.ParseBenefitValue(benefit.Value))
	}

	milestones := decimal.Zero
	for _, bonus := range card.MilestoneBonuses {
		milestones = milestones.Add(decimal.NewFromInt(bonus.BonusValue))
	}

	other := decimal.Zero
	for _, benefit := range card.CardBenefits {
		other = other.Add(models.ParseBenefitValue(benefit.Value))
	}

	fee := card.AnnualCost()

	return models.BenefitBreakdown{
		TotalCashback:    totalCashback,
		AnnualFee:        fee,
		WelcomeBenefits:  welcome,
		MilestoneBonuses: milestones,
		OtherBenefits:    other,
		NetBenefit:       totalCashback.Add(welcome).Add(milestones).Add(other).Sub(fee),
	}
}
