package services

import (
	"card-advisor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func dec(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func newTestCard(name string, fee int64, rules ...models.CashbackRule) models.Card {
	id := uuid.New()
	for i := range rules {
		rules[i].ID = uuid.New()
		rules[i].CardID = id
		rules[i].Position = i
	}
	return models.Card{
		ID:            id,
		CardName:      name,
		CardType:      models.DefaultCardType,
		Status:        models.CardStatusActive,
		AnnualFee:     decimal.NewFromInt(fee),
		Bank:          models.Bank{Name: "Test Bank"},
		CashbackRules: rules,
	}
}

func withDefault(card models.Card, percent string) models.Card {
	card.DefaultCashback = &models.DefaultCashback{CardID: card.ID, CashbackPercent: dec(percent)}
	return card
}

func withWelcome(card models.Card, value models.BenefitValue) models.Card {
	card.WelcomeBenefits = append(card.WelcomeBenefits, models.WelcomeBenefit{CardID: card.ID, BenefitType: "voucher", Value: value})
	return card
}

func categoryRule(category, percent string) models.CashbackRule {
	return models.CashbackRule{Category: category, CashbackPercent: dec(percent)}
}

func spend(category string, amount int64) models.SpendEntry {
	return models.SpendEntry{Category: category, Amount: decimal.NewFromInt(amount)}
}
