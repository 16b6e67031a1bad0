package services

import (
	"strings"

	"card-advisor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Match tiers in the order they are tried
const (
	MatchTierExact        = "exact"
	MatchTierSubcategory  = "subcategory"
	MatchTierCategory     = "category"
	MatchTierPlatform     = "platform"
	MatchTierSpendingType = "spending_type"
	MatchTierDefault      = "default"
)

var hundred = decimal.NewFromInt(100)

// MatchedRule is the rule, or default rate, that applies to a spend on a card
type MatchedRule struct {
	Tier            string
	RuleID          *uuid.UUID
	CashbackPercent decimal.Decimal
}

type ruleTier struct {
	name    string
	matches func(rule *models.CashbackRule, spend models.SpendEntry) bool
}

var ruleTiers = []ruleTier{
	{MatchTierExact, func(rule *models.CashbackRule, spend models.SpendEntry) bool {
		return rule.Brand.Matches(spend.Brand) && sameLabel(rule.Subcategory, spend.Subcategory)
	}},
	{MatchTierSubcategory, func(rule *models.CashbackRule, spend models.SpendEntry) bool {
		return sameLabel(rule.Subcategory, spend.Subcategory)
	}},
	{MatchTierCategory, func(rule *models.CashbackRule, spend models.SpendEntry) bool {
		return sameLabel(rule.Category, spend.Category)
	}},
	{MatchTierPlatform, func(rule *models.CashbackRule, spend models.SpendEntry) bool {
		return sameLabel(rule.Platform, spend.Platform)
	}},
	{MatchTierSpendingType, func(rule *models.CashbackRule, spend models.SpendEntry) bool {
		return sameLabel(rule.SpendingType, spend.ChannelOrType())
	}},
}

// BestRule finds the cashback rule of the card that applies to the spend.
// Tiers are tried from most to least specific and within a tier the first rule in
// stored order wins. A positive default rate applies when no rule matches; nil
// means the card earns nothing on this spend.
func BestRule(card *models.Card, spend models.SpendEntry) *MatchedRule {
	for _, tier := range ruleTiers {
		for i := range card.CashbackRules {
			rule := &card.CashbackRules[i]
			if tier.matches(rule, spend) {
				ruleID := rule.ID
				return &MatchedRule{
					Tier:            tier.name,
					RuleID:          &ruleID,
					CashbackPercent: rule.CashbackPercent,
				}
			}
		}
	}

	if card.DefaultCashback != nil && card.DefaultCashback.CashbackPercent.IsPositive() {
		return &MatchedRule{
			Tier:            MatchTierDefault,
			CashbackPercent: card.DefaultCashback.CashbackPercent,
		}
	}

	return nil
}

// SpendSavings returns what the card saves on the spend, rounded to two places, and the percent applied
func SpendSavings(card *models.Card, spend models.SpendEntry) (savings, percent decimal.Decimal) {
	matched := BestRule(card, spend)
	if matched == nil {
		return decimal.Zero, decimal.Zero
	}
	percent = matched.CashbackPercent
	savings = spend.Amount.Mul(percent).Div(hundred).Round(2)
	return savings, percent
}

// sameLabel compares catalog labels ignoring case; empty labels never match
func sameLabel(ruleValue, spendValue string) bool {
	if ruleValue == "" || spendValue == "" {
		return false
	}
	return strings.EqualFold(ruleValue, spendValue)
}
