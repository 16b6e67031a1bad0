package services

import (
	"testing"

	"card-advisor/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestRule_Hierarchy(t *testing.T) {
	card := newTestCard("Hierarchy", 0,
		models.CashbackRule{SpendingType: "online", CashbackPercent: dec("1")},
		models.CashbackRule{Platform: "Amazon", CashbackPercent: dec("2")},
		models.CashbackRule{Category: "Shopping", CashbackPercent: dec("3")},
		models.CashbackRule{Subcategory: "E-commerce", CashbackPercent: dec("4")},
		models.CashbackRule{Subcategory: "E-commerce", Brand: models.BrandList{"Myntra", "Ajio"}, CashbackPercent: dec("5")},
	)
	card = withDefault(card, "0.5")

	tests := []struct {
		name    string
		spend   models.SpendEntry
		tier    string
		percent string
	}{
		{
			name:    "brand and subcategory",
			spend:   models.SpendEntry{Category: "Shopping", Subcategory: "E-commerce", Brand: "ajio", Platform: "Amazon", Channel: "online"},
			tier:    MatchTierExact,
			percent: "5",
		},
		{
			name:    "subcategory without brand",
			spend:   models.SpendEntry{Category: "Shopping", Subcategory: "E-commerce", Brand: "Nykaa"},
			tier:    MatchTierSubcategory,
			percent: "4",
		},
		{
			name:    "category",
			spend:   models.SpendEntry{Category: "shopping", Subcategory: "Electronics"},
			tier:    MatchTierCategory,
			percent: "3",
		},
		{
			name:    "platform",
			spend:   models.SpendEntry{Category: "Groceries", Platform: "AMAZON"},
			tier:    MatchTierPlatform,
			percent: "2",
		},
		{
			name:    "channel",
			spend:   models.SpendEntry{Category: "Groceries", Channel: "Online"},
			tier:    MatchTierSpendingType,
			percent: "1",
		},
		{
			name:    "spending type when channel is empty",
			spend:   models.SpendEntry{Category: "Groceries", SpendingType: "online"},
			tier:    MatchTierSpendingType,
			percent: "1",
		},
		{
			name:    "default",
			spend:   models.SpendEntry{Category: "Groceries", Channel: "offline"},
			tier:    MatchTierDefault,
			percent: "0.5",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matched := BestRule(&card, tt.spend)
			require.NotNil(t, matched)
			assert.Equal(t, tt.tier, matched.Tier)
			assert.True(t, matched.CashbackPercent.Equal(dec(tt.percent)), "got %s", matched.CashbackPercent)
			if tt.tier == MatchTierDefault {
				assert.Nil(t, matched.RuleID)
			} else {
				assert.NotNil(t, matched.RuleID)
			}
		})
	}
}

func TestBestRule_SubcategoryBeatsCategory(t *testing.T) {
	card := newTestCard("Travel", 0,
		models.CashbackRule{Category: "Travel", CashbackPercent: dec("10")},
		models.CashbackRule{Category: "Travel", Subcategory: "Flights", CashbackPercent: dec("20")},
	)

	matched := BestRule(&card, models.SpendEntry{Category: "Travel", Subcategory: "Flights"})

	require.NotNil(t, matched)
	assert.Equal(t, card.CashbackRules[1].ID, *matched.RuleID)
	assert.True(t, matched.CashbackPercent.Equal(dec("20")))
}

func TestBestRule_CaseInsensitive(t *testing.T) {
	card := newTestCard("Travel", 0, categoryRule("Travel", "7"))

	matched := BestRule(&card, models.SpendEntry{Category: "TRAVEL"})

	require.NotNil(t, matched)
	assert.Equal(t, MatchTierCategory, matched.Tier)
}

func TestBestRule_FirstStoredRuleWinsWithinTier(t *testing.T) {
	card := newTestCard("Dining", 0,
		categoryRule("Dining", "2"),
		categoryRule("Dining", "6"),
	)

	matched := BestRule(&card, spend("Dining", 100))

	require.NotNil(t, matched)
	assert.Equal(t, card.CashbackRules[0].ID, *matched.RuleID)
	assert.True(t, matched.CashbackPercent.Equal(dec("2")))
}

func TestBestRule_EmptyFieldsNeverMatch(t *testing.T) {
	card := newTestCard("Blank", 0,
		models.CashbackRule{CashbackPercent: dec("9")},
		models.CashbackRule{Brand: models.BrandList{""}, Subcategory: "", CashbackPercent: dec("9")},
	)

	assert.Nil(t, BestRule(&card, models.SpendEntry{}))
	assert.Nil(t, BestRule(&card, models.SpendEntry{Category: "Dining"}))
}

func TestBestRule_BrandRequiresSubcategory(t *testing.T) {
	card := newTestCard("Brand", 0,
		models.CashbackRule{Brand: models.BrandList{"Swiggy"}, CashbackPercent: dec("10")},
	)
	card = withDefault(card, "1")

	matched := BestRule(&card, models.SpendEntry{Brand: "Swiggy"})

	require.NotNil(t, matched)
	assert.Equal(t, MatchTierDefault, matched.Tier)
}

func TestBestRule_ZeroDefaultIsNoMatch(t *testing.T) {
	card := withDefault(newTestCard("Zero", 0), "0")

	assert.Nil(t, BestRule(&card, spend("Dining", 1000)))
}

func TestSpendSavings_RoundsToTwoPlaces(t *testing.T) {
	card := newTestCard("Rounding", 0, categoryRule("Dining", "1.5"))

	savings, percent := SpendSavings(&card, models.SpendEntry{Category: "Dining", Amount: dec("333.33")})

	assert.True(t, savings.Equal(dec("5")), "got %s", savings)
	assert.True(t, percent.Equal(dec("1.5")))

	savings, _ = SpendSavings(&card, models.SpendEntry{Category: "Dining", Amount: dec("1234.56")})
	assert.True(t, savings.Equal(dec("18.52")), "got %s", savings)
}

func TestSpendSavings_NoRule(t *testing.T) {
	card := newTestCard("Nothing", 0)

	savings, percent := SpendSavings(&card, spend("Dining", 1000))

	assert.True(t, savings.IsZero())
	assert.True(t, percent.IsZero())
}

func TestSpendSavings_Monotonic(t *testing.T) {
	categories := []string{"Dining", "Travel", "Fuel", "Groceries", "Shopping"}
	card := withDefault(newTestCard("Mixed", 0,
		categoryRule("Dining", "5"),
		categoryRule("Travel", "3.5"),
		categoryRule("Fuel", "1.25"),
	), "0.75")

	for i := 0; i < 200; i++ {
		category := gofakeit.RandomString(categories)
		amount := decimal.NewFromFloat(gofakeit.Float64Range(0, 100000)).Round(2)
		increase := decimal.NewFromFloat(gofakeit.Float64Range(0, 5000)).Round(2)

		before, _ := SpendSavings(&card, models.SpendEntry{Category: category, Amount: amount})
		after, _ := SpendSavings(&card, models.SpendEntry{Category: category, Amount: amount.Add(increase)})

		assert.True(t, after.GreaterThanOrEqual(before), "%s: %s -> %s", category, amount, amount.Add(increase))
	}
}
