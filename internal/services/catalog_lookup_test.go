package services

import (
	"testing"

	"card-advisor/internal/models"

	"github.com/stretchr/testify/assert"
)

func lookupCatalog() []models.Card {
	return []models.Card{
		newTestCard("Food Card", 0,
			models.CashbackRule{Category: "Food", Subcategory: "Delivery", Brand: models.BrandList{"Swiggy", "Zomato"}, CashbackPercent: dec("10")},
			models.CashbackRule{Category: "Food", Subcategory: "Dining", CashbackPercent: dec("5")},
			models.CashbackRule{Category: " Travel ", CashbackPercent: dec("2")},
		),
		newTestCard("Shopping Card", 0,
			models.CashbackRule{Category: "Shopping", Subcategory: "E-commerce", Brand: models.BrandList{"Amazon"}, CashbackPercent: dec("5")},
			models.CashbackRule{Category: "food", Subcategory: "Delivery", Brand: models.BrandList{"Swiggy", ""}, CashbackPercent: dec("3")},
			models.CashbackRule{Platform: "Flipkart", CashbackPercent: dec("1")},
		),
	}
}

func TestDistinctCategories(t *testing.T) {
	assert.Equal(t, []string{"Food", "Shopping", "Travel", "food"}, DistinctCategories(lookupCatalog()))
	assert.Empty(t, DistinctCategories(nil))
}

func TestDistinctSubcategories(t *testing.T) {
	cards := lookupCatalog()

	assert.Equal(t, []string{"Delivery", "Dining"}, DistinctSubcategories(cards, "FOOD"))
	assert.Empty(t, DistinctSubcategories(cards, "Travel"))
	assert.Empty(t, DistinctSubcategories(cards, "Unknown"))
}

func TestDistinctBrands(t *testing.T) {
	cards := lookupCatalog()

	assert.Equal(t, []string{"Amazon", "Swiggy", "Zomato"}, DistinctBrands(cards, "", ""))
	assert.Equal(t, []string{"Swiggy", "Zomato"}, DistinctBrands(cards, "food", ""))
	assert.Equal(t, []string{"Swiggy", "Zomato"}, DistinctBrands(cards, "Food", "delivery"))
	assert.Equal(t, []string{"Amazon"}, DistinctBrands(cards, "", "E-commerce"))
	assert.Empty(t, DistinctBrands(cards, "Food", "Dining"))
}
