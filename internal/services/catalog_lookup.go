package services

import (
	"sort"
	"strings"

	"card-advisor/internal/models"
)

// DistinctCategories returns the sorted non-empty rule categories across the catalog
func DistinctCategories(cards []models.Card) []string {
	return collectDistinct(cards, func(rule *models.CashbackRule) []string {
		return []string{rule.Category}
	})
}

// DistinctSubcategories returns the sorted subcategories of rules in the given category
func DistinctSubcategories(cards []models.Card, category string) []string {
	return collectDistinct(cards, func(rule *models.CashbackRule) []string {
		if !sameLabel(rule.Category, category) {
			return nil
		}
		return []string{rule.Subcategory}
	})
}

// DistinctBrands returns the sorted brands of rules matching the optional category
// and subcategory filters. List-valued brands are flattened.
func DistinctBrands(cards []models.Card, category, subcategory string) []string {
	return collectDistinct(cards, func(rule *models.CashbackRule) []string {
		if category != "" && !sameLabel(rule.Category, category) {
			return nil
		}
		if subcategory != "" && !sameLabel(rule.Subcategory, subcategory) {
			return nil
		}
		return rule.Brand.Values()
	})
}

func collectDistinct(cards []models.Card, values func(rule *models.CashbackRule) []string) []string {
	seen := make(map[string]struct{})
	result := make([]string, 0)

	for i := range cards {
		for j := range cards[i].CashbackRules {
			for _, value := range values(&cards[i].CashbackRules[j]) {
				value = strings.TrimSpace(value)
				if value == "" {
					continue
				}
				if _, ok := seen[value]; ok {
					continue
				}
				seen[value] = struct{}{}
				result = append(result, value)
			}
		}
	}

	sort.Strings(result)
	return result
}
