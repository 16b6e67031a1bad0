package services

import (
	"sort"
	"strings"

	"card-advisor/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// MaxRecommendations bounds the length of every recommendation list
	MaxRecommendations = 5

	IndividualReasoning = "This card is among the best for at least one of your spends."
	GroupReasoning      = "Group these cards: together they cover different categories for better total savings than any card alone."
)

// savingsMatrix holds per card, per spend savings so every candidate reads the same numbers
type savingsMatrix struct {
	cards      []models.Card
	spends     []models.SpendEntry
	labels     []string
	savings    [][]decimal.Decimal
	percents   [][]decimal.Decimal
	maxSavings []decimal.Decimal
	totalSpend decimal.Decimal
}

func newSavingsMatrix(cards []models.Card, spends []models.SpendEntry) *savingsMatrix {
	m := &savingsMatrix{
		cards:      cards,
		spends:     spends,
		labels:     make([]string, len(spends)),
		savings:    make([][]decimal.Decimal, len(cards)),
		percents:   make([][]decimal.Decimal, len(cards)),
		maxSavings: make([]decimal.Decimal, len(spends)),
		totalSpend: decimal.Zero,
	}

	for j, spend := range spends {
		m.labels[j] = SpendLabel(spend)
		m.totalSpend = m.totalSpend.Add(spend.Amount)
		m.maxSavings[j] = decimal.Zero
	}

	for i := range cards {
		m.savings[i] = make([]decimal.Decimal, len(spends))
		m.percents[i] = make([]decimal.Decimal, len(spends))
		for j, spend := range spends {
			saving, percent := SpendSavings(&cards[i], spend)
			m.savings[i][j] = saving
			m.percents[i][j] = percent
			if saving.GreaterThan(m.maxSavings[j]) {
				m.maxSavings[j] = saving
			}
		}
	}

	return m
}

func (m *savingsMatrix) coverage(covered decimal.Decimal) decimal.Decimal {
	if !m.totalSpend.IsPositive() {
		return decimal.Zero
	}
	return covered.Mul(hundred).Div(m.totalSpend).Round(2)
}

// Recommend ranks single cards and card groups of exactly groupSize cards by net benefit.
// Cards are used in the given order, which also breaks savings ties inside a group.
// The result holds at most MaxRecommendations entries and is empty when nothing earns.
func Recommend(cards []models.Card, spends []models.SpendEntry, groupSize int) []models.RecommendationResult {
	if len(cards) == 0 {
		return []models.RecommendationResult{}
	}

	matrix := newSavingsMatrix(cards, spends)
	individuals, individualNet := recommendIndividuals(matrix)
	groups := recommendGroups(matrix, groupSize, individualNet)

	return rankResults(append(groups, individuals...))
}

// recommendIndividuals returns the cards that are best for at least one spend,
// along with each qualifying card's net benefit keyed by catalog index
func recommendIndividuals(m *savingsMatrix) ([]models.RecommendationResult, map[int]decimal.Decimal) {
	results := make([]models.RecommendationResult, 0)
	netByCard := make(map[int]decimal.Decimal)

	for i := range m.cards {
		card := &m.cards[i]
		total := decimal.Zero
		covered := decimal.Zero
		bestForAny := false
		breakdown := make([]models.SpendSavings, 0, len(m.spends))

		for j, spend := range m.spends {
			saving := m.savings[i][j]
			total = total.Add(saving)

			row := models.SpendSavings{
				SpendEntry:      spend,
				SpendLabel:      m.labels[j],
				Savings:         saving,
				CashbackPercent: m.percents[i][j],
			}
			if saving.IsPositive() {
				covered = covered.Add(spend.Amount)
				cardID := card.ID
				row.BestCardID = &cardID
				row.BestCardName = card.CardName
			}
			breakdown = append(breakdown, row)

			if m.maxSavings[j].IsPositive() && saving.Equal(m.maxSavings[j]) {
				bestForAny = true
			}
		}

		if !bestForAny || !total.IsPositive() {
			continue
		}

		benefit := NetBenefit(card, total)
		netByCard[i] = benefit.NetBenefit
		results = append(results, models.RecommendationResult{
			Type:            models.RecommendationTypeIndividual,
			Cards:           []models.CardRef{card.Ref()},
			TotalSavings:    total,
			SpendCoverage:   m.coverage(covered),
			NetBenefit:      benefit.NetBenefit,
			CardNetBenefits: map[uuid.UUID]models.BenefitBreakdown{card.ID: benefit},
			Breakdown:       breakdown,
			Reasoning:       IndividualReasoning,
		})
	}

	return results, netByCard
}

// recommendGroups evaluates every combination of groupSize cards. A group is kept only
// when its members' combined net benefit beats the best of them standing alone.
func recommendGroups(m *savingsMatrix, groupSize int, individualNet map[int]decimal.Decimal) []models.RecommendationResult {
	results := make([]models.RecommendationResult, 0)
	if groupSize < 2 || groupSize > len(m.cards) {
		return results
	}

	forEachCombination(len(m.cards), groupSize, func(members []int) {
		if group, ok := evaluateGroup(m, members, groupSize, individualNet); ok {
			results = append(results, group)
		}
	})

	return results
}

func evaluateGroup(m *savingsMatrix, members []int, groupSize int, individualNet map[int]decimal.Decimal) (models.RecommendationResult, bool) {
	attributed := make(map[int]decimal.Decimal, len(members))
	for _, member := range members {
		attributed[member] = decimal.Zero
	}

	total := decimal.Zero
	covered := decimal.Zero
	breakdown := make([]models.SpendSavings, 0, len(m.spends))

	for j, spend := range m.spends {
		best := decimal.Zero
		bestCard := -1
		for _, member := range members {
			if m.savings[member][j].GreaterThan(best) {
				best = m.savings[member][j]
				bestCard = member
			}
		}

		row := models.SpendSavings{
			SpendEntry:      spend,
			SpendLabel:      m.labels[j],
			Savings:         best,
			CashbackPercent: decimal.Zero,
		}
		if bestCard >= 0 {
			card := &m.cards[bestCard]
			cardID := card.ID
			attributed[bestCard] = attributed[bestCard].Add(best)
			covered = covered.Add(spend.Amount)
			row.BestCardID = &cardID
			row.BestCardName = card.CardName
			row.CashbackPercent = m.percents[bestCard][j]
		}
		total = total.Add(best)
		breakdown = append(breakdown, row)
	}

	contributing := make([]int, 0, len(members))
	for _, member := range members {
		if attributed[member].IsPositive() {
			contributing = append(contributing, member)
		}
	}
	if len(contributing) == 0 || len(contributing) > groupSize {
		return models.RecommendationResult{}, false
	}

	groupNet := decimal.Zero
	bestStandalone := decimal.Zero
	hasStandalone := false
	cardRefs := make([]models.CardRef, 0, len(contributing))
	cardNet := make(map[uuid.UUID]models.BenefitBreakdown, len(contributing))

	for _, member := range contributing {
		card := &m.cards[member]
		benefit := NetBenefit(card, attributed[member])
		cardNet[card.ID] = benefit
		cardRefs = append(cardRefs, card.Ref())
		groupNet = groupNet.Add(benefit.NetBenefit)

		if net, ok := individualNet[member]; ok {
			if !hasStandalone || net.GreaterThan(bestStandalone) {
				bestStandalone = net
				hasStandalone = true
			}
		}
	}

	if !groupNet.GreaterThan(bestStandalone) {
		return models.RecommendationResult{}, false
	}

	return models.RecommendationResult{
		Type:            models.RecommendationTypeGroup,
		Cards:           cardRefs,
		TotalSavings:    total,
		SpendCoverage:   m.coverage(covered),
		NetBenefit:      groupNet,
		CardNetBenefits: cardNet,
		Breakdown:       breakdown,
		Reasoning:       GroupReasoning,
	}, true
}

// rankResults drops non-positive results, orders by net benefit (stable, so groups
// precede individuals on ties), collapses identical card sets and keeps the top entries
func rankResults(candidates []models.RecommendationResult) []models.RecommendationResult {
	positive := make([]models.RecommendationResult, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.NetBenefit.IsPositive() {
			positive = append(positive, candidate)
		}
	}

	sort.SliceStable(positive, func(i, j int) bool {
		return positive[i].NetBenefit.GreaterThan(positive[j].NetBenefit)
	})

	seen := make(map[string]struct{}, len(positive))
	ranked := make([]models.RecommendationResult, 0, MaxRecommendations)
	for _, result := range positive {
		key := cardSetKey(result.CardIDs())
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		ranked = append(ranked, result)
		if len(ranked) == MaxRecommendations {
			break
		}
	}

	return ranked
}

func cardSetKey(ids []uuid.UUID) string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, id.String())
	}
	sort.Strings(keys)
	return strings.Join(keys, ",")
}

// forEachCombination calls fn with every k-sized index combination of [0, n) in
// lexicographic order. The slice passed to fn is reused between calls.
func forEachCombination(n, k int, fn func([]int)) {
	if k <= 0 || k > n {
		return
	}

	indices := make([]int, k)
	for i := range indices {
		indices[i] = i
	}

	for {
		fn(indices)

		i := k - 1
		for i >= 0 && indices[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}

		indices[i]++
		for j := i + 1; j < k; j++ {
			indices[j] = indices[j-1] + 1
		}
	}
}

// SpendToCardSavings lists, for every spend entry, what each catalog card would save on it
func SpendToCardSavings(cards []models.Card, spends []models.SpendEntry) []models.SpendCardSavings {
	table := make([]models.SpendCardSavings, 0, len(spends))

	for j, spend := range spends {
		row := models.SpendCardSavings{
			SpendEntryIndex: j,
			SpendLabel:      SpendLabel(spend),
			Category:        spend.Category,
			Amount:          spend.Amount,
			CardSavings:     make([]models.CardSavings, 0, len(cards)),
		}
		for i := range cards {
			saving, percent := SpendSavings(&cards[i], spend)
			row.CardSavings = append(row.CardSavings, models.CardSavings{
				CardID:          cards[i].ID,
				CardName:        cards[i].CardName,
				Savings:         saving,
				CashbackPercent: percent,
			})
		}
		table = append(table, row)
	}

	return table
}
