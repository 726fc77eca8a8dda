package scoring

import (
	"fmt"
	"sort"
	"strings"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// BudgetResult is one entry of a budget-filtered ranking.
type BudgetResult struct {
	Item    models.Item
	Savings float64 // maxPrice − item price
}

// SavingsLabel formats the savings value for display.
func (r BudgetResult) SavingsLabel() string {
	return fmt.Sprintf("$%.2f under budget", r.Savings)
}

// RankByBudget retains items priced at or below maxPrice, optionally
// restricted to one category (case-insensitive exact match), sorted by
// rating descending, then review count descending, then item ID
// ascending. A negative maxPrice matches nothing.
func RankByBudget(items []models.Item, maxPrice float64, category string, n int) []BudgetResult {
	if n <= 0 || maxPrice < 0 {
		return []BudgetResult{}
	}

	results := make([]BudgetResult, 0, len(items))
	for _, item := range items {
		if item.Price > maxPrice {
			continue
		}
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		results = append(results, BudgetResult{
			Item:    item,
			Savings: maxPrice - item.Price,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i].Item, results[j].Item
		if a.Rating != b.Rating {
			return a.Rating > b.Rating
		}
		if a.ReviewCount != b.ReviewCount {
			return a.ReviewCount > b.ReviewCount
		}
		return a.ID < b.ID
	})
	if n < len(results) {
		results = results[:n]
	}
	return results
}
