package scoring

import (
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// RankByTrending orders all items by their popularity key
// (review_count × rating) descending, ties broken by ascending item ID,
// and returns the top n.
func RankByTrending(items []models.Item, n int) []ScoredItem {
	if n <= 0 {
		return []ScoredItem{}
	}

	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		scored = append(scored, ScoredItem{Item: item, Score: item.TrendingKey()})
	}
	sortScored(scored)
	if n < len(scored) {
		scored = scored[:n]
	}
	return scored
}
