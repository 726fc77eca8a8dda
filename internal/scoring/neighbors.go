package scoring

import (
	"math"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// Neighbor scoring weights for the simplified content scorer. This form
// works without a similarity index: it compares raw attributes between
// the query item and every candidate.
const (
	neighborCategoryWeight = 3.0
	neighborConcernWeight  = 2.0
	neighborSkinTypeWeight = 1.5
	neighborPriceWeight    = 1.0
	neighborPriceProximity = 20.0 // price difference considered "similar"
)

// NeighborScore computes the simplified content-similarity score between
// a candidate and the query item.
func NeighborScore(candidate, query models.Item) float64 {
	score := 0.0
	if candidate.Category == query.Category {
		score += neighborCategoryWeight
	}
	score += neighborConcernWeight * float64(models.CommonCount(candidate.Concerns, query.Concerns))
	score += neighborSkinTypeWeight * float64(models.CommonCount(candidate.SkinTypes, query.SkinTypes))
	if math.Abs(candidate.Price-query.Price) <= neighborPriceProximity {
		score += neighborPriceWeight
	}
	return score
}

// RankNeighbors scores every item against the query item (which is
// itself excluded) and returns the top n with strictly positive scores,
// descending by score, ties broken by ascending item ID.
func RankNeighbors(items []models.Item, query models.Item, n int) []ScoredItem {
	if n <= 0 {
		return []ScoredItem{}
	}

	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		if item.ID == query.ID {
			continue
		}
		score := NeighborScore(item, query)
		if score <= 0 {
			continue
		}
		scored = append(scored, ScoredItem{Item: item, Score: score})
	}
	sortScored(scored)
	if n < len(scored) {
		scored = scored[:n]
	}
	return scored
}
