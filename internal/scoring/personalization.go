// Package scoring provides the pure scoring functions of the engine:
// personalization, budget-filtered ranking, trending, and the simplified
// content-neighbor scorer. All functions are deterministic and
// side-effect free; repeated calls with unchanged inputs produce
// identical output sequences.
package scoring

import (
	"sort"
	"strings"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// ScoredItem pairs an item with its computed score.
type ScoredItem struct {
	Item  models.Item
	Score float64
}

// Calculator computes personalization scores for (item, profile) pairs.
type Calculator struct {
	config *models.ScoringConfig
}

// NewCalculator creates a personalization calculator.
// If config is nil, the simple preset is used.
func NewCalculator(config *models.ScoringConfig) *Calculator {
	if config == nil {
		config = models.SimpleScoringConfig()
	}
	return &Calculator{config: config}
}

// Config returns the active scoring configuration, including which
// clamping policy is in effect.
func (c *Calculator) Config() *models.ScoringConfig {
	return c.config
}

// Calculate computes the personalization score for one item.
//
// The formula:
//
//	score = skinMatch + concernWeight×|concerns ∩| + ageMatch
//	      + brandWeight×brandHits + rating×ratingWeight − budgetPenalty
//
// floored at zero when the preset says so.
func (c *Calculator) Calculate(item models.Item, profile models.Profile) float64 {
	return c.CalculateComponents(item, profile).FinalScore
}

// ScoreComponents is the breakdown of a personalization score.
type ScoreComponents struct {
	SkinTypeContrib float64 `json:"skin_type_contrib"`
	ConcernContrib  float64 `json:"concern_contrib"`
	AgeGroupContrib float64 `json:"age_group_contrib"`
	BrandContrib    float64 `json:"brand_contrib"`
	RatingBoost     float64 `json:"rating_boost"`
	BudgetPenalty   float64 `json:"budget_penalty"`
	FinalScore      float64 `json:"final_score"`
}

// CalculateComponents returns the individual components of the score.
// Calculate delegates here.
func (c *Calculator) CalculateComponents(item models.Item, profile models.Profile) ScoreComponents {
	var comp ScoreComponents

	if item.SuitsSkinType(profile.SkinType) {
		comp.SkinTypeContrib = c.config.SkinTypeWeight
	}

	comp.ConcernContrib = c.config.ConcernWeight * float64(models.CommonCount(profile.Concerns, item.Concerns))

	if profile.AgeGroup != "" && item.HasAgeGroup(profile.AgeGroup) {
		comp.AgeGroupContrib = c.config.AgeGroupWeight
	}

	brand := strings.ToLower(item.Brand)
	for _, preferred := range profile.PreferredBrands {
		if preferred == "" {
			continue
		}
		if strings.Contains(brand, strings.ToLower(preferred)) {
			comp.BrandContrib += c.config.BrandWeight
		}
	}

	comp.RatingBoost = item.Rating * c.config.RatingWeight

	budget := profile.BudgetMax
	if budget <= 0 {
		budget = models.DefaultBudgetMax
	}
	if item.Price > budget {
		comp.BudgetPenalty = c.config.OverBudgetPenalty
	}

	comp.FinalScore = comp.SkinTypeContrib + comp.ConcernContrib + comp.AgeGroupContrib +
		comp.BrandContrib + comp.RatingBoost - comp.BudgetPenalty
	if c.config.FloorAtZero && comp.FinalScore < 0 {
		comp.FinalScore = 0
	}
	return comp
}

// Rank scores every item against the profile and returns the top n,
// ordered by descending score with ties broken by ascending item ID.
// Under the simple preset, items without a strictly positive score are
// excluded; the enhanced preset ranks everything by raw score.
func (c *Calculator) Rank(items []models.Item, profile models.Profile, n int) []ScoredItem {
	if n <= 0 {
		return []ScoredItem{}
	}

	scored := make([]ScoredItem, 0, len(items))
	for _, item := range items {
		score := c.Calculate(item, profile)
		if c.config.ExcludeNonPositive && score <= 0 {
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

// sortScored orders by descending score, ascending item ID on ties.
func sortScored(scored []ScoredItem) {
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Item.ID < scored[j].Item.ID
	})
}
