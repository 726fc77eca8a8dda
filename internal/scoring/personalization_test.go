package scoring

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// PersonalizationSuite exercises the personalization calculator.
type PersonalizationSuite struct {
	suite.Suite
	simple   *Calculator
	enhanced *Calculator
}

func (s *PersonalizationSuite) SetupTest() {
	s.simple = NewCalculator(models.SimpleScoringConfig())
	s.enhanced = NewCalculator(models.EnhancedScoringConfig())
}

func TestPersonalizationSuite(t *testing.T) {
	suite.Run(t, new(PersonalizationSuite))
}

func scenarioItems() []models.Item {
	return []models.Item{
		{ID: 1, Name: "Foundation", Price: 38, Rating: 4.2, SkinTypes: []string{"oily"}, Concerns: []string{"coverage"}},
		{ID: 2, Name: "Blush", Price: 22, Rating: 4.5, SkinTypes: []string{"all"}, Concerns: []string{"natural_glow"}},
	}
}

func scenarioProfile() models.Profile {
	return models.Profile{
		Name:      "Scenario",
		SkinType:  "oily",
		Concerns:  []string{"coverage"},
		BudgetMax: 60,
	}
}

func (s *PersonalizationSuite) TestCalculate_SkinConcernAndRating() {
	items := scenarioItems()
	profile := scenarioProfile()

	// 3 (skin) + 2 (one shared concern) + 4.2×0.5
	s.InDelta(7.1, s.simple.Calculate(items[0], profile), 1e-9)
	// 3 (wildcard) + 0 + 4.5×0.5
	s.InDelta(5.25, s.simple.Calculate(items[1], profile), 1e-9)
}

func (s *PersonalizationSuite) TestRank_ScenarioOrdering() {
	ranked := s.simple.Rank(scenarioItems(), scenarioProfile(), 3)

	s.Require().Len(ranked, 2)
	s.Equal(1, ranked[0].Item.ID)
	s.Equal(2, ranked[1].Item.ID)
}

func (s *PersonalizationSuite) TestCalculate_BrandWeightsByPreset() {
	item := models.Item{ID: 3, Brand: "Fenty Beauty", SkinTypes: []string{"all"}}
	profile := models.Profile{SkinType: "dry", PreferredBrands: []string{"fenty"}, BudgetMax: 50}

	// simple: 3 + 2 (brand); enhanced: 3 + 1.5
	s.InDelta(5.0, s.simple.Calculate(item, profile), 1e-9)
	s.InDelta(4.5, s.enhanced.Calculate(item, profile), 1e-9)
}

func (s *PersonalizationSuite) TestCalculate_BrandMatchIsSubstringCaseInsensitive() {
	item := models.Item{ID: 3, Brand: "La Roche-Posay", SkinTypes: []string{"all"}}
	profile := models.Profile{SkinType: "dry", PreferredBrands: []string{"roche-posay"}, BudgetMax: 50}

	comp := s.simple.CalculateComponents(item, profile)
	s.InDelta(2.0, comp.BrandContrib, 1e-9)
}

func (s *PersonalizationSuite) TestCalculate_OverBudgetPenalty() {
	item := models.Item{ID: 4, Price: 120, Rating: 4.0, SkinTypes: []string{"all"}}
	profile := models.Profile{SkinType: "dry", BudgetMax: 60}

	comp := s.simple.CalculateComponents(item, profile)
	s.InDelta(2.0, comp.BudgetPenalty, 1e-9)
	// 3 + 2.0 − 2
	s.InDelta(3.0, comp.FinalScore, 1e-9)
}

func (s *PersonalizationSuite) TestCalculate_FloorPolicyDiffersByPreset() {
	// No matches at all, low rating, over budget: raw score is negative.
	item := models.Item{ID: 5, Price: 200, Rating: 1.0, SkinTypes: []string{"oily"}}
	profile := models.Profile{SkinType: "dry", BudgetMax: 50}

	s.InDelta(0.0, s.simple.Calculate(item, profile), 1e-9)
	s.InDelta(-1.5, s.enhanced.Calculate(item, profile), 1e-9)

	s.True(s.simple.Config().FloorAtZero)
	s.False(s.enhanced.Config().FloorAtZero)
}

func (s *PersonalizationSuite) TestRank_SimpleExcludesNonPositive() {
	items := []models.Item{
		{ID: 1, Price: 200, Rating: 1.0, SkinTypes: []string{"oily"}},
		{ID: 2, Price: 10, Rating: 4.0, SkinTypes: []string{"all"}},
	}
	profile := models.Profile{SkinType: "dry", BudgetMax: 50}

	ranked := s.simple.Rank(items, profile, 5)
	s.Require().Len(ranked, 1)
	s.Equal(2, ranked[0].Item.ID)

	// Enhanced ranks everything by raw score.
	ranked = s.enhanced.Rank(items, profile, 5)
	s.Require().Len(ranked, 2)
	s.Equal(2, ranked[0].Item.ID)
	s.Equal(1, ranked[1].Item.ID)
}

func (s *PersonalizationSuite) TestRank_TiesBrokenByAscendingID() {
	twin := models.Item{Price: 10, Rating: 4.0, SkinTypes: []string{"all"}}
	a, b := twin, twin
	a.ID, b.ID = 9, 4

	ranked := s.simple.Rank([]models.Item{a, b}, models.Profile{SkinType: "dry", BudgetMax: 50}, 5)
	s.Require().Len(ranked, 2)
	s.Equal(4, ranked[0].Item.ID)
	s.Equal(9, ranked[1].Item.ID)
}

func (s *PersonalizationSuite) TestRank_AgeGroupContribution() {
	item := models.Item{ID: 1, Rating: 4.0, SkinTypes: []string{"all"}, AgeGroups: []string{"25-35"}}
	base := models.Profile{SkinType: "dry", BudgetMax: 50}

	without := s.simple.Calculate(item, base)
	base.AgeGroup = "25-35"
	with := s.simple.Calculate(item, base)

	s.InDelta(1.0, with-without, 1e-9)
}

func (s *PersonalizationSuite) TestRank_NonPositiveCountYieldsEmpty() {
	s.Empty(s.simple.Rank(scenarioItems(), scenarioProfile(), 0))
	s.Empty(s.simple.Rank(scenarioItems(), scenarioProfile(), -2))
}

func (s *PersonalizationSuite) TestRank_EmptyCatalog() {
	s.Empty(s.simple.Rank(nil, scenarioProfile(), 3))
}
