package models

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeGroupFor_Buckets(t *testing.T) {
	tests := []struct {
		age  int
		want string
	}{
		{18, "18-25"},
		{24, "18-25"},
		{25, "25-35"},
		{34, "25-35"},
		{35, "35-45"},
		{44, "35-45"},
		{45, "45+"},
		{70, "45+"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeGroupFor(tt.age), "age %d", tt.age)
	}
}

func TestNewCustomProfile_Defaults(t *testing.T) {
	p := NewCustomProfile("Custom User", 30, "normal", nil, 0, nil)

	assert.Empty(t, p.ID)
	assert.Equal(t, "25-35", p.AgeGroup)
	assert.Equal(t, DefaultBudgetMax, p.BudgetMax)
	assert.NotNil(t, p.Concerns)
	assert.NotNil(t, p.PreferredBrands)
}

func TestItem_SuitsSkinType(t *testing.T) {
	item := Item{SkinTypes: []string{"oily", "combination"}}
	assert.True(t, item.SuitsSkinType("oily"))
	assert.True(t, item.SuitsSkinType("Oily"))
	assert.False(t, item.SuitsSkinType("dry"))

	wildcard := Item{SkinTypes: []string{"all"}}
	assert.True(t, wildcard.SuitsSkinType("dry"))
	assert.True(t, wildcard.SuitsSkinType("anything"))
}

func TestCommonCount(t *testing.T) {
	assert.Equal(t, 2, CommonCount([]string{"a", "b", "c"}, []string{"b", "c", "d"}))
	assert.Equal(t, 0, CommonCount([]string{"a"}, []string{"b"}))
	assert.Equal(t, 0, CommonCount(nil, []string{"a"}))
	// Duplicates count once.
	assert.Equal(t, 1, CommonCount([]string{"a", "a"}, []string{"a", "a"}))
}

func TestEntry_MarshalJSON_ScoreKeyVariesByKind(t *testing.T) {
	base := Entry{
		ID: 1, Name: "Foundation", Brand: "Fenty Beauty", Category: "Foundation",
		Price: 38, Rating: 4.2, ReviewCount: 1520, Reason: "r",
	}

	content := base
	content.Kind = KindContent
	content.Score = 0.42
	data, err := json.Marshal(content)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"similarity_score":0.42`)
	assert.NotContains(t, string(data), "personalization_score")
	assert.NotContains(t, string(data), "review_count")

	personalized := base
	personalized.Kind = KindPersonalized
	personalized.Score = 9.1
	data, err = json.Marshal(personalized)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"personalization_score":9.1`)
	assert.NotContains(t, string(data), "similarity_score")

	budget := base
	budget.Kind = KindBudget
	budget.Savings = "$3.00 under budget"
	data, err = json.Marshal(budget)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"savings":"$3.00 under budget"`)
	assert.NotContains(t, string(data), "score")

	trending := base
	trending.Kind = KindTrending
	data, err = json.Marshal(trending)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"review_count":1520`)
	assert.NotContains(t, string(data), "score")
}

func TestEntry_MarshalJSON_UnknownKind(t *testing.T) {
	_, err := json.Marshal(Entry{ID: 1, Kind: EntryKind("bogus")})
	assert.Error(t, err)
}

func TestScoringConfigFor_Presets(t *testing.T) {
	simple := ScoringConfigFor(PresetSimple)
	assert.Equal(t, 2.0, simple.BrandWeight)
	assert.True(t, simple.FloorAtZero)
	assert.True(t, simple.ExcludeNonPositive)

	enhanced := ScoringConfigFor(PresetEnhanced)
	assert.Equal(t, 1.5, enhanced.BrandWeight)
	assert.False(t, enhanced.FloorAtZero)
	assert.False(t, enhanced.ExcludeNonPositive)
}

func TestParsePreset(t *testing.T) {
	for _, valid := range []string{"simple", "enhanced"} {
		p, err := ParsePreset(valid)
		require.NoError(t, err)
		assert.Equal(t, Preset(valid), p)
	}

	_, err := ParsePreset("fancy")
	assert.Error(t, err)
}
