package models

import "fmt"

// Preset names a configuration of the personalization scoring formula.
// Both presets share one formula; they differ only in the brand-match
// weight and the clamping policy.
type Preset string

const (
	// PresetSimple floors scores at zero and drops non-positive items.
	PresetSimple Preset = "simple"
	// PresetEnhanced ranks by the raw score, negative or not.
	PresetEnhanced Preset = "enhanced"
)

// ParsePreset validates a preset name.
func ParsePreset(s string) (Preset, error) {
	switch Preset(s) {
	case PresetSimple, PresetEnhanced:
		return Preset(s), nil
	}
	return "", fmt.Errorf("unknown scoring preset %q", s)
}

// ScoringConfig holds the weights and clamping policy for the
// personalization formula.
type ScoringConfig struct {
	Preset Preset `json:"preset"`

	// Per-signal weights.
	SkinTypeWeight    float64 `json:"skin_type_weight"`    // exact or wildcard skin-type match
	ConcernWeight     float64 `json:"concern_weight"`      // per shared concern tag
	AgeGroupWeight    float64 `json:"age_group_weight"`    // age-group tag match
	BrandWeight       float64 `json:"brand_weight"`        // per preferred-brand substring match
	RatingWeight      float64 `json:"rating_weight"`       // quality boost multiplier on rating
	OverBudgetPenalty float64 `json:"over_budget_penalty"` // subtracted when price exceeds budget

	// FloorAtZero clamps negative final scores to zero.
	FloorAtZero bool `json:"floor_at_zero"`
	// ExcludeNonPositive drops items whose score is not strictly positive.
	ExcludeNonPositive bool `json:"exclude_non_positive"`
}

// SimpleScoringConfig returns the simple preset: brand weight 2, scores
// floored at zero, non-positive items excluded from results.
func SimpleScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Preset:             PresetSimple,
		SkinTypeWeight:     3,
		ConcernWeight:      2,
		AgeGroupWeight:     1,
		BrandWeight:        2,
		RatingWeight:       0.5,
		OverBudgetPenalty:  2,
		FloorAtZero:        true,
		ExcludeNonPositive: true,
	}
}

// EnhancedScoringConfig returns the enhanced preset: brand weight 1.5,
// no clamping, items ranked by raw score regardless of sign.
func EnhancedScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		Preset:            PresetEnhanced,
		SkinTypeWeight:    3,
		ConcernWeight:     2,
		AgeGroupWeight:    1,
		BrandWeight:       1.5,
		RatingWeight:      0.5,
		OverBudgetPenalty: 2,
	}
}

// ScoringConfigFor returns the configuration for a preset.
func ScoringConfigFor(preset Preset) *ScoringConfig {
	if preset == PresetEnhanced {
		return EnhancedScoringConfig()
	}
	return SimpleScoringConfig()
}
