package models

// DefaultBudgetMax is the budget assumed for profiles that do not set one.
const DefaultBudgetMax = 100.0

// Profile describes a consumer the engine scores items against.
// Named profiles come from the profile directory; custom profiles are
// built per request and carry an empty ID. Profiles are never persisted
// by the engine.
type Profile struct {
	ID                string   `yaml:"id" json:"id,omitempty"`
	Name              string   `yaml:"name" json:"name"`
	Age               int      `yaml:"age" json:"age,omitempty"`
	SkinType          string   `yaml:"skin_type" json:"skin_type"`
	Concerns          []string `yaml:"concerns" json:"concerns"`
	AgeGroup          string   `yaml:"age_group" json:"age_group"`
	BudgetMax         float64  `yaml:"budget_max" json:"budget_max"`
	PreferredBrands   []string `yaml:"preferred_brands" json:"preferred_brands"`
	PreviousPurchases []int    `yaml:"previous_purchases" json:"previous_purchases,omitempty"`
}

// AgeGroupFor maps an age to its fixed bucket tag.
func AgeGroupFor(age int) string {
	switch {
	case age < 25:
		return "18-25"
	case age < 35:
		return "25-35"
	case age < 45:
		return "35-45"
	default:
		return "45+"
	}
}

// NewCustomProfile builds an ad-hoc profile from request input, deriving
// the age-group tag from the age and applying the budget default.
func NewCustomProfile(name string, age int, skinType string, concerns []string, budgetMax float64, preferredBrands []string) Profile {
	if budgetMax <= 0 {
		budgetMax = DefaultBudgetMax
	}
	if concerns == nil {
		concerns = []string{}
	}
	if preferredBrands == nil {
		preferredBrands = []string{}
	}
	return Profile{
		Name:            name,
		Age:             age,
		SkinType:        skinType,
		Concerns:        concerns,
		AgeGroup:        AgeGroupFor(age),
		BudgetMax:       budgetMax,
		PreferredBrands: preferredBrands,
	}
}
