// Package models contains domain models for the recommendation engine.
package models

import "strings"

// SkinTypeAll is the wildcard skin type: the item suits every skin type.
const SkinTypeAll = "all"

// Item is a single catalog product. Items are created once when the
// catalog snapshot is loaded and never mutated afterwards; every other
// component holds read-only references or derived copies.
type Item struct {
	ID             int      `yaml:"id" json:"id"`
	Name           string   `yaml:"name" json:"name"`
	Brand          string   `yaml:"brand" json:"brand"`
	Category       string   `yaml:"category" json:"category"`
	Subcategory    string   `yaml:"subcategory" json:"subcategory,omitempty"`
	Price          float64  `yaml:"price" json:"price"`
	Rating         float64  `yaml:"rating" json:"rating"`
	ReviewCount    int      `yaml:"review_count" json:"review_count"`
	SkinTypes      []string `yaml:"skin_types" json:"skin_types"`
	Concerns       []string `yaml:"concerns" json:"concerns"`
	AgeGroups      []string `yaml:"age_groups" json:"age_groups,omitempty"`
	Seasonal       string   `yaml:"seasonal" json:"seasonal,omitempty"`
	Finish         string   `yaml:"finish" json:"finish,omitempty"`
	KeyIngredients []string `yaml:"key_ingredients" json:"key_ingredients,omitempty"`
	SPF            float64  `yaml:"spf" json:"spf,omitempty"`
}

// SuitsSkinType reports whether the item is applicable to the given skin
// type, either by listing it explicitly or by carrying the "all" wildcard.
func (i Item) SuitsSkinType(skinType string) bool {
	for _, st := range i.SkinTypes {
		if st == SkinTypeAll || strings.EqualFold(st, skinType) {
			return true
		}
	}
	return false
}

// HasAgeGroup reports whether the item targets the given age-group tag.
func (i Item) HasAgeGroup(ageGroup string) bool {
	for _, ag := range i.AgeGroups {
		if ag == ageGroup {
			return true
		}
	}
	return false
}

// TrendingKey is the popularity ranking key: review_count × rating.
func (i Item) TrendingKey() float64 {
	return float64(i.ReviewCount) * i.Rating
}

// CommonCount returns the size of the intersection of two tag sets.
// Comparison is exact; tags are expected to be stored normalized.
func CommonCount(a, b []string) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(a))
	for _, t := range a {
		set[t] = struct{}{}
	}
	n := 0
	seen := make(map[string]struct{}, len(b))
	for _, t := range b {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := set[t]; ok {
			n++
		}
	}
	return n
}
