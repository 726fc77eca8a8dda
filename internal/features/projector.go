// Package features derives comparable signals from raw item attributes:
// a normalized text descriptor for content similarity and a min-max
// scaled numeric vector. Both are pure functions of one item plus
// snapshot-wide statistics and are recomputed whenever the catalog
// snapshot changes.
package features

import (
	"sort"
	"strings"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// Numeric feature positions in the projected vector.
const (
	NumPrice = iota
	NumRating
	NumReviewCount
	NumSPF
	numFeatures
)

// NumericVector is the per-item scaled numeric feature vector.
// Each component lies in [0,1]; a feature that is constant across the
// snapshot scales to 0 for every item.
type NumericVector [numFeatures]float64

// Stats holds snapshot-wide min/max per numeric feature.
type Stats struct {
	min [numFeatures]float64
	max [numFeatures]float64
}

// ComputeStats scans the snapshot once and records min/max for each
// numeric feature. An empty snapshot yields all-zero stats.
func ComputeStats(items []models.Item) Stats {
	var s Stats
	for i, item := range items {
		raw := rawNumeric(item)
		for f := 0; f < numFeatures; f++ {
			if i == 0 || raw[f] < s.min[f] {
				s.min[f] = raw[f]
			}
			if i == 0 || raw[f] > s.max[f] {
				s.max[f] = raw[f]
			}
		}
	}
	return s
}

func rawNumeric(item models.Item) [numFeatures]float64 {
	return [numFeatures]float64{
		NumPrice:       item.Price,
		NumRating:      item.Rating,
		NumReviewCount: float64(item.ReviewCount),
		NumSPF:         item.SPF, // missing SPF loads as 0
	}
}

// ProjectNumeric scales the item's numeric features to [0,1] using the
// snapshot statistics.
func ProjectNumeric(item models.Item, stats Stats) NumericVector {
	raw := rawNumeric(item)
	var v NumericVector
	for f := 0; f < numFeatures; f++ {
		span := stats.max[f] - stats.min[f]
		if span <= 0 {
			v[f] = 0
			continue
		}
		v[f] = (raw[f] - stats.min[f]) / span
	}
	return v
}

// TermWeights renders the scaled vector as weighted pseudo-terms so the
// similarity index can mix numeric features with text features in one
// vector space. Term names carry a marker byte that cannot appear in
// descriptor tokens, so they never collide with the vocabulary.
// Zero components are omitted; they carry no weight.
func (v NumericVector) TermWeights() map[string]float64 {
	names := [numFeatures]string{
		NumPrice:       "\x00price",
		NumRating:      "\x00rating",
		NumReviewCount: "\x00review_count",
		NumSPF:         "\x00spf",
	}
	weights := make(map[string]float64, numFeatures)
	for f := 0; f < numFeatures; f++ {
		if v[f] != 0 {
			weights[names[f]] = v[f]
		}
	}
	return weights
}

// DescriptorTokens renders the item's categorical and tag attributes as
// an order-insensitive token bag. Set-valued fields are sorted before
// emission so identical sets always produce identical token sequences
// regardless of insertion order.
func DescriptorTokens(item models.Item) []string {
	tokens := make([]string, 0, 16)
	tokens = appendTokens(tokens, item.Category)
	tokens = appendTokens(tokens, item.Subcategory)
	tokens = appendTokens(tokens, item.Brand)
	tokens = appendSetTokens(tokens, item.SkinTypes)
	tokens = appendSetTokens(tokens, item.Concerns)
	tokens = appendSetTokens(tokens, item.AgeGroups)
	tokens = appendTokens(tokens, item.Seasonal)
	tokens = appendTokens(tokens, item.Finish)
	tokens = appendSetTokens(tokens, item.KeyIngredients)
	return tokens
}

func appendSetTokens(tokens []string, values []string) []string {
	if len(values) == 0 {
		return tokens
	}
	sorted := make([]string, len(values))
	copy(sorted, values)
	sort.Strings(sorted)
	for _, v := range sorted {
		tokens = appendTokens(tokens, v)
	}
	return tokens
}

// appendTokens lowercases a field value and splits it into word tokens.
// Underscores are kept so multiword tags like "natural_glow" stay one
// token. Single-character fragments are dropped.
func appendTokens(tokens []string, value string) []string {
	words := strings.FieldsFunc(strings.ToLower(value), func(r rune) bool {
		return !((r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '_')
	})
	for _, w := range words {
		if len(w) >= 2 {
			tokens = append(tokens, w)
		}
	}
	return tokens
}
