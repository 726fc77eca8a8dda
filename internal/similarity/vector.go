// Package similarity builds a TF-IDF weighted vector space over item
// descriptors and the full pairwise cosine-similarity matrix used for
// content-based recommendations.
package similarity

import (
	"math"
	"sort"
)

// Term is a single term-weight pair in a sparse vector.
type Term struct {
	Word   string
	Weight float64
}

// Vector is a sparse term-weight vector, always sorted by Word so pairs
// of vectors can be combined with a merge-join.
type Vector []Term

// NewVector creates a sorted Vector from a term-weight map.
func NewVector(weights map[string]float64) Vector {
	if len(weights) == 0 {
		return nil
	}
	v := make(Vector, 0, len(weights))
	for word, w := range weights {
		v = append(v, Term{Word: word, Weight: w})
	}
	sort.Slice(v, func(i, j int) bool {
		return v[i].Word < v[j].Word
	})
	return v
}

// Normalize scales the vector to unit length. A zero vector is returned
// unchanged.
func (v Vector) Normalize() Vector {
	var norm float64
	for _, t := range v {
		norm += t.Weight * t.Weight
	}
	if norm == 0 {
		return v
	}
	norm = math.Sqrt(norm)
	out := make(Vector, len(v))
	for i, t := range v {
		out[i] = Term{Word: t.Word, Weight: t.Weight / norm}
	}
	return out
}

// Cosine computes the cosine of the angle between two sorted sparse
// vectors using a merge-join. Returns 0 if either vector is empty.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot, normA, normB float64
	i, j := 0, 0

	for i < len(a) && j < len(b) {
		switch {
		case a[i].Word == b[j].Word:
			dot += a[i].Weight * b[j].Weight
			normA += a[i].Weight * a[i].Weight
			normB += b[j].Weight * b[j].Weight
			i++
			j++
		case a[i].Word < b[j].Word:
			normA += a[i].Weight * a[i].Weight
			i++
		default:
			normB += b[j].Weight * b[j].Weight
			j++
		}
	}
	for ; i < len(a); i++ {
		normA += a[i].Weight * a[i].Weight
	}
	for ; j < len(b); j++ {
		normB += b[j].Weight * b[j].Weight
	}

	denom := math.Sqrt(normA) * math.Sqrt(normB)
	if denom == 0 {
		return 0
	}
	return dot / denom
}
