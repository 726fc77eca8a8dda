package similarity

import (
	"math"
	"sort"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/features"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// Neighbor is one entry in a similarity ranking.
type Neighbor struct {
	ItemID int
	Score  float64
}

// Index holds the pairwise content-similarity matrix for one catalog
// snapshot. It is immutable after Build and safe for concurrent reads;
// a snapshot change rebuilds the whole index, never patches it.
type Index struct {
	ids    []int       // item IDs in snapshot order
	pos    map[int]int // item ID -> matrix row
	matrix [][]float64 // symmetric, values in [0,1], diagonal 1
}

// Build derives a feature vector per item, TF-IDF weighted descriptor
// tokens joined with the min-max scaled numeric features, and computes
// cosine similarity between all pairs. IDF uses the smoothed form
// ln((1+N)/(1+df)) + 1 so terms present in every document still carry a
// small weight; vectors are L2-normalized before comparison.
func Build(items []models.Item) *Index {
	n := len(items)
	idx := &Index{
		ids:    make([]int, n),
		pos:    make(map[int]int, n),
		matrix: make([][]float64, n),
	}

	// Term frequencies per document and document frequencies per term.
	tfs := make([]map[string]float64, n)
	df := make(map[string]int)
	for i, item := range items {
		idx.ids[i] = item.ID
		idx.pos[item.ID] = i

		tf := make(map[string]float64)
		for _, tok := range features.DescriptorTokens(item) {
			tf[tok]++
		}
		tfs[i] = tf
		for term := range tf {
			df[term]++
		}
	}

	idf := make(map[string]float64, len(df))
	for term, count := range df {
		idf[term] = math.Log(float64(1+n)/float64(1+count)) + 1
	}

	stats := features.ComputeStats(items)
	vectors := make([]Vector, n)
	for i, tf := range tfs {
		weights := make(map[string]float64, len(tf)+4)
		for term, count := range tf {
			weights[term] = count * idf[term]
		}
		// Numeric pseudo-terms bypass IDF; their weight is the scaled
		// feature value itself.
		for term, w := range features.ProjectNumeric(items[i], stats).TermWeights() {
			weights[term] = w
		}
		vectors[i] = NewVector(weights).Normalize()
	}

	for i := 0; i < n; i++ {
		idx.matrix[i] = make([]float64, n)
		idx.matrix[i][i] = 1.0
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := Cosine(vectors[i], vectors[j])
			idx.matrix[i][j] = s
			idx.matrix[j][i] = s
		}
	}
	return idx
}

// Len returns the number of indexed items.
func (idx *Index) Len() int {
	return len(idx.ids)
}

// Has reports whether the item is present in the index.
func (idx *Index) Has(itemID int) bool {
	_, ok := idx.pos[itemID]
	return ok
}

// Similarity returns the pairwise score for two item IDs.
func (idx *Index) Similarity(a, b int) (float64, bool) {
	i, ok := idx.pos[a]
	if !ok {
		return 0, false
	}
	j, ok := idx.pos[b]
	if !ok {
		return 0, false
	}
	return idx.matrix[i][j], true
}

// SimilarTo returns the k items most similar to the query item,
// excluding the item itself, ordered by descending score with ties
// broken by ascending item ID. An unknown item ID yields an empty
// slice; the caller decides whether that is a not-found condition.
func (idx *Index) SimilarTo(itemID, k int) []Neighbor {
	row, ok := idx.pos[itemID]
	if !ok || k <= 0 {
		return []Neighbor{}
	}

	neighbors := make([]Neighbor, 0, len(idx.ids)-1)
	for i, id := range idx.ids {
		if i == row {
			continue
		}
		neighbors = append(neighbors, Neighbor{ItemID: id, Score: idx.matrix[row][i]})
	}
	sort.SliceStable(neighbors, func(a, b int) bool {
		if neighbors[a].Score != neighbors[b].Score {
			return neighbors[a].Score > neighbors[b].Score
		}
		return neighbors[a].ItemID < neighbors[b].ItemID
	})
	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors
}
