package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

func TestNeighborScore_Components(t *testing.T) {
	query := models.Item{
		ID:        1,
		Category:  "Skincare",
		Price:     30,
		SkinTypes: []string{"oily", "combination"},
		Concerns:  []string{"pores", "oil_control"},
	}

	tests := []struct {
		name      string
		candidate models.Item
		want      float64
	}{
		{
			name: "same category close price shared tags",
			candidate: models.Item{
				ID: 2, Category: "Skincare", Price: 40,
				SkinTypes: []string{"oily"}, Concerns: []string{"pores"},
			},
			// 3 (category) + 2×1 (concern) + 1.5×1 (skin) + 1 (price ≤ 20 apart)
			want: 7.5,
		},
		{
			name:      "category only",
			candidate: models.Item{ID: 3, Category: "Skincare", Price: 120},
			want:      3,
		},
		{
			name:      "price proximity only",
			candidate: models.Item{ID: 4, Category: "Lip", Price: 45},
			want:      1,
		},
		{
			name:      "nothing shared",
			candidate: models.Item{ID: 5, Category: "Lip", Price: 200},
			want:      0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NeighborScore(tt.candidate, query), 1e-9)
		})
	}
}

func TestRankNeighbors_ExcludesQueryAndNonPositive(t *testing.T) {
	query := models.Item{ID: 1, Category: "Skincare", Price: 30}
	items := []models.Item{
		query,
		{ID: 2, Category: "Skincare", Price: 35},
		{ID: 3, Category: "Lip", Price: 500},
	}

	ranked := RankNeighbors(items, query, 5)

	require.Len(t, ranked, 1)
	assert.Equal(t, 2, ranked[0].Item.ID)
}

func TestRankNeighbors_TiesBreakByAscendingID(t *testing.T) {
	query := models.Item{ID: 1, Category: "Skincare", Price: 30}
	items := []models.Item{
		query,
		{ID: 6, Category: "Skincare", Price: 31},
		{ID: 2, Category: "Skincare", Price: 32},
	}

	ranked := RankNeighbors(items, query, 5)

	require.Len(t, ranked, 2)
	assert.Equal(t, 2, ranked[0].Item.ID)
	assert.Equal(t, 6, ranked[1].Item.ID)
}
