// Package recommend is the facade over the similarity index and the
// scoring functions. It exposes the four recommendation operations
// consumed by the HTTP layer and attaches display fields copied from
// the live catalog snapshot.
package recommend

import (
	"errors"
	"fmt"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/catalog"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/scoring"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// Default result counts per operation.
const (
	DefaultContentCount      = 3
	DefaultPersonalizedCount = 3
	DefaultBudgetCount       = 5
	DefaultTrendingCount     = 5
)

// Fixed reason strings. Reasons are part of the output contract:
// repeated calls with unchanged inputs must reproduce them byte for byte.
const (
	reasonContent  = "Similar product features and attributes"
	reasonBudget   = "Great value within your budget"
	reasonTrending = "Trending product with high ratings and reviews"
)

// ErrItemNotFound reports that the query item does not exist in the
// current snapshot. It is distinct from a present item with zero
// qualifying recommendations, which yields an empty slice and nil error.
var ErrItemNotFound = errors.New("item not found")

// Engine orchestrates snapshot, index, and scoring functions. It holds
// no mutable state of its own; every call reads one consistent
// snapshot/index pair from the store.
type Engine struct {
	store *catalog.Store
	calc  *scoring.Calculator
}

// New creates an engine over the catalog store with the given scoring
// configuration (nil means the simple preset).
func New(store *catalog.Store, config *models.ScoringConfig) *Engine {
	return &Engine{
		store: store,
		calc:  scoring.NewCalculator(config),
	}
}

// Preset returns the active scoring preset.
func (e *Engine) Preset() models.Preset {
	return e.calc.Config().Preset
}

// ScoringConfig returns the active scoring configuration, including the
// clamping policy in effect.
func (e *Engine) ScoringConfig() *models.ScoringConfig {
	return e.calc.Config()
}

// HasItem reports whether an item exists in the current snapshot.
// The HTTP layer uses this to tell "target absent" apart from "target
// present, zero qualifying recommendations".
func (e *Engine) HasItem(id int) bool {
	return e.store.Current().Snapshot.Has(id)
}

// Item looks up an item in the current snapshot.
func (e *Engine) Item(id int) (models.Item, bool) {
	return e.store.Current().Snapshot.Item(id)
}

// Items returns the current snapshot's items in fixed order.
func (e *Engine) Items() []models.Item {
	return e.store.Current().Snapshot.Items()
}

// ContentRecommendations returns the count items most similar to the
// query item per the TF-IDF cosine index. Returns ErrItemNotFound when
// the item is absent; count <= 0 yields an empty result.
func (e *Engine) ContentRecommendations(itemID, count int) ([]models.Entry, error) {
	build := e.store.Current()
	if !build.Snapshot.Has(itemID) {
		return []models.Entry{}, ErrItemNotFound
	}
	if count <= 0 {
		return []models.Entry{}, nil
	}

	neighbors := build.Index.SimilarTo(itemID, count)
	entries := make([]models.Entry, 0, len(neighbors))
	for _, n := range neighbors {
		item, ok := build.Snapshot.Item(n.ItemID)
		if !ok {
			continue
		}
		entries = append(entries, newEntry(item, models.KindContent, n.Score, reasonContent))
	}
	return entries, nil
}

// NeighborRecommendations is the simplified content listing that works
// without the similarity index, scoring candidates on shared category,
// concerns, skin types, and price proximity.
func (e *Engine) NeighborRecommendations(itemID, count int) ([]models.Entry, error) {
	build := e.store.Current()
	query, ok := build.Snapshot.Item(itemID)
	if !ok {
		return []models.Entry{}, ErrItemNotFound
	}

	scored := scoring.RankNeighbors(build.Snapshot.Items(), query, count)
	entries := make([]models.Entry, 0, len(scored))
	for _, s := range scored {
		entries = append(entries, newEntry(s.Item, models.KindContent, s.Score, reasonContent))
	}
	return entries, nil
}

// PersonalizedRecommendations scores every item against the profile and
// returns the top count entries under the active preset.
func (e *Engine) PersonalizedRecommendations(profile models.Profile, count int) []models.Entry {
	build := e.store.Current()
	scored := e.calc.Rank(build.Snapshot.Items(), profile, count)

	reason := fmt.Sprintf("Great match for %s skin and your concerns", profile.SkinType)
	if e.Preset() == models.PresetEnhanced {
		reason = fmt.Sprintf("Perfect match for %s skin and your concerns", profile.SkinType)
	}

	entries := make([]models.Entry, 0, len(scored))
	for _, s := range scored {
		entries = append(entries, newEntry(s.Item, models.KindPersonalized, s.Score, reason))
	}
	return entries
}

// BudgetRecommendations returns up to count items priced within
// maxPrice, optionally filtered to one category, with savings attached.
// A negative maxPrice yields an empty result.
func (e *Engine) BudgetRecommendations(maxPrice float64, category string, count int) []models.Entry {
	build := e.store.Current()
	results := scoring.RankByBudget(build.Snapshot.Items(), maxPrice, category, count)

	entries := make([]models.Entry, 0, len(results))
	for _, r := range results {
		entry := newEntry(r.Item, models.KindBudget, 0, reasonBudget)
		entry.Savings = r.SavingsLabel()
		entries = append(entries, entry)
	}
	return entries
}

// TrendingRecommendations returns the count most popular items by
// review_count × rating.
func (e *Engine) TrendingRecommendations(count int) []models.Entry {
	build := e.store.Current()
	scored := scoring.RankByTrending(build.Snapshot.Items(), count)

	entries := make([]models.Entry, 0, len(scored))
	for _, s := range scored {
		entries = append(entries, newEntry(s.Item, models.KindTrending, s.Score, reasonTrending))
	}
	return entries
}

// newEntry copies display fields from the literal snapshot item. Prices
// and ratings are never derived back from normalized index values.
func newEntry(item models.Item, kind models.EntryKind, score float64, reason string) models.Entry {
	return models.Entry{
		ID:          item.ID,
		Name:        item.Name,
		Brand:       item.Brand,
		Category:    item.Category,
		Price:       item.Price,
		Rating:      item.Rating,
		ReviewCount: item.ReviewCount,
		Kind:        kind,
		Score:       score,
		Reason:      reason,
	}
}
