// Package catalog owns the immutable item snapshot and its lifecycle:
// load once at startup, rebuild wholesale and swap atomically on reload.
package catalog

import (
	"fmt"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// Snapshot is an immutable ordered sequence of catalog items. It owns
// the item records; consumers receive value copies or read-only slices.
type Snapshot struct {
	items []models.Item
	byID  map[int]int // item ID -> position in items
}

// NewSnapshot validates the item sequence and freezes it. Item IDs must
// be unique; price, rating, and review count must be in range.
func NewSnapshot(items []models.Item) (*Snapshot, error) {
	byID := make(map[int]int, len(items))
	for i, item := range items {
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate item id %d", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("item %d: negative price %.2f", item.ID, item.Price)
		}
		if item.Rating < 0 || item.Rating > 5 {
			return nil, fmt.Errorf("item %d: rating %.2f out of range", item.ID, item.Rating)
		}
		if item.ReviewCount < 0 {
			return nil, fmt.Errorf("item %d: negative review count %d", item.ID, item.ReviewCount)
		}
		byID[item.ID] = i
	}
	return &Snapshot{items: items, byID: byID}, nil
}

// Len returns the number of items in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.items)
}

// Items returns the snapshot's items in their fixed order. The returned
// slice must not be mutated.
func (s *Snapshot) Items() []models.Item {
	return s.items
}

// Item looks up an item by ID.
func (s *Snapshot) Item(id int) (models.Item, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Item{}, false
	}
	return s.items[i], true
}

// Has reports whether an item ID exists in the snapshot.
func (s *Snapshot) Has(id int) bool {
	_, ok := s.byID[id]
	return ok
}
