package models

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// EntryKind identifies which recommendation mode produced an entry and
// therefore how its score field is named on the wire.
type EntryKind string

const (
	// KindContent entries carry a cosine similarity score.
	KindContent EntryKind = "content"
	// KindPersonalized entries carry a personalization score.
	KindPersonalized EntryKind = "personalized"
	// KindBudget entries carry a savings string instead of a score.
	KindBudget EntryKind = "budget"
	// KindTrending entries carry the review count; the ranking key itself
	// is omitted from the serialized form.
	KindTrending EntryKind = "trending"
)

// Entry is a single recommendation result. Display fields are copied
// verbatim from the snapshot item; entries are built fresh per call and
// never cached.
type Entry struct {
	ID          int
	Name        string
	Brand       string
	Category    string
	Price       float64
	Rating      float64
	ReviewCount int
	Kind        EntryKind
	Score       float64
	Savings     string
	Reason      string
}

// entryWire is the serialized shape shared by all entry kinds.
// The score key varies by kind, so Entry marshals by hand.
type entryWire struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"name"`
	Brand                string   `json:"brand"`
	Category             string   `json:"category"`
	Price                float64  `json:"price"`
	Rating               float64  `json:"rating"`
	ReviewCount          *int     `json:"review_count,omitempty"`
	SimilarityScore      *float64 `json:"similarity_score,omitempty"`
	PersonalizationScore *float64 `json:"personalization_score,omitempty"`
	Savings              string   `json:"savings,omitempty"`
	Reason               string   `json:"reason"`
}

// MarshalJSON serializes the entry with the score key its mode requires:
// similarity_score for content entries, personalization_score for
// personalized ones, savings for budget, review_count for trending.
func (e Entry) MarshalJSON() ([]byte, error) {
	w := entryWire{
		ID:       e.ID,
		Name:     e.Name,
		Brand:    e.Brand,
		Category: e.Category,
		Price:    e.Price,
		Rating:   e.Rating,
		Savings:  e.Savings,
		Reason:   e.Reason,
	}
	switch e.Kind {
	case KindContent:
		score := e.Score
		w.SimilarityScore = &score
	case KindPersonalized:
		score := e.Score
		w.PersonalizationScore = &score
	case KindBudget:
		// savings only, no score
	case KindTrending:
		count := e.ReviewCount
		w.ReviewCount = &count
	default:
		return nil, fmt.Errorf("unknown entry kind %q", e.Kind)
	}
	return json.Marshal(w)
}
