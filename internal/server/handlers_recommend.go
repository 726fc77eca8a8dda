package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/profile"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/recommend"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// contentRecommendations dispatches the content operation by preset:
// the simple preset uses the attribute-overlap neighbor scorer, the
// enhanced preset the TF-IDF cosine index.
func (s *Service) contentRecommendations(itemID, count int) ([]models.Entry, error) {
	if s.engine.Preset() == models.PresetSimple {
		return s.engine.NeighborRecommendations(itemID, count)
	}
	return s.engine.ContentRecommendations(itemID, count)
}

// handleContentRecommendations serves content-based recommendations.
// GET /recommendations/content/{id}?count=
func (s *Service) handleContentRecommendations(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}
	count := parseCountParam(r, "count", recommend.DefaultContentCount)

	entries, err := s.contentRecommendations(id, count)
	if errors.Is(err, recommend.ErrItemNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":      "Product not found",
			"product_id": id,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product_id":          id,
		"recommendations":     entries,
		"count":               len(entries),
		"recommendation_type": "content_based",
	})
}

// handleUserRecommendations serves personalized recommendations for a
// named profile.
// GET /recommendations/user/{userID}?count=
func (s *Service) handleUserRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	p, err := s.profiles.Lookup(userID)
	if errors.Is(err, profile.ErrProfileNotFound) {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	count := parseCountParam(r, "count", recommend.DefaultPersonalizedCount)

	entries := s.engine.PersonalizedRecommendations(p, count)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user_id":   userID,
		"user_name": p.Name,
		"user_profile": map[string]interface{}{
			"skin_type":  p.SkinType,
			"concerns":   p.Concerns,
			"budget_max": p.BudgetMax,
		},
		"recommendations":     entries,
		"count":               len(entries),
		"recommendation_type": "personalized",
	})
}

// customProfileRequest is the POST body for ad-hoc recommendations.
type customProfileRequest struct {
	Name            string   `json:"name"`
	Age             int      `json:"age"`
	SkinType        string   `json:"skin_type"`
	Concerns        []string `json:"concerns"`
	BudgetMax       float64  `json:"budget_max"`
	PreferredBrands []string `json:"preferred_brands"`
	Count           int      `json:"count"`
}

// handleCustomRecommendations serves personalized recommendations for a
// profile supplied in the request body.
// POST /recommendations/custom
func (s *Service) handleCustomRecommendations(w http.ResponseWriter, r *http.Request) {
	var req customProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		req.Name = "Custom User"
	}
	if req.SkinType == "" {
		req.SkinType = "normal"
	}
	if req.Age <= 0 {
		req.Age = 25
	}
	count := req.Count
	if count == 0 {
		count = recommend.DefaultPersonalizedCount
	}

	p := models.NewCustomProfile(req.Name, req.Age, req.SkinType, req.Concerns, req.BudgetMax, req.PreferredBrands)
	entries := s.engine.PersonalizedRecommendations(p, count)

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"custom_profile":      p,
		"recommendations":     entries,
		"count":               len(entries),
		"recommendation_type": "custom_personalized",
	})
}

// handleBudgetRecommendations serves budget-filtered recommendations.
// GET /recommendations/budget/{maxPrice}?category=&count=
func (s *Service) handleBudgetRecommendations(w http.ResponseWriter, r *http.Request) {
	maxPrice, err := strconv.ParseFloat(chi.URLParam(r, "maxPrice"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid max price")
		return
	}
	category := r.URL.Query().Get("category")
	count := parseCountParam(r, "count", recommend.DefaultBudgetCount)

	entries := s.engine.BudgetRecommendations(maxPrice, category, count)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"max_price":           maxPrice,
		"category":            category,
		"recommendations":     entries,
		"count":               len(entries),
		"recommendation_type": "budget_friendly",
	})
}

// handleTrending serves the popularity ranking.
// GET /trending?count=
func (s *Service) handleTrending(w http.ResponseWriter, r *http.Request) {
	count := parseCountParam(r, "count", recommend.DefaultTrendingCount)

	entries := s.engine.TrendingRecommendations(count)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"trending_products": entries,
		"count":             len(entries),
		"based_on":          "review_count_and_ratings",
	})
}
