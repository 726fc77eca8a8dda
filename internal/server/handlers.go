package server

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// writeJSON writes a JSON response with proper error handling.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}

// writeError writes a JSON error body with the given status.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// parseCountParam reads an integer query parameter, falling back to the
// default when the parameter is absent or not a number. Explicit
// non-positive values pass through: the engine answers them with an
// empty result by contract.
func parseCountParam(r *http.Request, name string, defaultVal int) int {
	val := r.URL.Query().Get(name)
	if val == "" {
		return defaultVal
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return parsed
}

// handleIndex describes the API.
// GET /
func (s *Service) handleIndex(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "AI Sephora Recommendation API",
		"version": s.version,
		"preset":  s.engine.Preset(),
		"features": []string{
			"Content-based recommendations",
			"Personalized user recommendations",
			"Budget-friendly suggestions",
			"Trending products",
			"User profile management",
		},
		"endpoints": map[string]string{
			"get_products":            "/products",
			"get_product_details":     "/products/{product_id}",
			"content_recommendations": "/recommendations/content/{product_id}",
			"user_recommendations":    "/recommendations/user/{user_id}",
			"custom_recommendations":  "/recommendations/custom",
			"budget_recommendations":  "/recommendations/budget/{max_price}",
			"trending_products":       "/trending",
			"user_profiles":           "/users",
			"specific_user":           "/users/{user_id}",
		},
	})
}

// handleHealth reports service status.
// GET /health
func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	build := s.store.Current()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"version":        s.version,
		"items":          build.Snapshot.Len(),
		"profiles":       s.profiles.Len(),
		"preset":         s.engine.Preset(),
		"uptime_seconds": int(time.Since(s.startTime).Seconds()),
	})
}

// handleProducts lists catalog items with optional filters.
// GET /products?category=&brand=&max_price=&skin_type=
func (s *Service) handleProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	category := q.Get("category")
	brand := q.Get("brand")
	skinType := q.Get("skin_type")

	var maxPrice float64
	var hasMaxPrice bool
	if v := q.Get("max_price"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid max_price")
			return
		}
		maxPrice, hasMaxPrice = parsed, true
	}

	filtered := make([]models.Item, 0)
	for _, item := range s.engine.Items() {
		if category != "" && !strings.EqualFold(item.Category, category) {
			continue
		}
		if brand != "" && !strings.Contains(strings.ToLower(item.Brand), strings.ToLower(brand)) {
			continue
		}
		if hasMaxPrice && item.Price > maxPrice {
			continue
		}
		if skinType != "" && !item.SuitsSkinType(skinType) {
			continue
		}
		filtered = append(filtered, item)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"products": filtered,
		"total":    len(filtered),
		"filters_applied": map[string]interface{}{
			"category":  category,
			"brand":     brand,
			"max_price": maxPrice,
			"skin_type": skinType,
		},
	})
}

// handleProductDetail returns one item plus its most similar items.
// GET /products/{id}
func (s *Service) handleProductDetail(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	item, ok := s.engine.Item(id)
	if !ok {
		writeError(w, http.StatusNotFound, "Product not found")
		return
	}

	similar, _ := s.contentRecommendations(id, 3)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"product":          item,
		"similar_products": similar,
	})
}

// handleUsers lists the named profiles.
// GET /users
func (s *Service) handleUsers(w http.ResponseWriter, r *http.Request) {
	profiles := s.profiles.All()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"users": profiles,
		"total": len(profiles),
	})
}

// handleUser returns one named profile.
// GET /users/{userID}
func (s *Service) handleUser(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	p, ok := s.profiles.Get(userID)
	if !ok {
		writeError(w, http.StatusNotFound, "User not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}
