// Package server provides the HTTP API service for the recommendation
// engine.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/catalog"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/config"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/profile"
	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/recommend"
)

// Service is the HTTP API orchestrator: it owns the router, the engine
// facade, and the optional catalog watcher.
type Service struct {
	version string
	config  *config.Config

	store    *catalog.Store
	profiles *profile.Directory
	engine   *recommend.Engine
	watcher  *catalog.Watcher

	router    *chi.Mux
	server    *http.Server
	startTime time.Time
}

// NewService loads the catalog and profile data and wires the router.
func NewService(version string, cfg *config.Config) (*Service, error) {
	store, err := catalog.Open(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	profiles, err := profile.LoadDirectory(cfg.ProfilesPath)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}

	svc := &Service{
		version:   version,
		config:    cfg,
		store:     store,
		profiles:  profiles,
		engine:    recommend.New(store, cfg.ScoringConfig()),
		router:    chi.NewRouter(),
		startTime: time.Now(),
	}

	svc.setupMiddleware()
	svc.setupRoutes()

	if cfg.WatchCatalog {
		watcher, err := catalog.Watch(store)
		if err != nil {
			log.Warn().Err(err).Msg("Catalog watcher unavailable, hot reload disabled")
		} else {
			svc.watcher = watcher
		}
	}

	log.Info().
		Int("items", store.Current().Snapshot.Len()).
		Int("profiles", profiles.Len()).
		Str("preset", string(cfg.Preset)).
		Msg("Recommendation engine ready")

	return svc, nil
}

// setupMiddleware configures the global middleware stack.
func (s *Service) setupMiddleware() {
	s.router.Use(middleware.RealIP)
	s.router.Use(RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(s.config.HTTPTimeout))
	s.router.Use(SecurityHeaders)
}

// setupRoutes configures HTTP routes.
func (s *Service) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/health", s.handleHealth)

	s.router.Get("/products", s.handleProducts)
	s.router.Get("/products/{id}", s.handleProductDetail)

	s.router.Route("/recommendations", func(r chi.Router) {
		r.Get("/content/{id}", s.handleContentRecommendations)
		r.Get("/user/{userID}", s.handleUserRecommendations)
		r.Post("/custom", s.handleCustomRecommendations)
		r.Get("/budget/{maxPrice}", s.handleBudgetRecommendations)
	})
	s.router.Get("/trending", s.handleTrending)

	s.router.Get("/users", s.handleUsers)
	s.router.Get("/users/{userID}", s.handleUser)
}

// Handler exposes the router. Used by tests.
func (s *Service) Handler() http.Handler {
	return s.router
}

// Start begins serving HTTP. It returns when the listener stops.
func (s *Service) Start() error {
	s.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.config.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Info().Int("port", s.config.Port).Msg("HTTP server listening")
	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown stops the watcher and drains the HTTP server.
func (s *Service) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			log.Warn().Err(err).Msg("Catalog watcher close failed")
		}
	}
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
