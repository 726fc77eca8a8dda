// Package config provides configuration for the recommendation service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

const (
	// DefaultPort is the default HTTP port for the API service.
	DefaultPort = 8080

	// DefaultCatalogPath is the default catalog data file.
	DefaultCatalogPath = "data/catalog.yaml"

	// DefaultProfilesPath is the default named-profiles data file.
	DefaultProfilesPath = "data/profiles.yaml"

	// DefaultHTTPTimeout bounds request handling.
	DefaultHTTPTimeout = 15 * time.Second
)

// Config holds the application configuration.
type Config struct {
	// HTTP settings
	Port        int           `json:"port"`
	HTTPTimeout time.Duration `json:"-"`

	// Data files
	CatalogPath  string `json:"catalog_path"`
	ProfilesPath string `json:"profiles_path"`

	// WatchCatalog reloads the snapshot when the catalog file changes.
	WatchCatalog bool `json:"watch_catalog"`

	// Preset selects the personalization scoring configuration.
	Preset models.Preset `json:"preset"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Port:         DefaultPort,
		HTTPTimeout:  DefaultHTTPTimeout,
		CatalogPath:  DefaultCatalogPath,
		ProfilesPath: DefaultProfilesPath,
		WatchCatalog: true,
		Preset:       models.PresetEnhanced,
	}
}

// ScoringConfig returns the scoring configuration for the selected
// preset.
func (c *Config) ScoringConfig() *models.ScoringConfig {
	return models.ScoringConfigFor(c.Preset)
}

// Load builds the configuration from defaults, an optional settings
// file, and environment overrides, in that order.
func Load(settingsPath string) (*Config, error) {
	cfg := Default()

	if settingsPath != "" {
		data, err := os.ReadFile(settingsPath)
		if err != nil {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("read settings: %w", err)
			}
		} else if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse settings %s: %w", settingsPath, err)
		}
	}

	cfg.applyEnv()

	if _, err := models.ParsePreset(string(cfg.Preset)); err != nil {
		return nil, err
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d", cfg.Port)
	}
	return cfg, nil
}

// applyEnv overrides config fields from SEPHORA_REC_* variables.
func (c *Config) applyEnv() {
	if v := os.Getenv("SEPHORA_REC_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			c.Port = p
		}
	}
	if v := os.Getenv("SEPHORA_REC_CATALOG"); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv("SEPHORA_REC_PROFILES"); v != "" {
		c.ProfilesPath = v
	}
	if v := os.Getenv("SEPHORA_REC_PRESET"); v != "" {
		c.Preset = models.Preset(v)
	}
	if v := os.Getenv("SEPHORA_REC_WATCH"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.WatchCatalog = b
		}
	}
}
