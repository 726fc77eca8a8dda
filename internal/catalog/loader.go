package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// catalogFile is the on-disk shape of the catalog data file.
type catalogFile struct {
	Items []models.Item `yaml:"items"`
}

// Load reads and validates the catalog data file. An empty item list is
// valid: every engine operation over an empty snapshot returns empty
// results rather than failing.
func Load(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	snapshot, err := NewSnapshot(file.Items)
	if err != nil {
		return nil, fmt.Errorf("validate catalog %s: %w", path, err)
	}
	return snapshot, nil
}
