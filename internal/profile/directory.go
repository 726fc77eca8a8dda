// Package profile provides the fixed directory of named consumer
// profiles. Profiles load once at startup; custom profiles are built
// per request via models.NewCustomProfile.
package profile

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

// ErrProfileNotFound reports that no named profile carries the
// requested ID.
var ErrProfileNotFound = errors.New("profile not found")

// Directory holds the named profiles keyed by profile ID.
type Directory struct {
	byID  map[string]models.Profile
	order []string
}

// profilesFile is the on-disk shape of the profiles data file.
type profilesFile struct {
	Profiles []models.Profile `yaml:"profiles"`
}

// LoadDirectory reads the profiles data file. Profiles missing an
// age-group tag get one derived from their age; a missing budget falls
// back to the default.
func LoadDirectory(path string) (*Directory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profiles: %w", err)
	}

	var file profilesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse profiles %s: %w", path, err)
	}

	dir := &Directory{byID: make(map[string]models.Profile, len(file.Profiles))}
	for _, p := range file.Profiles {
		if p.ID == "" {
			return nil, fmt.Errorf("profile %q has no id", p.Name)
		}
		if _, dup := dir.byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate profile id %q", p.ID)
		}
		if p.AgeGroup == "" {
			p.AgeGroup = models.AgeGroupFor(p.Age)
		}
		if p.BudgetMax <= 0 {
			p.BudgetMax = models.DefaultBudgetMax
		}
		dir.byID[p.ID] = p
		dir.order = append(dir.order, p.ID)
	}
	sort.Strings(dir.order)
	return dir, nil
}

// NewDirectory builds a directory from in-memory profiles. Used by tests.
func NewDirectory(profiles []models.Profile) *Directory {
	dir := &Directory{byID: make(map[string]models.Profile, len(profiles))}
	for _, p := range profiles {
		dir.byID[p.ID] = p
		dir.order = append(dir.order, p.ID)
	}
	sort.Strings(dir.order)
	return dir
}

// Get looks up a named profile by ID.
func (d *Directory) Get(id string) (models.Profile, bool) {
	p, ok := d.byID[id]
	return p, ok
}

// Lookup is Get with an error instead of an ok bool, for callers that
// propagate the not-found condition.
func (d *Directory) Lookup(id string) (models.Profile, error) {
	p, ok := d.byID[id]
	if !ok {
		return models.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, id)
	}
	return p, nil
}

// All returns every named profile in ascending ID order.
func (d *Directory) All() []models.Profile {
	out := make([]models.Profile, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.byID[id])
	}
	return out
}

// Len returns the number of named profiles.
func (d *Directory) Len() int {
	return len(d.byID)
}
