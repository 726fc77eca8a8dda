package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/pkg/models"
)

const catalogYAML = `
items:
  - id: 1
    name: "Foundation"
    brand: "Fenty Beauty"
    category: "Foundation"
    price: 38.00
    rating: 4.2
    review_count: 1520
    skin_types: [oily, combination]
    concerns: [coverage]
  - id: 2
    name: "Blush"
    brand: "Rare Beauty"
    category: "Blush"
    price: 22.00
    rating: 4.5
    review_count: 2310
    skin_types: [all]
    concerns: [natural_glow]
`

func writeCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestNewSnapshot_Validation(t *testing.T) {
	_, err := NewSnapshot([]models.Item{{ID: 1}, {ID: 1}})
	assert.ErrorContains(t, err, "duplicate item id")

	_, err = NewSnapshot([]models.Item{{ID: 1, Price: -1}})
	assert.ErrorContains(t, err, "negative price")

	_, err = NewSnapshot([]models.Item{{ID: 1, Rating: 6}})
	assert.ErrorContains(t, err, "out of range")

	_, err = NewSnapshot([]models.Item{{ID: 1, ReviewCount: -5}})
	assert.ErrorContains(t, err, "negative review count")
}

func TestNewSnapshot_EmptyCatalogIsValid(t *testing.T) {
	s, err := NewSnapshot(nil)
	require.NoError(t, err)
	assert.Zero(t, s.Len())
	assert.False(t, s.Has(1))
}

func TestSnapshot_Lookup(t *testing.T) {
	s, err := NewSnapshot([]models.Item{{ID: 7, Name: "Serum", Rating: 4.1}})
	require.NoError(t, err)

	item, ok := s.Item(7)
	require.True(t, ok)
	assert.Equal(t, "Serum", item.Name)

	_, ok = s.Item(8)
	assert.False(t, ok)
}

func TestLoad_ParsesCatalogFile(t *testing.T) {
	path := writeCatalog(t, catalogYAML)

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())

	item, ok := s.Item(1)
	require.True(t, ok)
	assert.Equal(t, "Fenty Beauty", item.Brand)
	assert.Equal(t, 1520, item.ReviewCount)
	assert.Equal(t, []string{"oily", "combination"}, item.SkinTypes)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeCatalog(t, "items: [not: valid: yaml")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestOpen_BuildsIndex(t *testing.T) {
	store, err := Open(writeCatalog(t, catalogYAML))
	require.NoError(t, err)

	build := store.Current()
	assert.Equal(t, 2, build.Snapshot.Len())
	assert.Equal(t, 2, build.Index.Len())
	assert.True(t, build.Index.Has(1))
}

func TestStore_ReloadSwapsWholeBuild(t *testing.T) {
	path := writeCatalog(t, catalogYAML)
	store, err := Open(path)
	require.NoError(t, err)

	before := store.Current()

	smaller := `
items:
  - id: 9
    name: "Cleanser"
    brand: "Youth To The People"
    category: "Skincare"
    price: 39.00
    rating: 4.4
    review_count: 1680
    skin_types: [all]
    concerns: [gentle_products]
`
	require.NoError(t, os.WriteFile(path, []byte(smaller), 0o600))
	require.NoError(t, store.Reload())

	after := store.Current()
	assert.NotSame(t, before, after)
	assert.Equal(t, 1, after.Snapshot.Len())
	assert.True(t, after.Snapshot.Has(9))
	assert.True(t, after.Index.Has(9))
	assert.False(t, after.Index.Has(1))

	// The old build stays internally consistent for readers that hold it.
	assert.Equal(t, 2, before.Snapshot.Len())
	assert.True(t, before.Index.Has(1))
}

func TestStore_FailedReloadKeepsPreviousBuild(t *testing.T) {
	path := writeCatalog(t, catalogYAML)
	store, err := Open(path)
	require.NoError(t, err)

	before := store.Current()
	require.NoError(t, os.WriteFile(path, []byte("items: [id: bogus"), 0o600))

	assert.Error(t, store.Reload())
	assert.Same(t, before, store.Current())
}
