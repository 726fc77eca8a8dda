package catalog

import (
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"

	"github.com/EmmanuellaAlaso/Ai-sephora-recommendation/internal/similarity"
)

// Build pairs one snapshot with the similarity index derived from it.
// The two always travel together: readers either see the old complete
// pair or the new complete pair, never a half-rebuilt state.
type Build struct {
	Snapshot *Snapshot
	Index    *similarity.Index
}

// Store holds the current snapshot/index pair behind a single atomic
// reference. Reads are lock-free; Reload builds into a fresh structure
// and swaps the reference once construction is complete.
type Store struct {
	path    string
	current atomic.Pointer[Build]
	group   singleflight.Group
}

// Open loads the catalog file, builds the initial similarity index, and
// returns a store ready for concurrent readers.
func Open(path string) (*Store, error) {
	snapshot, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.swap(snapshot)
	return s, nil
}

// NewStoreFromSnapshot wraps an already-constructed snapshot. Used by
// tests and by deployments that load catalog data themselves.
func NewStoreFromSnapshot(snapshot *Snapshot) *Store {
	s := &Store{}
	s.swap(snapshot)
	return s
}

func (s *Store) swap(snapshot *Snapshot) {
	build := &Build{
		Snapshot: snapshot,
		Index:    similarity.Build(snapshot.Items()),
	}
	s.current.Store(build)
}

// Current returns the live snapshot/index pair.
func (s *Store) Current() *Build {
	return s.current.Load()
}

// Reload re-reads the catalog file and swaps in a freshly built
// snapshot/index pair. Concurrent reload requests collapse into one
// build. On failure the previous pair stays live.
func (s *Store) Reload() error {
	_, err, _ := s.group.Do("reload", func() (interface{}, error) {
		snapshot, err := Load(s.path)
		if err != nil {
			return nil, err
		}
		s.swap(snapshot)
		log.Info().Int("items", snapshot.Len()).Msg("Catalog snapshot reloaded")
		return nil, nil
	})
	return err
}
