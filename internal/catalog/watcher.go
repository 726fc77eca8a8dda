package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// watchDebounce coalesces bursts of write events from editors and
// atomic-rename saves into one reload.
const watchDebounce = 250 * time.Millisecond

// Watcher reloads the store when the catalog file changes on disk.
// Reload failures are logged and readers keep the previous snapshot.
type Watcher struct {
	store   *Store
	watcher *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
}

// Watch starts watching the store's catalog file. The parent directory
// is watched rather than the file itself so renames (the common atomic
// save pattern) are observed.
func Watch(s *Store) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(s.path)
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		store:   s,
		watcher: fw,
		cancel:  cancel,
		done:    make(chan struct{}),
	}
	go w.run(ctx, filepath.Base(s.path))
	return w, nil
}

func (w *Watcher) run(ctx context.Context, name string) {
	defer close(w.done)

	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(watchDebounce)
				timerC = timer.C
			} else {
				timer.Reset(watchDebounce)
			}
		case <-timerC:
			timer = nil
			timerC = nil
			if err := w.store.Reload(); err != nil {
				log.Warn().Err(err).Msg("Catalog reload failed, keeping previous snapshot")
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("Catalog watcher error")
		}
	}
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.cancel()
	err := w.watcher.Close()
	<-w.done
	return err
}
