// Package watch reports changes to a fixed set of files.
package watch

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before its change is
// reported.
const DefaultDebounce = 100 * time.Millisecond

// Watcher monitors files for writes, creations and renames using fsnotify.
// Editors often replace a file instead of writing it, so the parent
// directories are watched rather than the files themselves.
type Watcher struct {
	Changes <-chan string // Absolute paths of changed files

	changes  chan string
	done     chan struct{}
	files    map[string]struct{}
	dirs     map[string]struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for files. Nothing is watched until Start.
func New(files []string, debounce time.Duration) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	ch := make(chan string, 16)
	w := &Watcher{
		Changes:  ch,
		changes:  ch,
		done:     make(chan struct{}),
		files:    make(map[string]struct{}),
		dirs:     make(map[string]struct{}),
		debounce: debounce,
		watcher:  fw,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, fmt.Errorf("failed to resolve %s: %w", f, err)
		}
		w.files[abs] = struct{}{}
		w.dirs[filepath.Dir(abs)] = struct{}{}
	}
	return w, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	for dir := range w.dirs {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	go w.loop()
	return nil
}

// Stop closes the watcher and the Changes channel.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // Wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			name := filepath.Clean(event.Name)
			if _, watched := w.files[name]; !watched {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending[name] = time.Now()
			}

		case now := <-ticker.C:
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					delete(pending, file)
					select {
					case w.changes <- file:
					default:
						// A reader that is behind already has a change queued.
					}
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}
