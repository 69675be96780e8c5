package source

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
)

// ReloadFunc is called whenever the watched directory changes. It
// receives no diff - a Watcher always triggers a full rediscover-and-
// reload rather than tracking which file changed, since a single
// stylesheet rule can affect any selector already cached by the engine
// and a partial reload would need the same cache flush anyway.
type ReloadFunc func()

// Watcher watches a directory for stylesheet changes and invokes a
// ReloadFunc on every event fsnotify reports for that directory's direct
// entries; subdirectories are not watched. Built on fsnotify's own
// one-watcher, one-event-loop idiom rather than a bespoke polling loop.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	reload    ReloadFunc
	done      chan struct{}
}

// NewWatcher starts watching dir, calling reload after every detected
// filesystem event. The returned Watcher must be closed with Close when
// no longer needed.
func NewWatcher(dir string, reload ReloadFunc) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating stylesheet watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %q: %w", dir, err)
	}

	w := &Watcher{fsWatcher: fw, reload: reload, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case _, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.reload()
		case _, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
		case <-w.done:
			return
		}
	}
}

// Close stops the watcher and releases its OS resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsWatcher.Close()
}
