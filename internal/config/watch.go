package config

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the Studio dotdir and reports settings.yaml changes, so a
// running TUI picks up edits made from another terminal.
type Watcher struct {
	fsWatcher  *fsnotify.Watcher
	eventsChan chan struct{}
	done       chan struct{}
	debounce   map[string]*time.Timer
	debounceMu sync.Mutex
}

// NewWatcher creates a watcher for the settings file.
func NewWatcher() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fsWatcher:  fsWatcher,
		eventsChan: make(chan struct{}, 8),
		done:       make(chan struct{}),
		debounce:   make(map[string]*time.Timer),
	}, nil
}

// Events returns the channel that fires on settings changes.
func (w *Watcher) Events() <-chan struct{} {
	return w.eventsChan
}

// Start begins watching. The dotdir must exist before Start.
func (w *Watcher) Start() error {
	dir, err := GlobalDir()
	if err != nil {
		return err
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return err
	}
	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() {
	close(w.done)
	_ = w.fsWatcher.Close()
}

func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.Printf("settings watcher error: %v", err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Accept write, create, and rename events. Rename matters: atomic saves
	// (write tmp, rename to target) produce Rename events on the target.
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}
	if filepath.Base(event.Name) != SettingsFileName {
		return
	}
	w.debounceEvent(event.Name, func() {
		select {
		case w.eventsChan <- struct{}{}:
		default:
		}
	})
}

// debounceEvent coalesces rapid event bursts for the same path.
func (w *Watcher) debounceEvent(path string, fn func()) {
	w.debounceMu.Lock()
	defer w.debounceMu.Unlock()

	if timer, ok := w.debounce[path]; ok {
		timer.Stop()
	}
	w.debounce[path] = time.AfterFunc(100*time.Millisecond, func() {
		w.debounceMu.Lock()
		delete(w.debounce, path)
		w.debounceMu.Unlock()
		fn()
	})
}
