package main

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ScenarioWatcher reloads a scenario file whenever it changes on disk
type ScenarioWatcher struct {
	watcher  *fsnotify.Watcher
	path     string
	onReload func(*Scenario)
	debounce time.Duration
	done     chan struct{}
}

// NewScenarioWatcher watches path and calls onReload with each freshly
// loaded scenario. It watches the parent directory, which survives
// editors that replace the file on save. onReload runs on the watcher
// goroutine.
func NewScenarioWatcher(path string, onReload func(*Scenario)) (*ScenarioWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	w := &ScenarioWatcher{
		watcher:  watcher,
		path:     path,
		onReload: onReload,
		debounce: 100 * time.Millisecond,
		done:     make(chan struct{}),
	}
	go w.run()

	log.Printf("👀 Watching %s for changes\n", path)
	return w, nil
}

// Close stops watching. A reload already debouncing may still fire.
func (w *ScenarioWatcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}

func (w *ScenarioWatcher) run() {
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	base := filepath.Base(w.path)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Editors fire bursts of events per save; collapse them
			if timer == nil {
				timer = time.AfterFunc(w.debounce, w.reload)
			} else {
				timer.Reset(w.debounce)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("⚠️  Watcher error: %v\n", err)

		case <-w.done:
			return
		}
	}
}

func (w *ScenarioWatcher) reload() {
	sc, err := LoadScenario(w.path)
	if err != nil {
		log.Printf("⚠️  Reload failed, keeping previous scenario: %v\n", err)
		return
	}

	log.Printf("🔄 Scenario file changed, reloaded %s\n", sc.Name)
	w.onReload(sc)
}
