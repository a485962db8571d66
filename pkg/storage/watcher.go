package storage

import (
	"log"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports external modifications to open files. The editor flags the
// owning buffer; no action reads that flag, and no warning is shown.
type Watcher struct {
	fw       *fsnotify.Watcher
	onChange func(path string)
	mu       sync.Mutex
	watched  map[string]bool
	done     chan struct{}
}

// NewWatcher starts a watcher delivering change notifications through
// onChange. The callback runs on the watcher goroutine.
func NewWatcher(onChange func(path string)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		fw:       fw,
		onChange: onChange,
		watched:  make(map[string]bool),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0 {
				if os.Getenv("VIBEDIT_DEBUG") != "" {
					log.Printf("[DEBUG] File changed externally: %s", ev.Name)
				}
				w.onChange(ev.Name)
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			log.Printf("[WARN] File watcher error: %v", err)
		case <-w.done:
			return
		}
	}
}

// Add starts watching path. Adding the same path twice is a no-op.
func (w *Watcher) Add(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.watched[path] {
		return nil
	}
	if err := w.fw.Add(path); err != nil {
		return err
	}
	w.watched[path] = true
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.watched[path] {
		return
	}
	delete(w.watched, path)
	if err := w.fw.Remove(path); err != nil {
		log.Printf("[WARN] Failed to unwatch %s: %v", path, err)
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}
