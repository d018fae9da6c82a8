package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors emit on save.
const debounceDelay = 100 * time.Millisecond

// Watcher monitors the configuration file and reports change events.
// Rapid successive writes are debounced into one event.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	changes chan struct{}
	errors  chan error

	mu     sync.Mutex
	timer  *time.Timer
	closed bool
}

// NewWatcher watches the configuration file at path.
// The file's directory is watched rather than the file itself, so
// rename-and-replace saves keep working.
func NewWatcher(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		path:    abs,
		fw:      fw,
		changes: make(chan struct{}, 1),
		errors:  make(chan error, 1),
	}, nil
}

// Changes returns the channel that receives one signal per (debounced)
// config file change.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

// Errors returns the channel carrying watcher errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Run processes filesystem events until ctx is canceled.
func (w *Watcher) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.scheduleNotify()

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			select {
			case w.errors <- err:
			default:
			}
		}
	}
}

// scheduleNotify arms (or re-arms) the debounce timer.
func (w *Watcher) scheduleNotify() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(debounceDelay, func() {
		select {
		case w.changes <- struct{}{}:
		default:
		}
	})
}

// Close stops the watcher. Idempotent.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil
	}
	w.closed = true
	if w.timer != nil {
		w.timer.Stop()
	}
	w.mu.Unlock()

	return w.fw.Close()
}
