// file: internal/watcher/watcher.go
// version: 4.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package watcher

import (
	"context"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the default debounce period.
const DefaultDebounce = 500 * time.Millisecond

// Callback is invoked after the debounce period with the watched file path.
type Callback func(path string)

// catalogOps are the operations that can change a catalog file's content.
const catalogOps = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename

// Watcher reports changes to one catalog file. It watches the parent
// directory, since spreadsheet tools save by replacing the file, and
// filters events to the file's base name.
type Watcher struct {
	callback Callback
	debounce time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// New creates a Watcher. Pass 0 for debounce to use DefaultDebounce.
func New(callback Callback, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{callback: callback, debounce: debounce}
}

// Start begins watching path. Calling Start on a running watcher is a no-op.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.cancel != nil {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	w.cancel, w.done = cancel, done

	log.Printf("[INFO] watcher: watching %s", abs)
	go w.run(ctx, done, fsw, abs)
	return nil
}

// Stop ends watching and waits for a running callback to return. No
// callback fires after Stop returns.
func (w *Watcher) Stop() {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// run owns the fsnotify watcher and the debounce timer.
func (w *Watcher) run(ctx context.Context, done chan<- struct{}, fsw *fsnotify.Watcher, path string) {
	defer close(done)
	defer fsw.Close()

	name := filepath.Base(path)
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-fsw.Events:
			if !ok {
				return
			}
			if ev.Op&catalogOps == 0 || filepath.Base(ev.Name) != name {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			log.Printf("[ERROR] watcher: %v", err)
		case <-timer.C:
			if ctx.Err() != nil {
				return
			}
			log.Printf("[INFO] watcher: %s changed", path)
			if w.callback != nil {
				w.callback(path)
			}
		}
	}
}
