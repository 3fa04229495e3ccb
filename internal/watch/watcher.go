// Package watch delivers debounced file-change notifications. Editors save
// in bursts (truncate, write, rename); a short quiet period coalesces each
// burst into one callback.
package watch

import (
	"context"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/AlexK-Notable/mdview/internal/logger"
)

const debounceDelay = 100 * time.Millisecond

// Watcher monitors one file and invokes the callback once per write burst.
type Watcher struct {
	fsw      *fsnotify.Watcher
	cancel   context.CancelFunc
	done     chan struct{}
	path     string
	onChange func()
	log      logger.Logger
}

// NewFileWatcher starts watching path. The callback runs on the watcher's
// goroutine; callers needing the UI thread wrap it themselves.
func NewFileWatcher(path string, onChange func(), log logger.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(path); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		fsw:      fsw,
		cancel:   cancel,
		done:     make(chan struct{}),
		path:     path,
		onChange: onChange,
		log:      log,
	}
	go w.run(ctx)
	return w, nil
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	var debounce *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.NewTimer(debounceDelay)
			fire = debounce.C

		case <-fire:
			fire = nil
			w.log.Debug("FileWatcher", "change detected", map[string]interface{}{
				"path": w.path,
			})
			w.onChange()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warning("FileWatcher", "watch error", map[string]interface{}{
				"path":  w.path,
				"error": err.Error(),
			})
		}
	}
}

// Path returns the watched file.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and releases its OS handle. It does not return
// until the watch goroutine has exited, so no callback fires afterwards.
func (w *Watcher) Close() {
	w.cancel()
	w.fsw.Close()
	<-w.done
}
