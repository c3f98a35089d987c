package catalog

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"selectdrop/internal/domain"
	"selectdrop/internal/log"
)

// DefaultDebounce coalesces the burst of events editors produce on save
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a catalog file whenever it changes on disk and delivers
// the new option list wholesale.
type Watcher struct {
	path      string
	debounce  time.Duration
	fsWatcher *fsnotify.Watcher

	updates chan []domain.Option
	errs    chan error
	done    chan struct{}

	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewWatcher starts watching path. The parent directory is watched so that
// editors which replace the file by rename are still observed.
func NewWatcher(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve catalog path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(abs)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}

	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	w := &Watcher{
		path:      abs,
		debounce:  debounce,
		fsWatcher: fsWatcher,
		updates:   make(chan []domain.Option, 1),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
	}

	w.wg.Add(1)
	go w.loop()

	log.LogWithFields(log.F("path", abs)).Info("Watching catalog file")
	return w, nil
}

// Updates delivers each successfully reloaded catalog
func (w *Watcher) Updates() <-chan []domain.Option {
	return w.updates
}

// Errors delivers reload and watch failures
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Close stops the watcher and closes both channels
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsWatcher.Close()
		w.wg.Wait()
		close(w.updates)
		close(w.errs)
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			log.Debugf("catalog event %s", event)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.sendErr(fmt.Errorf("catalog watcher: %w", err))

		case <-fire:
			fire = nil
			options, err := Load(w.path)
			if err != nil {
				w.sendErr(err)
				continue
			}
			w.sendUpdate(options)
		}
	}
}

// sendUpdate keeps only the newest catalog when the consumer lags behind
func (w *Watcher) sendUpdate(options []domain.Option) {
	for {
		select {
		case w.updates <- options:
			return
		case <-w.done:
			return
		default:
		}
		select {
		case <-w.updates:
		default:
		}
	}
}

func (w *Watcher) sendErr(err error) {
	select {
	case w.errs <- err:
	default:
		log.Warnf("dropping catalog watcher error: %v", err)
	}
}
