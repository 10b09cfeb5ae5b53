// SPDX-License-Identifier: MIT

// Package watch reports debounced changes to a set of files, so the CLI
// can re-evaluate a diagram file whenever it is saved.
package watch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is the quiet period after the last event before a
// change is reported.
const DefaultDebounce = 100 * time.Millisecond

// Change is one debounced change to a watched file.
type Change struct {
	File    string // absolute path
	Removed bool   // the file no longer exists
}

// Watcher monitors files through their parent directories, which keeps
// working across editors that save by rename.
type Watcher struct {
	Changes <-chan Change // Read-only external channel

	changes  chan Change
	stop     chan struct{}
	done     chan struct{}
	files    map[string]struct{}
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New creates a watcher for the given files. A debounce <= 0 means
// DefaultDebounce.
func New(debounce time.Duration, files ...string) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	ch := make(chan Change, 16)
	w := &Watcher{
		Changes:  ch,
		changes:  ch,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
		files:    make(map[string]struct{}, len(files)),
		debounce: debounce,
		watcher:  fw,
	}
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		w.files[abs] = struct{}{}
	}

	return w, nil
}

// Start begins watching.
func (w *Watcher) Start() error {
	dirs := make(map[string]struct{})
	for f := range w.files {
		dirs[filepath.Dir(f)] = struct{}{}
	}
	for d := range dirs {
		if err := w.watcher.Add(d); err != nil {
			return err
		}
	}
	go w.loop()

	return nil
}

// Stop closes the watcher and the Changes channel. Changes nobody has read
// yet are dropped.
func (w *Watcher) Stop() {
	close(w.stop)
	_ = w.watcher.Close()
	<-w.done
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
				for file := range pending {
					if !w.emit(file) {
						return
					}
				}
				return
			}
			if _, watched := w.files[event.Name]; !watched {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[event.Name] = time.Now()
			}

		case <-ticker.C:
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) < w.debounce {
					continue
				}
				if !w.emit(file) {
					return
				}
				delete(pending, file)
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}

// emit reports a change, giving up once Stop is called.
func (w *Watcher) emit(file string) bool {
	_, err := os.Stat(file)
	select {
	case w.changes <- Change{File: file, Removed: os.IsNotExist(err)}:
		return true
	case <-w.stop:
		return false
	}
}
