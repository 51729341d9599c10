// Package watcher emits debounced change events for a single catalog file.
package watcher

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventOp represents the type of file system operation.
type EventOp int

const (
	Create EventOp = iota
	Write
	Remove
	Rename
)

// String returns the string representation of EventOp.
func (op EventOp) String() string {
	switch op {
	case Create:
		return "Create"
	case Write:
		return "Write"
	case Remove:
		return "Remove"
	case Rename:
		return "Rename"
	default:
		return "Unknown"
	}
}

// Event represents a change to the watched file.
type Event struct {
	Path string
	Op   EventOp
	Time time.Time
}

// Watcher watches one file for changes and emits debounced events. The
// containing directory is watched rather than the file itself, so editors
// that replace the file on save (rename + create) are still observed.
type Watcher struct {
	path     string
	debounce time.Duration

	mu     sync.Mutex
	fsw    *fsnotify.Watcher
	closed bool
}

// New creates a watcher for the given file path. Events closer together
// than debounce are coalesced into one.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	return &Watcher{path: abs, debounce: debounce}, nil
}

// Start begins watching and returns a channel of debounced events. The
// channel is closed when the context is cancelled or the watcher is closed.
func (w *Watcher) Start(ctx context.Context) (<-chan Event, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		fsw.Close()
		return nil, err
	}

	w.mu.Lock()
	w.fsw = fsw
	w.mu.Unlock()

	out := make(chan Event, 16)
	go w.eventLoop(ctx, fsw, out)
	return out, nil
}

// Close shuts down the watcher and releases resources.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	if w.fsw != nil {
		return w.fsw.Close()
	}
	return nil
}

func (w *Watcher) eventLoop(ctx context.Context, fsw *fsnotify.Watcher, out chan<- Event) {
	defer close(out)

	// One pending event is enough: only a single file is watched.
	var pending *Event
	timer := time.NewTimer(0)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case fsEvent, ok := <-fsw.Events:
			if !ok {
				return
			}

			// Only events for the watched file matter.
			if filepath.Clean(fsEvent.Name) != w.path {
				continue
			}

			op, valid := convertOp(fsEvent.Op)
			if !valid {
				continue
			}

			pending = &Event{
				Path: w.path,
				Op:   op,
				Time: time.Now(),
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(w.debounce)

		case <-timer.C:
			if pending == nil {
				continue
			}
			evt := *pending
			pending = nil
			select {
			case out <- evt:
			case <-ctx.Done():
				return
			}

		case _, ok := <-fsw.Errors:
			if !ok {
				return
			}
		}
	}
}

// convertOp maps an fsnotify op to an EventOp. Chmod-only events carry no
// content change and are dropped.
func convertOp(op fsnotify.Op) (EventOp, bool) {
	switch {
	case op.Has(fsnotify.Create):
		return Create, true
	case op.Has(fsnotify.Write):
		return Write, true
	case op.Has(fsnotify.Remove):
		return Remove, true
	case op.Has(fsnotify.Rename):
		return Rename, true
	default:
		return 0, false
	}
}
