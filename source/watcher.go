package source

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tailored-agentic-units/dataflow/mailbox"
)

const defaultDebounce = 500 * time.Millisecond

// FileEvent describes a change to a watched file.
type FileEvent struct {
	Path string
	Op   string
}

// Watcher turns file system changes into graph events. Rapid bursts of
// writes are debounced into a single send.
type Watcher struct {
	address   *mailbox.Address[FileEvent]
	path      string
	debounce  time.Duration
	logger    *slog.Logger
	fsWatcher *fsnotify.Watcher
}

// NewWatcher creates a watcher for path. A zero debounce uses the default of
// 500ms; a nil logger uses slog.Default.
func NewWatcher(address *mailbox.Address[FileEvent], path string, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file system watcher: %w", err)
	}
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Watcher{
		address:   address,
		path:      path,
		debounce:  debounce,
		logger:    logger,
		fsWatcher: fsWatcher,
	}, nil
}

// Name identifies the source in logs.
func (w *Watcher) Name() string {
	return "watcher"
}

// Run watches until ctx is cancelled. Write and create events are debounced
// and sent; remove and rename are logged only.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsWatcher.Close()

	if err := w.fsWatcher.Add(w.path); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.path, err)
	}

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	var pending *FileEvent

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				w.logger.Debug("ignoring file event",
					slog.String("path", event.Name),
					slog.String("op", event.Op.String()),
				)
				continue
			}

			pending = &FileEvent{Path: event.Name, Op: event.Op.String()}
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
			ev := *pending
			pending = nil
			if err := w.address.Send(ev); err != nil {
				return err
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", slog.String("error", err.Error()))
		}
	}
}
