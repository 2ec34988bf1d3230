package fs

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/spectrakit/nmrio/pkg/core"
)

// Watcher observes a data directory and emits an event whenever a
// supported spectra file is created, modified or removed. It is a
// convenience for interactive callers (a GUI refreshing its file list);
// the codec layer itself stays synchronous.
type Watcher struct {
	*worker.BaseWorker
	root     string
	registry *core.Registry
	logger   *slog.Logger

	events    chan core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

// NewWatcher creates a watcher over root. Events for files whose
// extension is not registered are filtered out.
func NewWatcher(root string, registry *core.Registry, logger *slog.Logger) *Watcher {
	return &Watcher{
		BaseWorker: worker.NewBaseWorker("spectra-watcher"),
		root:       root,
		registry:   registry,
		logger:     logger,
		events:     make(chan core.Event, 16),
	}
}

// Events returns the event channel. It is closed when the watcher stops.
func (w *Watcher) Events() <-chan core.Event {
	return w.events
}

// Start begins watching. The watcher runs until ctx is cancelled or Stop
// is called.
func (w *Watcher) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := addRecursive(watcher, w.root); err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

// Stop requests shutdown and waits for the run loop to exit.
func (w *Watcher) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

// State implements worker state export for observability.
func (w *Watcher) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

func (w *Watcher) run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	err := w.loop(ctx)
	w.debouncer.stopAndWait(5 * time.Second)
	return err
}

func (w *Watcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.handle(ctx, event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			if w.logger != nil {
				w.logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

// handle filters, maps and debounces a single filesystem event.
func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	if w.logger != nil {
		w.logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	// Watch directories as they appear so nested runs are picked up.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			_ = addRecursive(w.watcher, event.Name)
			return
		}
	}

	if _, err := w.registry.ByExtension(filepath.Ext(event.Name)); err != nil {
		return
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return
	}

	w.debouncer.add(core.Event{
		Type:      eType,
		Path:      event.Name,
		Timestamp: time.Now().Unix(),
	}, func(e core.Event) {
		defer func() {
			// The events channel closes on shutdown; a racing timer must
			// not bring the process down.
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

// addRecursive registers dir and every subdirectory with the watcher.
// Non-directories are ignored.
func addRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}
		}
		return nil
	})
}
