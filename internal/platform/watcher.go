package platform

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// OutputWatcher watches the output directory and reports WAV files
// appearing or disappearing, so the UI can refresh its generated-file state
// when files are touched outside the app.
type OutputWatcher struct {
	watcher  *fsnotify.Watcher
	onChange func(path string, removed bool)
}

// NewOutputWatcher creates a watcher over dir. The directory is created if
// absent. onChange runs on the watcher goroutine; callers hop to the UI
// thread themselves.
func NewOutputWatcher(dir string, onChange func(path string, removed bool)) (*OutputWatcher, error) {
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, err
	}

	slog.Info("Started watching output directory", "path", dir)

	return &OutputWatcher{watcher: watcher, onChange: onChange}, nil
}

// Run processes filesystem events until the context is cancelled.
func (w *OutputWatcher) Run(ctx context.Context) {
	defer w.watcher.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("Output watcher error", "error", err)
		}
	}
}

func (w *OutputWatcher) handleEvent(event fsnotify.Event) {
	if !strings.EqualFold(filepath.Ext(event.Name), ".wav") {
		return
	}

	switch {
	case event.Op.Has(fsnotify.Create):
		w.onChange(event.Name, false)
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		w.onChange(event.Name, true)
	}
}
