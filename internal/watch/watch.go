// Package watch rebuilds the site when its inputs change on disk.
package watch

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long the watcher waits for a burst of events to end
// before rebuilding.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls a rebuild function whenever a watched file or directory
// changes. Files are watched through their parent directory so editors that
// replace files on save are still seen.
type Watcher struct {
	files    map[string]bool // absolute file paths
	dirs     []string        // absolute directory roots, watched recursively
	debounce time.Duration
	logger   *zap.Logger
	fsw      *fsnotify.Watcher
}

// New watches paths. Each path may be a file or a directory; paths that do
// not exist, empty strings and URLs are ignored.
func New(paths []string, debounce time.Duration, logger *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		files:    make(map[string]bool),
		debounce: debounce,
		logger:   logger,
		fsw:      fsw,
	}

	for _, p := range paths {
		if err := w.add(p); err != nil {
			fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(p string) error {
	if p == "" || strings.Contains(p, "://") {
		return nil
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return err
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		w.logger.Debug("not watching missing path", zap.String("path", p))
		return nil
	}
	if err != nil {
		return err
	}

	if !info.IsDir() {
		w.files[abs] = true
		return w.fsw.Add(filepath.Dir(abs))
	}
	w.dirs = append(w.dirs, abs)
	return w.addTree(abs)
}

// addTree watches root and every directory below it.
func (w *Watcher) addTree(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.fsw.Add(path)
		}
		return nil
	})
}

// relevant reports whether an event on name concerns a watched input.
func (w *Watcher) relevant(name string) bool {
	if w.files[name] {
		return true
	}
	for _, d := range w.dirs {
		if name == d || strings.HasPrefix(name, d+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

// Run blocks until ctx is done, calling rebuild after every settled burst of
// changes. Rebuild errors are logged and watching continues.
func (w *Watcher) Run(ctx context.Context, rebuild func(context.Context) error) error {
	defer w.fsw.Close()

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event.Name) {
				continue
			}
			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addTree(event.Name); err != nil {
						w.logger.Warn("watching new directory", zap.String("path", event.Name), zap.Error(err))
					}
				}
			}
			w.logger.Debug("change detected", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			w.logger.Info("inputs changed, rebuilding")
			if err := rebuild(ctx); err != nil {
				w.logger.Error("rebuild failed", zap.Error(err))
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", zap.Error(err))
		}
	}
}
