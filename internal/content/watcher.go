package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/yildizm/folio/internal/logger"
)

// ReloadFunc receives the freshly loaded portfolio, or the error that
// prevented loading it.
type ReloadFunc func(p *Portfolio, err error)

// Watcher reloads a content file whenever it is written or replaced.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	onLoad  ReloadFunc
	log     *logger.Logger
}

// NewWatcher watches the directory holding path, so editors that replace the
// file on save are still seen.
func NewWatcher(path string, onLoad ReloadFunc, log *logger.Logger) (*Watcher, error) {
	if err := validateWatchPath(path); err != nil {
		return nil, fmt.Errorf("invalid content path: %w", err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("failed to watch content directory: %w", err)
	}

	return &Watcher{
		path:    filepath.Clean(path),
		watcher: fsw,
		onLoad:  onLoad,
		log:     log,
	}, nil
}

// Run delivers reloads until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.log != nil {
				w.log.WarnWithFields("content watcher error", []logger.Field{logger.Error(err)})
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	p, err := Load(w.path)
	if w.log != nil {
		if err != nil {
			w.log.WarnWithFields("content reload failed", []logger.Field{logger.Path(w.path), logger.Error(err)})
		} else {
			w.log.InfoWithFields("content reloaded", []logger.Field{logger.Path(w.path), logger.Count(len(p.Projects))})
		}
	}
	w.onLoad(p, err)
}

func (w *Watcher) close() {
	if err := w.watcher.Close(); err != nil && w.log != nil {
		w.log.Warn("failed to close watcher: %v", err)
	}
}

func validateWatchPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("empty file path")
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil {
		return err
	} else if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", filepath.Dir(path))
	}
	return nil
}
