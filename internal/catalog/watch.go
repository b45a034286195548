package catalog

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	siteerrors "github.com/petitemaison/epouvante/internal/errors"
)

// reloadDelay coalesces the burst of events one editor save produces.
const reloadDelay = 100 * time.Millisecond

// Watch reloads the store whenever its catalog file changes, until ctx is
// done. The parent directory is watched rather than the file, because
// editors often save by renaming a temporary file over the original.
//
// A reload that fails is logged and the previous catalog keeps serving.
func Watch(ctx context.Context, s *Store, logger *slog.Logger) error {
	if s.Path() == "" {
		return nil
	}
	if logger == nil {
		logger = slog.Default()
	}
	logger = logger.With("component", "catalog-watch", "path", s.Path())

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return siteerrors.New("E123").Wrap(err)
	}
	defer watcher.Close()

	target := filepath.Clean(s.Path())
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return siteerrors.New("E123").WithDetail(filepath.Dir(target)).Wrap(err)
	}

	// Idle until the first change. Reset rearms it.
	debounce := time.NewTimer(time.Hour)
	debounce.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				debounce.Reset(reloadDelay)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "error", err)

		case <-debounce.C:
			if err := s.Reload(); err != nil {
				logger.Error("catalog reload failed, keeping previous version", "error", err)
				continue
			}
			logger.Info("catalog reloaded", "products", len(s.Get().Products.Items))
		}
	}
}
