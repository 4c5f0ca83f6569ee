// Package serve runs the local preview server, optionally rebuilding the
// site when source files change.
package serve

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// debounce window for bursts of filesystem events, e.g. editors writing a
// temp file and renaming it into place.
const rebuildDelay = 200 * time.Millisecond

// Server serves Dir over HTTP. With WatchDirs set, changes under those
// directories trigger Rebuild.
type Server struct {
	Addr      string
	Dir       string
	WatchDirs []string
	Rebuild   func(context.Context) error
	Log       *zap.Logger
}

// Run blocks until ctx is cancelled or the listener fails.
func (s *Server) Run(ctx context.Context) error {
	if s.Log == nil {
		s.Log = zap.NewNop()
	}

	mux := http.NewServeMux()
	mux.Handle("/", http.FileServer(http.Dir(s.Dir)))

	srv := &http.Server{Addr: s.Addr, Handler: mux}

	if len(s.WatchDirs) > 0 && s.Rebuild != nil {
		watcher, err := s.startWatcher(ctx)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	errCh := make(chan error, 1)
	go func() {
		s.Log.Info("preview server listening", zap.String("addr", s.Addr), zap.String("dir", s.Dir))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	}
}

func (s *Server) startWatcher(ctx context.Context) (*fsnotify.Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("start watcher: %w", err)
	}

	for _, dir := range s.WatchDirs {
		if _, err := os.Stat(dir); err != nil {
			continue
		}
		if err := watchTree(watcher, dir); err != nil {
			watcher.Close()
			return nil, err
		}
		s.Log.Info("watching", zap.String("dir", dir))
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				// New subdirectories need their own watches.
				if event.Op&fsnotify.Create != 0 {
					if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
						if err := watchTree(watcher, event.Name); err != nil {
							s.Log.Error("watch new directory", zap.Error(err))
						}
					}
				}
				s.Log.Debug("change detected", zap.String("file", event.Name))
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(rebuildDelay, func() {
					if err := s.Rebuild(ctx); err != nil {
						s.Log.Error("rebuild failed", zap.Error(err))
						return
					}
					s.Log.Info("site rebuilt")
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.Log.Error("watcher error", zap.Error(err))
			}
		}
	}()

	return watcher, nil
}

// watchTree registers dir and every directory below it. fsnotify watches are
// non-recursive, so nested paths like static/css need their own entries.
func watchTree(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}
		return nil
	})
}
