// Package watcher reports changes to a fixed set of definition files,
// grouping bursts of filesystem events with a debounce delay.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"sync"
	"time"

	"github.com/dtromb/automata/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// ChangeHandler receives the paths that changed during one debounce window,
// sorted.
type ChangeHandler func(ctx context.Context, paths []string) error

// FileWatcher watches the directories holding its files, since editors
// often replace a file instead of writing it in place.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration
	logger  logging.Logger

	mutex sync.Mutex
	files map[string]bool
	dirs  map[string]bool
}

func NewFileWatcher(delay time.Duration, logger logging.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &FileWatcher{
		watcher: w,
		delay:   delay,
		logger:  logger.WithComponent("watcher"),
		files:   make(map[string]bool),
		dirs:    make(map[string]bool),
	}, nil
}

// AddFile starts watching path.
func (fw *FileWatcher) AddFile(path string) error {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("invalid path %s: %w", path, err)
	}
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.files[abs] = true
	dir := filepath.Dir(abs)
	if fw.dirs[dir] {
		return nil
	}
	if err := fw.watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	fw.dirs[dir] = true
	return nil
}

func (fw *FileWatcher) watched(name string) (string, bool) {
	abs, err := filepath.Abs(name)
	if err != nil {
		return "", false
	}
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	return abs, fw.files[abs]
}

// Run delivers debounced changes to handle until ctx is done. Handler
// errors are logged, not returned.
func (fw *FileWatcher) Run(ctx context.Context, handle ChangeHandler) error {
	pending := make(map[string]bool)
	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			path, ok := fw.watched(event.Name)
			if !ok {
				continue
			}
			fw.logger.Debug(ctx, "file event", "path", path, "op", event.Op.String())
			pending[path] = true
			if timer == nil {
				timer = time.NewTimer(fw.delay)
			} else {
				timer.Reset(fw.delay)
			}
			fire = timer.C
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn(ctx, err, "watch error")
		case <-fire:
			fire = nil
			paths := make([]string, 0, len(pending))
			for p := range pending {
				paths = append(paths, p)
			}
			slices.Sort(paths)
			clear(pending)
			if err := handle(ctx, paths); err != nil {
				fw.logger.Error(ctx, err, "change handler failed", "paths", paths)
			}
		}
	}
}

func (fw *FileWatcher) Close() error {
	return fw.watcher.Close()
}
