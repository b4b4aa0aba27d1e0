// Package watcher watches template files for changes, debouncing rapid
// editor write bursts into single change notifications.
package watcher

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeHandler is invoked once per debounced change to a watched file.
type ChangeHandler func(path string) error

// FileWatcher watches individual files through their parent directories,
// which keeps notifications working across the delete-and-rename save
// strategy most editors use.
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration
	files    map[string]bool
	handlers []ChangeHandler

	mutex   sync.Mutex
	pending map[string]bool
	timer   *time.Timer
}

// NewFileWatcher creates a watcher that groups changes arriving within
// debounce of each other into one notification per file.
func NewFileWatcher(debounce time.Duration) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &FileWatcher{
		watcher:  w,
		debounce: debounce,
		files:    make(map[string]bool),
		pending:  make(map[string]bool),
	}, nil
}

// AddFile registers a file to watch. The file must exist.
func (fw *FileWatcher) AddFile(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving path %s: %w", path, err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("watch target: %w", err)
	}

	if err := fw.watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	fw.mutex.Lock()
	fw.files[abs] = true
	fw.mutex.Unlock()
	return nil
}

// AddHandler adds a change handler.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// Start runs the watch loop until ctx is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		}
	}
}

// Stop stops the watcher and releases its resources.
func (fw *FileWatcher) Stop() error {
	fw.mutex.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mutex.Unlock()
	return fw.watcher.Close()
}

func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return
	}

	abs, err := filepath.Abs(event.Name)
	if err != nil {
		return
	}

	fw.mutex.Lock()
	defer fw.mutex.Unlock()

	if !fw.files[abs] {
		return
	}

	fw.pending[abs] = true
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.debounce, fw.flush)
}

func (fw *FileWatcher) flush() {
	fw.mutex.Lock()
	paths := make([]string, 0, len(fw.pending))
	for path := range fw.pending {
		paths = append(paths, path)
	}
	fw.pending = make(map[string]bool)
	handlers := fw.handlers
	fw.mutex.Unlock()

	for _, path := range paths {
		for _, handler := range handlers {
			if err := handler(path); err != nil {
				fmt.Fprintf(os.Stderr, "watch handler error: %v\n", err)
			}
		}
	}
}
