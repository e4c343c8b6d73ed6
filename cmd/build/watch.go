/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package build

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"bennypowers.dev/figtok/internal/logger"
)

// Watcher reruns a build when token files change.
// Bursts of events within the debounce delay trigger a single rebuild, and
// rebuilds never overlap.
type Watcher struct {
	watcher *fsnotify.Watcher
	root    string
	// file is set when the entry is a single export file.
	file    string
	output  string
	delay   time.Duration
	rebuild func(context.Context) error

	mu      sync.Mutex
	timer   *time.Timer
	pending chan struct{}
}

// NewWatcher creates a watcher for entry that ignores changes under output.
func NewWatcher(entry, output string, delay time.Duration, rebuild func(context.Context) error) (*Watcher, error) {
	root, err := filepath.Abs(entry)
	if err != nil {
		return nil, err
	}
	out, err := filepath.Abs(output)
	if err != nil {
		return nil, err
	}
	w := &Watcher{
		root:    root,
		output:  out,
		delay:   delay,
		rebuild: rebuild,
		pending: make(chan struct{}, 1),
	}
	if info, err := os.Stat(root); err == nil && !info.IsDir() {
		w.file = root
		w.root = filepath.Dir(root)
	}
	if w.delay <= 0 {
		w.delay = 200 * time.Millisecond
	}

	w.watcher, err = fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	return w, nil
}

// Run watches until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	if err := w.addTree(w.root); err != nil {
		return err
	}
	logger.Info("watching %s", w.root)

	for {
		select {
		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("file watcher error: %v", err)

		case <-w.pending:
			start := time.Now()
			if err := w.rebuild(ctx); err != nil {
				logger.Warn("rebuild failed: %v", err)
				continue
			}
			logger.Debug("rebuilt in %s", time.Since(start).Round(time.Millisecond))
		}
	}
}

// addTree watches dir and its subdirectories, except the output directory
// and hidden directories.
func (w *Watcher) addTree(dir string) error {
	if w.file != "" {
		return w.watcher.Add(dir)
	}
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != dir && (w.ignored(path) || strings.HasPrefix(d.Name(), ".")) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			logger.Warn("failed to watch %s: %v", path, err)
		}
		return nil
	})
}

func (w *Watcher) handle(event fsnotify.Event) {
	if event.Has(fsnotify.Create) && w.file == "" && !w.ignored(event.Name) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.addTree(event.Name); err != nil {
				logger.Warn("failed to watch %s: %v", event.Name, err)
			}
			w.schedule()
			return
		}
	}
	if !w.relevant(event) {
		return
	}
	logger.Debug("%s %s", event.Op, event.Name)
	w.schedule()
}

// relevant reports whether event touches a token file.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
		!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return false
	}
	if w.file != "" {
		return filepath.Clean(event.Name) == w.file
	}
	if w.ignored(event.Name) {
		return false
	}
	switch strings.ToLower(filepath.Ext(event.Name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func (w *Watcher) ignored(path string) bool {
	rel, err := filepath.Rel(w.output, path)
	return err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, func() {
		select {
		case w.pending <- struct{}{}:
		default:
		}
	})
}
