// Copyright (c) 2026, The luGL Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gpu

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// ProgramWatcher reports changes to a set of shader files, so that
// a program can be rebuilt while the application runs. It only
// signals; the rebuild must happen on the graphics thread.
type ProgramWatcher struct {
	// Paths are the watched shader files, as given.
	Paths []string

	watcher *fsnotify.Watcher
	files   map[string]bool
	changed chan struct{}
	done    chan struct{}
}

// NewProgramWatcher starts watching the given shader files.
// The directories containing them are watched, so files replaced
// by editors through a rename are still seen.
func NewProgramWatcher(paths []string) (*ProgramWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("gpu.NewProgramWatcher: %w", err)
	}
	pw := &ProgramWatcher{
		Paths:   paths,
		watcher: w,
		files:   make(map[string]bool, len(paths)),
		changed: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("gpu.NewProgramWatcher: %w", err)
		}
		pw.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for d := range dirs {
		if err := w.Add(d); err != nil {
			w.Close()
			return nil, fmt.Errorf("gpu.NewProgramWatcher: watching %q: %w", d, err)
		}
	}
	go pw.watch()
	return pw, nil
}

func (pw *ProgramWatcher) watch() {
	defer close(pw.done)
	for {
		select {
		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if !pw.files[filepath.Clean(event.Name)] {
				continue
			}
			slog.Debug("gpu.ProgramWatcher: shader changed", "file", event.Name, "op", event.Op)
			select {
			case pw.changed <- struct{}{}:
			default:
			}
		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			slog.Error("gpu.ProgramWatcher", "err", err)
		}
	}
}

// Changed returns a channel that receives a value after one or more
// watched files change. Notifications that arrive before the previous
// one is received are merged.
func (pw *ProgramWatcher) Changed() <-chan struct{} {
	return pw.changed
}

// Poll reports, without blocking, whether any watched file
// changed since the last call.
func (pw *ProgramWatcher) Poll() bool {
	select {
	case <-pw.changed:
		return true
	default:
		return false
	}
}

// Close stops watching and waits for the watch goroutine to exit.
func (pw *ProgramWatcher) Close() error {
	err := pw.watcher.Close()
	<-pw.done
	return err
}
