// Package watcher triggers regeneration when shader sources change.
package watcher

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceTime coalesces bursts of filesystem events (editors often write a
// file several times in quick succession) into one regeneration.
const debounceTime = 500 * time.Millisecond

// Watcher watches a directory tree for changes to matching files.
type Watcher struct {
	root  string
	match func(path string) bool
	fsw   *fsnotify.Watcher
}

// New creates a watcher over root. match filters event paths; only events
// for matching files trigger the callback.
func New(root string, match func(path string) bool) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	w := &Watcher{root: root, match: match, fsw: fsw}
	if err := w.addRecursive(root); err != nil {
		fsw.Close()
		return nil, err
	}
	return w, nil
}

// Close releases the underlying filesystem watcher.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

// Run delivers debounced change notifications to onChange until the context
// is cancelled. onChange receives the set of changed paths since the last
// call, in arbitrary order.
func (w *Watcher) Run(ctx context.Context, onChange func(paths []string)) error {
	var timer *time.Timer
	var timerC <-chan time.Time
	changed := make(map[string]struct{})

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return ctx.Err()

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}

			// New directories join the watch so files created inside
			// them are seen.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = w.addRecursive(event.Name)
					continue
				}
			}

			changed[event.Name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(debounceTime)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceTime)
			}

		case <-timerC:
			paths := make([]string, 0, len(changed))
			for p := range changed {
				paths = append(paths, p)
			}
			clear(changed)
			timer = nil
			timerC = nil
			if len(paths) > 0 {
				onChange(paths)
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return err
		}
	}
}

// relevant filters events down to content changes of matching files, plus
// directory creations (handled separately by Run).
func (w *Watcher) relevant(event fsnotify.Event) bool {
	const ops = fsnotify.Create | fsnotify.Write | fsnotify.Remove | fsnotify.Rename
	if event.Op&ops == 0 {
		return false
	}
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}
	return w.match(event.Name)
}

func (w *Watcher) addRecursive(root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if name != "." && len(name) > 1 && name[0] == '.' {
			return filepath.SkipDir
		}
		return w.fsw.Add(path)
	})
}
