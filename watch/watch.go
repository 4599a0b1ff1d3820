// Package watch reruns a callback whenever a file's contents change.
package watch

import (
	"context"
	"fmt"
	"hash/crc64"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"

	"github.com/fsnotify/fsnotify"
)

var crcTable = crc64.MakeTable(crc64.ECMA)

// Watcher remembers a checksum per file so saves that do not change
// anything are skipped.
type Watcher struct {
	log     *slog.Logger
	fileCrc map[string]uint64
}

// New returns a Watcher logging to log, or slog.Default when log is nil.
func New(log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.Default()
	}
	return &Watcher{log: log, fileCrc: make(map[string]uint64)}
}

// Run calls onChange every time the contents of path change, until ctx is
// done. The directory is watched rather than the file so editors that save by
// renaming a new file into place are seen too. onChange runs on the calling
// goroutine, one call at a time; its errors are logged and watching goes on.
func (w *Watcher) Run(ctx context.Context, path string, onChange func() error) error {
	path = filepath.Clean(path)
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	w.FileChanged(path)
	w.log.Info("monitoring", "file", path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !w.FileChanged(path) {
				w.log.Debug("file unchanged", "file", path)
				continue
			}
			if err := onChange(); err != nil {
				w.log.Error("regenerating", "file", path, "err", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

var onlyDigitsRx = regexp.MustCompile(`^\d+$`)

// FileChanged is true when fname differs from the last time it was seen.
func (w *Watcher) FileChanged(fname string) bool {
	if onlyDigitsRx.MatchString(filepath.Base(fname)) {
		// Ignore temp files by vim which have only digits
		return false
	}
	checksum, seen := w.fileCrc[fname]
	newChecksum, err := fileChecksum(fname)
	if err != nil {
		w.log.Debug("reading file", "file", fname, "err", err)
		return false
	}
	if seen && newChecksum == checksum {
		return false
	}
	w.fileCrc[fname] = newChecksum
	return true
}

func fileChecksum(fname string) (uint64, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return 0, err
	}
	return crc64.Checksum(data, crcTable), nil
}
