package lgart

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// SafeWrite saves ex to a file named after the stamp and returns its name.
func (s Stamp) SafeWrite(ex Exporter, prefix, ext string) (string, error) {
	fname := s.GetFilename(prefix, ext)
	if err := safeWrite(ex, fname); err != nil {
		slog.Error("problem saving", "file", fname, "err", err)
		return "", err
	}
	slog.Info("saved", "file", fname)
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(ex Exporter, fname string) error {
	dir := filepath.Dir(fname)
	if err := MaybeCreateDir(dir); err != nil {
		return err
	}

	ext := filepath.Ext(fname)
	// The temp file lives next to the target so the rename stays on one drive.
	tmpfile, err := os.CreateTemp(dir, "lgart.*"+ext)
	if err != nil {
		return err
	}
	tmpName := tmpfile.Name()
	if err := tmpfile.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := ex.WriteFile(tmpName); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	if err := os.Rename(tmpName, fname); err != nil {
		os.Remove(tmpName)
		return err
	}
	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates dir and its parents unless it already exists.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
