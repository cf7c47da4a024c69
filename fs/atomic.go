// Package fs provides atomic output files: content is written next to the
// destination and only replaces it on Commit.
package fs

import (
	"errors"
	"os"
	"path/filepath"
)

// AtomicFile stages writes in "<path>.tmp" until Commit renames it over path.
type AtomicFile struct {
	path string
	f    *os.File
	done bool
}

// Create opens the staging file for path, creating parent directories.
func Create(path string) (*AtomicFile, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	f, err := os.Create(TempPath(path))
	if err != nil {
		return nil, err
	}
	return &AtomicFile{path: path, f: f}, nil
}

// TempPath returns the staging path used for path.
func TempPath(path string) string {
	return path + ".tmp"
}

// Write writes to the staging file.
func (a *AtomicFile) Write(p []byte) (int, error) {
	if a.done {
		return 0, os.ErrClosed
	}
	return a.f.Write(p)
}

// Commit flushes the staging file and renames it to the final path.
func (a *AtomicFile) Commit() error {
	if a.done {
		return os.ErrClosed
	}
	a.done = true

	if err := a.f.Sync(); err != nil {
		a.f.Close()
		os.Remove(a.f.Name())
		return err
	}
	if err := a.f.Close(); err != nil {
		os.Remove(a.f.Name())
		return err
	}
	return os.Rename(a.f.Name(), a.path)
}

// Abort discards the staging file. It is a no-op after Commit.
func (a *AtomicFile) Abort() error {
	if a.done {
		return nil
	}
	a.done = true

	closeErr := a.f.Close()
	if err := os.Remove(a.f.Name()); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return closeErr
}
