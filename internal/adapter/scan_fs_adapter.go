package adapter

import (
	"os"
	"path/filepath"

	m "dupesweep.dev/pkg/dupesweep/internal/model"
)

// FileWalkFunc is invoked once per regular file found under a scan root.
// It receives the absolute path; returning an error stops the walk.
type FileWalkFunc func(path m.Path, err error) error

// ScanFS abstracts the filesystem operations the domain layer relies on when
// scanning user directories and removing duplicate copies. It hides direct
// `os` access so the workflow and classifier logic can be tested without
// touching the disk.
type ScanFS interface {
	// Walk traverses the provided root recursively and calls fn for every
	// regular file. Entries it cannot stat are passed through with the error.
	Walk(root m.Path, fn FileWalkFunc) error

	// Remove deletes a single file. Never called under dry run.
	Remove(path m.Path) error

	// Canonical resolves path to its canonical absolute form with symlinks
	// and relative segments eliminated.
	Canonical(path m.Path) (m.Path, error)

	// FileInfo returns metadata for a path so the workflow can check that a
	// scan root exists before walking it.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalScanFS is the ScanFS implementation backed by the local filesystem.
type LocalScanFS struct{}

// NewLocalScanFS constructs a LocalScanFS ready to be wired into the workflow.
func NewLocalScanFS() *LocalScanFS {
	return &LocalScanFS{}
}

// Walk visits every regular file under root, yielding absolute paths.
func (a *LocalScanFS) Walk(root m.Path, fn FileWalkFunc) error {
	return filepath.Walk(string(root), func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(m.Path(path), err)
		}

		if !info.Mode().IsRegular() {
			return nil
		}

		abs, absErr := filepath.Abs(path)
		if absErr != nil {
			return fn(m.Path(path), absErr)
		}

		return fn(m.Path(abs), nil)
	})
}

// Remove deletes the file at path.
func (a *LocalScanFS) Remove(path m.Path) error {
	return os.Remove(string(path))
}

// Canonical returns the absolute path with all symlinks and relative
// segments resolved.
func (a *LocalScanFS) Canonical(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", err
	}

	return m.Path(resolved), nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalScanFS) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}
