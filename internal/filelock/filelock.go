// Package filelock provides the run lock that keeps two generator runs off the
// same documentation root, and atomic writes so generated files are always
// replaced whole.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// LockName is the lock file created at the documentation root during a run.
// It is a dotfile so the scanner never lists it.
const LockName = ".docnav.lock"

// ErrLocked is returned when another run already holds the lock.
var ErrLocked = errors.New("another docnav run holds the lock")

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a new file lock for the given path.
// The lock file will be created at the specified path.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// TryLock attempts to acquire an exclusive lock on the file without blocking.
// Returns true if the lock was acquired, false if the lock is held by another process.
func (fl *FileLock) TryLock() (bool, error) {
	acquired, err := fl.flock.TryLock()
	if err != nil {
		return false, fmt.Errorf("failed to try lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// Path returns the lock file path.
func (fl *FileLock) Path() string {
	return fl.path
}

// RunLock is an exclusive, non-blocking lock on a documentation root.
type RunLock struct {
	lock *FileLock
}

// AcquireRunLock locks root for the duration of one run. It fails fast with
// ErrLocked instead of waiting, since a second run would race on the same
// output files.
func AcquireRunLock(root string) (*RunLock, error) {
	lock := NewFileLock(filepath.Join(root, LockName))

	acquired, err := lock.TryLock()
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, fmt.Errorf("%w: %s", ErrLocked, lock.Path())
	}

	return &RunLock{lock: lock}, nil
}

// Release unlocks the root and removes the lock file.
func (rl *RunLock) Release() error {
	// Remove while still holding the lock so no other run can have it open.
	if err := os.Remove(rl.lock.Path()); err != nil && !os.IsNotExist(err) {
		rl.lock.Unlock()
		return fmt.Errorf("failed to remove lock file: %w", err)
	}
	return rl.lock.Unlock()
}

// AtomicWrite writes data to a file atomically using a temp file and rename strategy.
// This ensures that readers never see partial writes, even if the write is interrupted.
//
// The process:
// 1. Create a temporary file in the same directory as the target
// 2. Write content to the temporary file
// 3. Rename the temporary file to the target path (atomic operation)
//
// If the operation fails at any point, the original file (if it exists) remains unchanged.
// The parent directory must already exist; generated files only ever land in
// folders that were just scanned.
func AtomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)

	// The temp name is hidden so a concurrent scan never lists it.
	tempFile, err := os.CreateTemp(dir, ".docnav-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tempPath := tempFile.Name()

	// Ensure temp file is cleaned up on error
	defer func() {
		if tempFile != nil {
			tempFile.Close()
			os.Remove(tempPath)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	// On Unix systems, rename is atomic within the same filesystem
	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}

	// Success - prevent cleanup of temp file since it's now renamed
	tempFile = nil

	return nil
}
