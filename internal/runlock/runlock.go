// Package runlock serializes tool runs with a file lock so two invocations
// never enhance or move the same directory concurrently.
package runlock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// Acquire takes a non-blocking exclusive lock on path, creating parent
// directories as needed. It returns a release func on success, and an
// error naming the lock file when another instance already holds it.
func Acquire(path string) (func(), error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	fl := flock.New(path)
	locked, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock %s: %w", path, err)
	}
	if !locked {
		return nil, fmt.Errorf("another instance is already running (lock held on %s)", path)
	}

	release := func() {
		fl.Unlock()
		os.Remove(path)
	}
	return release, nil
}

// DefaultPath returns the per-tool lock file location under the user cache
// directory, falling back to the system temp dir.
func DefaultPath(tool string) string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "tubekit", tool+".lock")
}
