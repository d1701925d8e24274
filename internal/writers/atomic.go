// internal/writers/atomic.go
package writers

import (
	"os"
	"path/filepath"
)

// Atomic is a file sink that becomes visible at its final path only on
// Commit. It writes to a tempfile in the destination directory so the
// rename is atomic on the same filesystem. Abort discards the tempfile;
// calling Abort after Commit is a no-op, so `defer a.Abort()` is the
// normal usage.
type Atomic struct {
	f    *os.File
	path string
	done bool
}

// NewAtomic creates the tempfile next to path.
func NewAtomic(path string) (*Atomic, error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return nil, err
	}
	return &Atomic{f: f, path: path}, nil
}

func (a *Atomic) Write(p []byte) (int, error) { return a.f.Write(p) }

// Commit flushes, closes, and renames the tempfile into place.
func (a *Atomic) Commit() error {
	if a.done {
		return nil
	}
	a.done = true
	if err := a.f.Sync(); err != nil {
		_ = a.f.Close()
		_ = os.Remove(a.f.Name())
		return err
	}
	if err := a.f.Close(); err != nil {
		_ = os.Remove(a.f.Name())
		return err
	}
	return os.Rename(a.f.Name(), a.path)
}

// Abort removes the tempfile without touching the final path.
func (a *Atomic) Abort() error {
	if a.done {
		return nil
	}
	a.done = true
	_ = a.f.Close()
	return os.Remove(a.f.Name())
}
