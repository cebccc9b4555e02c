// Package lock provides a shared advisory lock on an input file.
package lock

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/flock"
)

// ErrLocked is returned when another process holds an exclusive lock on
// the input file.
var ErrLocked = errors.New("input is locked by another process")

// Flocker abstracts the subset of flock.Flock used for shared locking.
type Flocker interface {
	TryRLock() (bool, error)
	Unlock() error
	Path() string
}

// Lock wraps a Flocker to provide fail-fast shared locking.
type Lock struct {
	flocker Flocker
	held    bool
}

// New creates a Lock from the given Flocker.
func New(f Flocker) *Lock {
	return &Lock{flocker: f}
}

// NewFromPath creates a Lock on the file at path. The file must already
// exist; it is opened read-only.
func NewFromPath(path string) *Lock {
	return New(flock.New(path))
}

// Path returns the locked file's path.
func (l *Lock) Path() string {
	return l.flocker.Path()
}

// TryRLock attempts a non-blocking shared lock acquisition. Readers do not
// exclude each other; a writer holding an exclusive lock makes TryRLock
// return ErrLocked.
func (l *Lock) TryRLock(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	ok, err := l.flocker.TryRLock()
	if err != nil {
		return fmt.Errorf("acquiring shared lock on %s: %w", l.flocker.Path(), err)
	}
	if !ok {
		return ErrLocked
	}
	l.held = true
	return nil
}

// Unlock releases the lock. Unlocking a lock that is not held is a no-op.
func (l *Lock) Unlock() error {
	if !l.held {
		return nil
	}
	if err := l.flocker.Unlock(); err != nil {
		return fmt.Errorf("releasing lock on %s: %w", l.flocker.Path(), err)
	}
	l.held = false
	return nil
}
