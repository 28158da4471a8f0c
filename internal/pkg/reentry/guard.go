// Package reentry provides a non-blocking mutual-exclusion guard for entry
// points that trigger external value transfers. A transfer counterparty may
// call back into the application before the outer call has finished; the
// guard rejects such nested calls instead of queueing them, and is released
// unconditionally on every exit path of the outer call.
package reentry

import (
	"errors"
	"sync/atomic"
)

// ErrReentrantCall is returned when a guarded entry point is entered while a
// previous call through the same guard is still in progress.
var ErrReentrantCall = errors.New("reentrant call rejected")

// Guard is a call-in-progress flag shared by one or more entry points.
// The zero value is ready to use. Guard must not be copied after first use.
type Guard struct {
	busy atomic.Bool
}

// Enter marks the guard as busy. It returns ErrReentrantCall if another call
// is already in progress. Callers must pair every successful Enter with a
// deferred Leave so the guard is released on all exit paths.
func (g *Guard) Enter() error {
	if !g.busy.CompareAndSwap(false, true) {
		return ErrReentrantCall
	}
	return nil
}

// Leave releases the guard. Calling Leave without a matching successful Enter
// is a programming error; the guard simply resets.
func (g *Guard) Leave() {
	g.busy.Store(false)
}

// Do runs fn under the guard. It returns ErrReentrantCall if a call is
// already in progress, otherwise fn's error. The guard is released even if
// fn panics.
func (g *Guard) Do(fn func() error) error {
	if err := g.Enter(); err != nil {
		return err
	}
	defer g.Leave()
	return fn()
}
