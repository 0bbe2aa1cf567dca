package guarded

import (
	"github.com/guarded-go/guarded/internal/empty"
	"github.com/guarded-go/guarded/internal/xerrors"
	"github.com/guarded-go/guarded/internal/xsync"
)

// ReadGuard holds a shared acquisition of a Value's lock and exposes a
// read-only view of the payload for as long as the acquisition is held.
// Any number of read guards can be held at once; an exclusive WriteGuard
// excludes them all. Acquiring a second guard from the same Value while
// already holding one can deadlock once a writer is waiting between the
// two acquisitions.
//
// A guard belongs to one goroutine at a time and must not be copied; use
// Transfer to hand the acquisition to a new owner.
type ReadGuard[T any] struct {
	_ empty.DoNotCopy

	obj         *T
	mu          *xsync.RWMutex
	stopUsage   func()
	onDone      func(transferred bool)
	transferred bool
}

// Held reports whether the guard still owns its acquisition. It is false
// after Release or Transfer and on a nil guard.
func (g *ReadGuard[T]) Held() bool {
	return g != nil && g.obj != nil
}

// Value returns the payload view. The view is read-only by contract:
// writing through it while other readers run is a data race.
//
// Value panics with an error matching ErrReleasedGuard when the guard no
// longer holds its acquisition.
func (g *ReadGuard[T]) Value() *T {
	if !g.Held() {
		panic(xerrors.WithStackTrace(ErrReleasedGuard, xerrors.WithSkipDepth(1)))
	}

	return g.obj
}

// Release drops the shared acquisition. Only the first call releases;
// later calls and calls on transferred or nil guards are no-ops, so a
// deferred Release stays correct on every exit path.
func (g *ReadGuard[T]) Release() {
	if !g.Held() {
		return
	}
	g.obj = nil
	g.stopUsage()
	g.mu.RUnlock()
	g.onDone(g.transferred)
}

// Transfer moves the acquisition into a fresh guard and leaves the
// receiver inert: Held reports false and Release releases nothing, so the
// lock cannot be released twice. Transferring an inert guard yields
// another inert guard.
func (g *ReadGuard[T]) Transfer() *ReadGuard[T] {
	if !g.Held() {
		return &ReadGuard[T]{}
	}
	moved := &ReadGuard[T]{
		obj:         g.obj,
		mu:          g.mu,
		stopUsage:   g.stopUsage,
		onDone:      g.onDone,
		transferred: true,
	}
	g.obj = nil

	return moved
}
