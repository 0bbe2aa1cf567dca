package guarded

import (
	"github.com/guarded-go/guarded/internal/empty"
	"github.com/guarded-go/guarded/internal/xerrors"
	"github.com/guarded-go/guarded/internal/xsync"
)

// WriteGuard holds the exclusive acquisition of a Value's lock and
// exposes the payload for reading and writing. No other guard or accessor
// can proceed until it releases.
//
// A guard belongs to one goroutine at a time and must not be copied; use
// Transfer to hand the acquisition to a new owner.
type WriteGuard[T any] struct {
	_ empty.DoNotCopy

	obj         *T
	mu          *xsync.RWMutex
	stopUsage   func()
	onDone      func(transferred bool)
	transferred bool
}

// Held reports whether the guard still owns its acquisition. It is false
// after Release or Transfer and on a nil guard.
func (g *WriteGuard[T]) Held() bool {
	return g != nil && g.obj != nil
}

// Value returns the mutable payload reference.
//
// Value panics with an error matching ErrReleasedGuard when the guard no
// longer holds its acquisition.
func (g *WriteGuard[T]) Value() *T {
	if !g.Held() {
		panic(xerrors.WithStackTrace(ErrReleasedGuard, xerrors.WithSkipDepth(1)))
	}

	return g.obj
}

// Set replaces the payload through the held guard. Like Value, it panics
// when the guard no longer holds its acquisition.
func (g *WriteGuard[T]) Set(value T) {
	*g.Value() = value
}

// Release drops the exclusive acquisition. Only the first call releases;
// later calls and calls on transferred or nil guards are no-ops, so a
// deferred Release stays correct on every exit path.
func (g *WriteGuard[T]) Release() {
	if !g.Held() {
		return
	}
	g.obj = nil
	g.stopUsage()
	g.mu.Unlock()
	g.onDone(g.transferred)
}

// Transfer moves the acquisition into a fresh guard and leaves the
// receiver inert: Held reports false and Release releases nothing, so the
// lock cannot be released twice. Transferring an inert guard yields
// another inert guard.
func (g *WriteGuard[T]) Transfer() *WriteGuard[T] {
	if !g.Held() {
		return &WriteGuard[T]{}
	}
	moved := &WriteGuard[T]{
		obj:         g.obj,
		mu:          g.mu,
		stopUsage:   g.stopUsage,
		onDone:      g.onDone,
		transferred: true,
	}
	g.obj = nil

	return moved
}
