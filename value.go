package guarded

import (
	"time"

	"github.com/guarded-go/guarded/internal/xsync"
	"github.com/guarded-go/guarded/trace"
)

// Value owns a payload of type T and the reader-writer lock protecting it.
// The payload is reachable only through the copying accessors (Get, Set,
// Change) or through scope-bound guards (ReadGuard, WriteGuard), so it is
// never touched outside a held lock.
//
// A Value is ready for concurrent use from any number of goroutines. It
// must not be copied after first use (go vet reports such copies) and must
// not be overwritten in place while any of its guards is held.
type Value[T any] struct {
	mu        xsync.RWMutex
	v         T
	label     string
	trace     trace.Guard
	lastUsage xsync.LastUsage
}

// NewValue returns a container guarding initValue. No locking happens
// here: no guard can exist before construction completes.
func NewValue[T any](initValue T, opts ...Option) *Value[T] {
	c := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}

	return &Value[T]{
		v:         initValue,
		label:     c.label,
		trace:     c.trace,
		lastUsage: xsync.NewLastUsage(xsync.WithClock(c.clock)),
	}
}

// Get returns a copy of the payload taken under the shared lock. The copy
// reflects the payload at a single consistent instant and does not alias
// the container afterwards.
func (v *Value[T]) Get() (value T) {
	onDone := trace.GuardOnGet(&v.trace, v.label)
	defer onDone()

	v.mu.WithRLock(func() {
		defer v.lastUsage.Start()()

		value = v.v
	})

	return value
}

// Set replaces the payload, blocking until no reader or writer holds the
// lock.
func (v *Value[T]) Set(value T) {
	onDone := trace.GuardOnSet(&v.trace, v.label)
	defer onDone()

	v.mu.WithLock(func() {
		defer v.lastUsage.Start()()

		v.v = value
	})
}

// Change applies change to the payload in a single exclusive critical
// section and returns the new payload. Concurrent Change calls never
// interleave, so read-modify-write sequences stay lossless.
func (v *Value[T]) Change(change func(old T) T) T {
	onDone := trace.GuardOnChange(&v.trace, v.label)
	defer onDone()

	return xsync.WithLock(&v.mu, func() T {
		defer v.lastUsage.Start()()

		v.v = change(v.v)

		return v.v
	})
}

// ReadGuard acquires the lock in shared mode and returns a guard bound to
// the payload. The acquisition is held until the guard's Release; callers
// pair the call with defer:
//
//	g := v.ReadGuard()
//	defer g.Release()
func (v *Value[T]) ReadGuard() *ReadGuard[T] {
	onDone := trace.GuardOnRead(&v.trace, v.label)
	v.mu.RLock()

	return &ReadGuard[T]{
		obj:       &v.v,
		mu:        &v.mu,
		stopUsage: v.lastUsage.Start(),
		onDone:    onDone,
	}
}

// WriteGuard acquires the lock exclusively and returns a guard exposing
// the payload for reading and writing. Same release contract as ReadGuard.
func (v *Value[T]) WriteGuard() *WriteGuard[T] {
	onDone := trace.GuardOnWrite(&v.trace, v.label)
	v.mu.Lock()

	return &WriteGuard[T]{
		obj:       &v.v,
		mu:        &v.mu,
		stopUsage: v.lastUsage.Start(),
		onDone:    onDone,
	}
}

// LastUsed reports when the payload was last accessed. While any accessor
// call or guard is active it reports the current clock time.
func (v *Value[T]) LastUsed() time.Time {
	return v.lastUsage.Get()
}
