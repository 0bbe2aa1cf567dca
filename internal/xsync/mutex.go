package xsync

import (
	"sync"
)

type Mutex struct { //nolint:gocritic
	sync.Mutex
}

func (l *Mutex) WithLock(f func()) {
	l.Lock()
	defer l.Unlock()

	f()
}

// RWMutex is the reader-writer lock the guarded containers are built on.
// Fairness follows sync.RWMutex: once a writer is waiting, later readers
// block until the writer acquires and releases.
type RWMutex struct { //nolint:gocritic
	sync.RWMutex
}

func (l *RWMutex) WithLock(f func()) {
	l.Lock()
	defer l.Unlock()

	f()
}

func (l *RWMutex) WithRLock(f func()) {
	l.RLock()
	defer l.RUnlock()

	f()
}

// WithLock runs f under l and returns its result. The deferred unlock
// releases l on every exit path, including panics in f.
func WithLock[T any](l sync.Locker, f func() T) T {
	l.Lock()
	defer l.Unlock()

	return f()
}

type rlocker interface {
	RLock()
	RUnlock()
}

// WithRLock is WithLock for the shared mode of a reader-writer lock.
func WithRLock[T any](l rlocker, f func() T) T {
	l.RLock()
	defer l.RUnlock()

	return f()
}
