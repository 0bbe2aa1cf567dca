// Package guarded provides a reader-writer-locked container for a single value.
/*
Value[T] owns one payload of type T together with the lock protecting it.
The payload is reachable only through copying accessors (Get, Set, Change)
or through scope-bound guards: a ReadGuard shares the lock with other
readers, a WriteGuard holds it exclusively. A guard paired with a deferred
Release frees its acquisition on every exit path, and Transfer hands the
acquisition to a new owner without ever producing a second release.

Lock fairness follows sync.RWMutex: once a writer is waiting, later readers
block until the writer acquires and releases, so writers cannot starve and
recursive read acquisition is forbidden.
*/
package guarded
