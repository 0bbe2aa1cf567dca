package xtest

import (
	"go.uber.org/goleak"
)

// findGoroutinesLeak reports goroutines started by the calling test that
// are still running. goleak retries internally, so short-lived goroutines
// that are already shutting down do not count as leaked.
func findGoroutinesLeak(opts ...goleak.Option) error {
	return goleak.Find(opts...)
}
