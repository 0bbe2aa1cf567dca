package xtest

import (
	"testing"
	"time"

	"github.com/guarded-go/guarded/internal/xsync"
)

type TestFunc func(t testing.TB)

// TestManyTimes reruns test in a tight loop for about a second, giving
// racy interleavings many chances to show up under -race. The loop checks
// its budget only after an iteration, so test always runs at least once.
func TestManyTimes(t testing.TB, test TestFunc) {
	t.Helper()

	const budget = time.Second

	deadline := time.Now().Add(budget)
	for done := false; !done; done = time.Now().After(deadline) {
		runTest(t, test)
	}
}

func runTest(t testing.TB, test TestFunc) {
	t.Helper()

	tw := &testWrapper{TB: t}
	defer tw.runCleanups()

	test(tw)
}

// testWrapper scopes Cleanup callbacks to one iteration instead of the
// whole test, so every rerun starts from a fresh state.
type testWrapper struct {
	testing.TB

	m        xsync.Mutex
	cleanups []func()
}

func (tw *testWrapper) Cleanup(f func()) {
	tw.Helper()

	tw.m.WithLock(func() {
		tw.cleanups = append(tw.cleanups, f)
	})
}

func (tw *testWrapper) runCleanups() {
	tw.Helper()

	// LIFO, like testing.T.Cleanup; a cleanup may register more cleanups
	for n := len(tw.cleanups); n > 0; n = len(tw.cleanups) {
		f := tw.cleanups[n-1]
		tw.cleanups = tw.cleanups[:n-1]
		f()
	}
}
