package xtest

import (
	"runtime"
	"sync"
	"testing"
	"time"
)

const commonWaitTimeout = time.Second

// SpinWaitCondition yields the scheduler until cond returns true or the
// common timeout fails the test. l, when non nil, is held around every
// cond call.
func SpinWaitCondition(tb testing.TB, l sync.Locker, cond func() bool) {
	tb.Helper()

	SpinWaitConditionWithTimeout(tb, l, commonWaitTimeout, cond)
}

func SpinWaitConditionWithTimeout(tb testing.TB, l sync.Locker, condWaitTimeout time.Duration, cond func() bool) {
	tb.Helper()

	checkCondition := func() bool {
		if l != nil {
			l.Lock()
			defer l.Unlock()
		}

		return cond()
	}

	start := time.Now()
	for !checkCondition() {
		if time.Since(start) > condWaitTimeout {
			tb.Fatal("spin wait timeout")
		}
		runtime.Gosched()
	}
}
