package xtest

import (
	"testing"
	"time"

	"github.com/guarded-go/guarded/internal/empty"
)

// WaitChannelClosed fails the test if ch does not close within the
// common timeout.
func WaitChannelClosed(tb testing.TB, ch empty.ChanReadonly) {
	tb.Helper()

	select {
	case <-time.After(commonWaitTimeout):
		tb.Fatal("wait channel closed timeout")
	case <-ch:
	}
}
