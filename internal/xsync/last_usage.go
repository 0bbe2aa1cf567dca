package xsync

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

type (
	// LastUsage tracks the most recent access to a guarded payload.
	// While at least one acquisition is active it reports the current
	// time; after the last one stops it pins the release moment.
	LastUsage interface {
		Get() time.Time
		Start() (stop func())
	}
	lastUsage struct {
		locks atomic.Int64
		t     atomic.Pointer[time.Time]
		clock clockwork.Clock
	}
	lastUsageOption func(g *lastUsage)
)

func WithClock(clock clockwork.Clock) lastUsageOption {
	return func(g *lastUsage) {
		g.clock = clock
	}
}

func NewLastUsage(opts ...lastUsageOption) *lastUsage {
	usage := &lastUsage{
		clock: clockwork.NewRealClock(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(usage)
		}
	}

	now := usage.clock.Now()

	usage.t.Store(&now)

	return usage
}

func (g *lastUsage) Get() time.Time {
	if g.locks.Load() == 0 {
		return *g.t.Load()
	}

	return g.clock.Now()
}

// Start marks the payload as in use until the returned stop is called.
// stop is safe to call more than once; only the first call counts.
func (g *lastUsage) Start() (stop func()) {
	g.locks.Add(1)

	return sync.OnceFunc(func() {
		if g.locks.Add(-1) == 0 {
			now := g.clock.Now()
			g.t.Store(&now)
		}
	})
}
