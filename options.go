package guarded

import (
	"github.com/jonboulle/clockwork"

	"github.com/guarded-go/guarded/trace"
)

type config struct {
	label string
	trace trace.Guard
	clock clockwork.Clock
}

func defaultConfig() config {
	return config{
		clock: clockwork.NewRealClock(),
	}
}

// Option configures a Value created by NewValue.
type Option func(c *config)

// WithLabel names the container in trace events.
func WithLabel(label string) Option {
	return func(c *config) {
		c.label = label
	}
}

// WithTrace appends t to the container trace. Hooks of traces appended
// earlier fire first.
func WithTrace(t trace.Guard, opts ...trace.ComposeOption) Option {
	return func(c *config) {
		c.trace = *c.trace.Compose(&t, opts...)
	}
}

// WithClock replaces the clock behind LastUsed. Tests pass fake clocks.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.clock = clock
	}
}
