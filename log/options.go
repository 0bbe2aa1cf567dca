package log

import (
	"github.com/jonboulle/clockwork"
)

type minLevelOption Level

func (lvl minLevelOption) applySimpleOption(l *textLogger) {
	l.minLevel = Level(lvl)
}

func WithMinLevel(lvl Level) minLevelOption {
	return minLevelOption(lvl)
}

type coloringOption bool

func (coloring coloringOption) applySimpleOption(l *textLogger) {
	l.coloring = bool(coloring)
}

func WithColoring() coloringOption {
	return true
}

type clockOption struct {
	clock clockwork.Clock
}

func (o clockOption) applySimpleOption(l *textLogger) {
	l.clock = o.clock
}

// WithClock substitutes the wall clock used for timestamps, mostly for
// tests with a fake clock.
func WithClock(clock clockwork.Clock) clockOption {
	return clockOption{clock: clock}
}
