package log

import (
	"context"
)

type (
	levelContextKey struct{}
	namesContextKey struct{}
)

// WithLevel returns a context carrying lvl. Loggers read it back with
// LevelFromContext; an unset context reads as TRACE.
func WithLevel(ctx context.Context, lvl Level) context.Context {
	return context.WithValue(ctx, levelContextKey{}, lvl)
}

func LevelFromContext(ctx context.Context) Level {
	lvl, _ := ctx.Value(levelContextKey{}).(Level)

	return lvl
}

// WithNames appends scope names to the ones already carried by ctx.
// Sibling contexts derived from the same parent never share a backing
// array, so concurrent derivations cannot race.
func WithNames(ctx context.Context, names ...string) context.Context {
	scope := NamesFromContext(ctx)

	return context.WithValue(ctx, namesContextKey{}, append(scope, names...))
}

// NamesFromContext returns the scope names carried by ctx. The slice is
// clipped to its length, so appends by the caller reallocate.
func NamesFromContext(ctx context.Context) []string {
	names, _ := ctx.Value(namesContextKey{}).([]string)
	if names == nil {
		return []string{}
	}

	return names[:len(names):len(names)]
}

func with(ctx context.Context, lvl Level, names ...string) context.Context {
	return WithLevel(WithNames(ctx, names...), lvl)
}
