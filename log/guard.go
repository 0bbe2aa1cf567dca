package log

import (
	"context"
	"time"

	"github.com/guarded-go/guarded/internal/kv"
	"github.com/guarded-go/guarded/trace"
)

// Guard makes trace.Guard with logging events from details
func Guard(l Logger, d trace.Detailer) (t trace.Guard) {
	t.OnGet = func(info trace.GuardGetStartInfo) func(trace.GuardGetDoneInfo) {
		if d.Details()&trace.GuardGetEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "guarded", "value", "get")
		label := info.Label
		l.Log(ctx, "get starting...",
			kv.String("label", label),
		)
		start := time.Now()

		return func(trace.GuardGetDoneInfo) {
			l.Log(ctx, "get done",
				kv.String("label", label),
				kv.Latency(start),
				kv.Version(),
			)
		}
	}
	t.OnSet = func(info trace.GuardSetStartInfo) func(trace.GuardSetDoneInfo) {
		if d.Details()&trace.GuardSetEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "guarded", "value", "set")
		label := info.Label
		l.Log(ctx, "set starting...",
			kv.String("label", label),
		)
		start := time.Now()

		return func(trace.GuardSetDoneInfo) {
			l.Log(ctx, "set done",
				kv.String("label", label),
				kv.Latency(start),
				kv.Version(),
			)
		}
	}
	t.OnChange = func(info trace.GuardChangeStartInfo) func(trace.GuardChangeDoneInfo) {
		if d.Details()&trace.GuardChangeEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "guarded", "value", "change")
		label := info.Label
		l.Log(ctx, "change starting...",
			kv.String("label", label),
		)
		start := time.Now()

		return func(trace.GuardChangeDoneInfo) {
			l.Log(ctx, "change done",
				kv.String("label", label),
				kv.Latency(start),
				kv.Version(),
			)
		}
	}
	t.OnRead = func(info trace.GuardReadStartInfo) func(trace.GuardReadDoneInfo) {
		if d.Details()&trace.GuardReadEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "guarded", "value", "read")
		label := info.Label
		l.Log(ctx, "read guard acquiring...",
			kv.String("label", label),
		)
		start := time.Now()

		return func(info trace.GuardReadDoneInfo) {
			l.Log(ctx, "read guard released",
				kv.String("label", label),
				kv.Bool("transferred", info.Transferred),
				kv.Latency(start),
				kv.Version(),
			)
		}
	}
	t.OnWrite = func(info trace.GuardWriteStartInfo) func(trace.GuardWriteDoneInfo) {
		if d.Details()&trace.GuardWriteEvents == 0 {
			return nil
		}
		ctx := with(context.Background(), TRACE, "guarded", "value", "write")
		label := info.Label
		l.Log(ctx, "write guard acquiring...",
			kv.String("label", label),
		)
		start := time.Now()

		return func(info trace.GuardWriteDoneInfo) {
			l.Log(ctx, "write guard released",
				kv.String("label", label),
				kv.Bool("transferred", info.Transferred),
				kv.Latency(start),
				kv.Version(),
			)
		}
	}

	return t
}
