package log

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = (*zapLogger)(nil)

// Zap adapts l to the Logger interface. Scope names become the zap
// logger name, levels map to the closest zapcore level (TRACE has no
// zap counterpart and maps to Debug).
func Zap(l *zap.Logger) *zapLogger {
	return &zapLogger{
		l: l.WithOptions(zap.AddCallerSkip(1)),
	}
}

type zapLogger struct {
	l *zap.Logger
}

func (a *zapLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl == QUIET {
		return
	}
	l := a.l
	if names := NamesFromContext(ctx); len(names) > 0 {
		l = l.Named(strings.Join(names, "."))
	}
	if ce := l.Check(zapLevel(lvl), msg); ce != nil {
		ce.Write(zapFields(fields)...)
	}
}

func zapLevel(lvl Level) zapcore.Level {
	switch lvl {
	case TRACE, DEBUG:
		return zapcore.DebugLevel
	case INFO:
		return zapcore.InfoLevel
	case WARN:
		return zapcore.WarnLevel
	case ERROR:
		return zapcore.ErrorLevel
	case FATAL:
		return zapcore.FatalLevel
	default:
		return zapcore.InvalidLevel
	}
}

func zapFields(fields []Field) []zap.Field {
	ff := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		switch f.Type() {
		case IntType:
			ff = append(ff, zap.Int(f.Key(), f.IntValue()))
		case Int64Type:
			ff = append(ff, zap.Int64(f.Key(), f.Int64Value()))
		case StringType:
			ff = append(ff, zap.String(f.Key(), f.StringValue()))
		case BoolType:
			ff = append(ff, zap.Bool(f.Key(), f.BoolValue()))
		case DurationType:
			ff = append(ff, zap.Duration(f.Key(), f.DurationValue()))
		case StringsType:
			ff = append(ff, zap.Strings(f.Key(), f.StringsValue()))
		case ErrorType:
			ff = append(ff, zap.NamedError(f.Key(), f.ErrorValue()))
		case StringerType:
			ff = append(ff, zap.Stringer(f.Key(), f.Stringer()))
		default:
			ff = append(ff, zap.Any(f.Key(), f.AnyValue()))
		}
	}

	return ff
}
