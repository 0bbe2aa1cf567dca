package log

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/guarded-go/guarded/internal/xstring"
)

const dateLayout = "2006-01-02 15:04:05.000"

type Logger interface {
	// Log writes one message at the level and scope names carried by ctx.
	// Implementations must not retain the fields slice after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*textLogger)(nil)

type simpleLoggerOption interface {
	applySimpleOption(l *textLogger)
}

// Default returns a Logger writing one line per message to w. It logs at
// INFO and above unless WithMinLevel lowers the threshold.
func Default(w io.Writer, opts ...simpleLoggerOption) *textLogger {
	l := &textLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt.applySimpleOption(l)
		}
	}

	return l
}

type textLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock
	w        io.Writer
}

func (l *textLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}

	line := l.format(NamesFromContext(ctx), renderFields(msg, fields), lvl)
	_, _ = io.WriteString(l.w, line+"\n")
}

func (l *textLogger) format(names []string, msg string, lvl Level) string {
	color, reset := "", ""
	if l.coloring {
		color, reset = lvl.Color(), colorReset
	}

	b := xstring.Buffer()
	defer b.Free()

	b.WriteString(color)
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	if l.coloring {
		b.WriteString(reset)
		b.WriteString(lvl.BoldColor())
	}
	b.WriteString(lvl.String())
	b.WriteString(reset)
	b.WriteString(color)
	b.WriteString(" '")
	b.WriteString(strings.Join(names, "."))
	b.WriteString("' => ")
	b.WriteString(msg)
	b.WriteString(reset)

	return b.String()
}

func renderFields(msg string, fields []Field) string {
	if len(fields) == 0 {
		return msg
	}

	b := xstring.Buffer()
	defer b.Free()

	b.WriteString(msg)
	b.WriteString(" {")
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(b, "%q:%q", f.Key(), f.String())
	}
	b.WriteByte('}')

	return b.String()
}
