package log

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"

	"github.com/guarded-go/guarded/internal/kv"
)

func TestDefaultLoggerFormat(t *testing.T) {
	var buf bytes.Buffer
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	l := Default(&buf, WithMinLevel(TRACE), WithClock(clock))

	l.Log(with(context.Background(), INFO, "guarded", "value"), "message",
		kv.String("label", "x"),
		kv.Int("n", 42),
	)

	require.Equal(t,
		"2024-01-02 03:04:05.000 INFO 'guarded.value' => message {\"label\":\"x\",\"n\":\"42\"}\n",
		buf.String(),
	)
}

func TestDefaultLoggerNoFields(t *testing.T) {
	var buf bytes.Buffer
	clock := clockwork.NewFakeClockAt(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	l := Default(&buf, WithMinLevel(TRACE), WithClock(clock))

	l.Log(with(context.Background(), WARN, "guarded"), "plain")

	require.Equal(t, "2024-01-02 03:04:05.000 WARN 'guarded' => plain\n", buf.String())
}

func TestDefaultLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Default(&buf)

	l.Log(with(context.Background(), TRACE, "guarded"), "below min level")
	require.Zero(t, buf.Len())

	l.Log(with(context.Background(), ERROR, "guarded"), "message", kv.Error(errors.New("boom")))
	require.Contains(t, buf.String(), "ERROR 'guarded' => message {\"error\":\"boom\"}")
}

func TestColoring(t *testing.T) {
	for _, tt := range []struct {
		l   *textLogger
		exp string
	}{
		{
			l: &textLogger{
				coloring: true,
				clock:    clockwork.NewFakeClock(),
			},
			exp: "\u001B[31m1984-04-04 00:00:00.000 \u001B[0m\u001B[101mERROR\u001B[0m\u001B[31m 'test.scope' => message\u001B[0m", //nolint:lll
		},
		{
			l: &textLogger{
				coloring: false,
				clock:    clockwork.NewFakeClock(),
			},
			exp: "1984-04-04 00:00:00.000 ERROR 'test.scope' => message",
		},
	} {
		t.Run("", func(t *testing.T) {
			require.Equal(t, tt.exp, tt.l.format([]string{"test", "scope"}, "message", ERROR))
		})
	}
}
