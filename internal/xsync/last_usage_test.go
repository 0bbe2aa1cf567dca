package xsync

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

func TestLastUsage(t *testing.T) {
	t.Run("NowWhileInUse", func(t *testing.T) {
		start := time.Unix(0, 0)
		clock := clockwork.NewFakeClockAt(start)
		lu := NewLastUsage(WithClock(clock))
		require.Equal(t, start, lu.Get())
		stop := lu.Start()
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(time.Hour), lu.Get())
		clock.Advance(time.Hour)
		stop()
		require.Equal(t, start.Add(2*time.Hour), lu.Get())
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(2*time.Hour), lu.Get())
	})
	t.Run("PinnedByLastStop", func(t *testing.T) {
		start := time.Unix(0, 0)
		clock := clockwork.NewFakeClockAt(start)
		lu := NewLastUsage(WithClock(clock))
		stop1 := lu.Start()
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(time.Hour), lu.Get())
		stop2 := lu.Start()
		clock.Advance(time.Hour)
		stop1()
		stop3 := lu.Start()
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(3*time.Hour), lu.Get())
		stop3()
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(4*time.Hour), lu.Get())
		clock.Advance(time.Hour)
		stop2()
		require.Equal(t, start.Add(5*time.Hour), lu.Get())
		clock.Advance(time.Hour)
		stop2()
		require.Equal(t, start.Add(5*time.Hour), lu.Get())
	})
	t.Run("DeferStop", func(t *testing.T) {
		start := time.Unix(0, 0)
		clock := clockwork.NewFakeClockAt(start)
		lu := NewLastUsage(WithClock(clock))

		func() {
			require.Equal(t, start, lu.Get())
			clock.Advance(time.Hour)
			require.Equal(t, start, lu.Get())
			clock.Advance(time.Hour)
			defer lu.Start()()
			require.Equal(t, start.Add(2*time.Hour), lu.Get())
			clock.Advance(time.Hour)
			require.Equal(t, start.Add(3*time.Hour), lu.Get())
			clock.Advance(time.Hour)
		}()
		clock.Advance(time.Hour)
		require.Equal(t, start.Add(4*time.Hour), lu.Get())
	})
}
