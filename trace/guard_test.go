package trace

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComposeOrder(t *testing.T) {
	var order []string
	t1 := Guard{
		OnRead: func(GuardReadStartInfo) func(GuardReadDoneInfo) {
			order = append(order, "start1")

			return func(GuardReadDoneInfo) {
				order = append(order, "done1")
			}
		},
	}
	t2 := Guard{
		OnRead: func(GuardReadStartInfo) func(GuardReadDoneInfo) {
			order = append(order, "start2")

			return func(GuardReadDoneInfo) {
				order = append(order, "done2")
			}
		},
	}

	composed := t1.Compose(&t2)
	done := composed.OnRead(GuardReadStartInfo{})
	done(GuardReadDoneInfo{})

	require.Equal(t, []string{"start1", "start2", "done1", "done2"}, order)
}

func TestComposeNilHooks(t *testing.T) {
	var called bool
	withHook := Guard{
		OnSet: func(GuardSetStartInfo) func(GuardSetDoneInfo) {
			called = true

			return nil
		},
	}

	t.Run("BothNil", func(t *testing.T) {
		composed := (&Guard{}).Compose(&Guard{})
		require.Nil(t, composed.OnGet)
		require.Nil(t, composed.OnSet)
		require.Nil(t, composed.OnChange)
		require.Nil(t, composed.OnRead)
		require.Nil(t, composed.OnWrite)
	})
	t.Run("LeftNil", func(t *testing.T) {
		called = false
		composed := (&Guard{}).Compose(&withHook)
		require.NotNil(t, composed.OnSet)
		done := composed.OnSet(GuardSetStartInfo{})
		require.True(t, called)
		done(GuardSetDoneInfo{})
	})
	t.Run("RightNil", func(t *testing.T) {
		called = false
		composed := withHook.Compose(&Guard{})
		require.NotNil(t, composed.OnSet)
		done := composed.OnSet(GuardSetStartInfo{})
		require.True(t, called)
		done(GuardSetDoneInfo{})
	})
}

func TestComposeWithPanicCallback(t *testing.T) {
	var recovered interface{}
	panicking := Guard{
		OnWrite: func(GuardWriteStartInfo) func(GuardWriteDoneInfo) {
			panic("from hook")
		},
	}

	composed := panicking.Compose(&Guard{}, WithPanicCallback(func(e interface{}) {
		recovered = e
	}))
	done := composed.OnWrite(GuardWriteStartInfo{})

	require.Equal(t, "from hook", recovered)
	require.Nil(t, done)
}

func TestGuardOnRead(t *testing.T) {
	var (
		gotLabel       string
		gotTransferred bool
	)
	tr := &Guard{
		OnRead: func(info GuardReadStartInfo) func(GuardReadDoneInfo) {
			gotLabel = info.Label

			return func(info GuardReadDoneInfo) {
				gotTransferred = info.Transferred
			}
		},
	}

	onDone := GuardOnRead(tr, "test")
	onDone(true)

	require.Equal(t, "test", gotLabel)
	require.True(t, gotTransferred)
}

func TestGuardOnReadNilHook(t *testing.T) {
	require.NotPanics(t, func() {
		onDone := GuardOnRead(&Guard{}, "test")
		onDone(false)
	})
}

func TestGuardOnGetNilDone(t *testing.T) {
	var started bool
	tr := &Guard{
		OnGet: func(GuardGetStartInfo) func(GuardGetDoneInfo) {
			started = true

			return nil
		},
	}

	require.NotPanics(t, func() {
		onDone := GuardOnGet(tr, "")
		onDone()
	})
	require.True(t, started)
}
