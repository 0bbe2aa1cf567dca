package xstring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBufferReuse(t *testing.T) {
	b := Buffer()
	b.WriteString("first")
	require.Equal(t, "first", b.String())
	b.Free()

	b = Buffer()
	defer b.Free()
	require.Equal(t, 0, b.Len())
	b.WriteByte('x')
	require.Equal(t, "x", b.String())
}
