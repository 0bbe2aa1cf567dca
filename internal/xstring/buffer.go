package xstring

import (
	"bytes"
	"sync"
)

type buffer struct {
	bytes.Buffer
}

var buffersPool = sync.Pool{
	New: func() interface{} {
		return &buffer{}
	},
}

// Buffer returns a pooled builder. Callers must not retain it after Free.
func Buffer() *buffer {
	return buffersPool.Get().(*buffer)
}

func (b *buffer) Free() {
	b.Reset()
	buffersPool.Put(b)
}
