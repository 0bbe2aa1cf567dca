package xerrors

import (
	"fmt"

	"github.com/guarded-go/guarded/internal/stack"
)

type stackTraceOptions struct {
	skipDepth int
}

type stackTraceOption func(o *stackTraceOptions)

// WithSkipDepth attributes the error to a frame further up the call
// stack, so helpers building errors on behalf of their caller can point
// at that caller.
func WithSkipDepth(skipDepth int) stackTraceOption {
	return func(o *stackTraceOptions) {
		o.skipDepth = skipDepth
	}
}

// WithStackTrace annotates err with the calling function, file and line.
// A nil err stays nil.
func WithStackTrace(err error, opts ...stackTraceOption) error {
	if err == nil {
		return nil
	}
	var o stackTraceOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return &stackError{
		err: err,
		at:  stack.Record(o.skipDepth + 1),
	}
}

type stackError struct {
	err error
	at  string
}

func (e *stackError) Error() string {
	return fmt.Sprintf("%s at `%s`", e.err, e.at)
}

func (e *stackError) Unwrap() error {
	return e.err
}
