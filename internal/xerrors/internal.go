package xerrors

import (
	"errors"
)

type isInternalError interface {
	isInternalError()
}

// IsInternal reports whether err (or any error in its tree) originates
// from this library, as opposed to being produced by user code.
func IsInternal(err error) bool {
	var e isInternalError

	return errors.As(err, &e)
}

type internalError struct {
	err error
}

func (e *internalError) isInternalError() {}

func (e *internalError) Error() string {
	return e.err.Error()
}

func (e *internalError) Unwrap() error {
	return e.err
}

// Wrap marks err as an internal library error.
func Wrap(err error) error {
	return &internalError{err: err}
}
