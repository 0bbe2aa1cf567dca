package guarded

import (
	"errors"

	"github.com/guarded-go/guarded/internal/xerrors"
)

// ErrReleasedGuard is carried by the panic raised when a guard is used
// after it was released or transferred. Recover sites can match it with
// errors.Is.
var ErrReleasedGuard = xerrors.Wrap(errors.New("guarded: guard already released"))
