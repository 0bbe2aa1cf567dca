package log

import (
	"github.com/guarded-go/guarded/internal/kv"
)

// Field is the structured payload attached to log messages. Constructors
// live in internal/kv; the trace adapters build fields there and hand
// them to Logger implementations as this alias.
type Field = kv.KeyValue

// Field type tags zapFields switches on. Anything else goes through
// kv's reflect-based fallback.
const (
	IntType      = kv.IntType
	Int64Type    = kv.Int64Type
	StringType   = kv.StringType
	BoolType     = kv.BoolType
	DurationType = kv.DurationType
	StringsType  = kv.StringsType
	ErrorType    = kv.ErrorType
	StringerType = kv.StringerType
)
