package kv

import (
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/guarded-go/guarded/internal/version"
)

const (
	InvalidType = FieldType(iota)
	IntType
	Int64Type
	StringType
	BoolType
	DurationType
	StringsType
	ErrorType
	AnyType
	StringerType
)

const nilPtr = "<nil>"

type FieldType int

func (ft FieldType) String() string {
	switch ft {
	case InvalidType:
		return "invalid"
	case IntType:
		return "int"
	case Int64Type:
		return "int64"
	case StringType:
		return "string"
	case BoolType:
		return "bool"
	case DurationType:
		return "time.Duration"
	case StringsType:
		return "[]string"
	case ErrorType:
		return "error"
	case AnyType:
		return "any"
	case StringerType:
		return "stringer"
	default:
		return fmt.Sprintf("unknown %d", int(ft))
	}
}

// KeyValue is a typed log field. One value slot per representation keeps
// common fields allocation free.
type KeyValue struct {
	ftype FieldType
	key   string

	vint int64
	vstr string
	vany interface{}
}

func (f KeyValue) Type() FieldType {
	return f.ftype
}

func (f KeyValue) Key() string {
	return f.key
}

func (f KeyValue) checkType(want FieldType) {
	if f.ftype != want {
		panic(fmt.Sprintf("bad type: have %s, want %s", f.ftype, want))
	}
}

func (f KeyValue) IntValue() int {
	f.checkType(IntType)

	return int(f.vint)
}

func (f KeyValue) Int64Value() int64 {
	f.checkType(Int64Type)

	return f.vint
}

func (f KeyValue) StringValue() string {
	f.checkType(StringType)

	return f.vstr
}

func (f KeyValue) BoolValue() bool {
	f.checkType(BoolType)

	return f.vint != 0
}

func (f KeyValue) DurationValue() time.Duration {
	f.checkType(DurationType)

	return time.Duration(f.vint)
}

func (f KeyValue) StringsValue() []string {
	f.checkType(StringsType)
	if f.vany == nil {
		return nil
	}

	return f.vany.([]string)
}

func (f KeyValue) ErrorValue() error {
	f.checkType(ErrorType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(error)
}

func (f KeyValue) Stringer() fmt.Stringer {
	f.checkType(StringerType)
	if f.vany == nil {
		return nil
	}

	return f.vany.(fmt.Stringer)
}

// AnyValue returns the value boxed as interface{}, whatever the type.
func (f KeyValue) AnyValue() interface{} {
	switch f.ftype {
	case IntType:
		return f.IntValue()
	case Int64Type:
		return f.Int64Value()
	case StringType:
		return f.StringValue()
	case BoolType:
		return f.BoolValue()
	case DurationType:
		return f.DurationValue()
	case StringsType:
		return f.StringsValue()
	case ErrorType:
		return f.ErrorValue()
	case AnyType:
		return f.vany
	case StringerType:
		return f.Stringer()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// String renders the value (not the key) as text.
func (f KeyValue) String() string {
	switch f.ftype {
	case IntType, Int64Type:
		return strconv.FormatInt(f.vint, 10)
	case StringType:
		return f.vstr
	case BoolType:
		return strconv.FormatBool(f.BoolValue())
	case DurationType:
		return f.DurationValue().String()
	case StringsType:
		return fmt.Sprintf("%v", f.StringsValue())
	case ErrorType:
		if f.vany == nil || f.vany.(error) == nil {
			return nilPtr
		}

		return f.ErrorValue().Error()
	case AnyType:
		if f.vany == nil {
			return nilPtr
		}
		if v := reflect.ValueOf(f.vany); v.Type().Kind() == reflect.Ptr {
			if v.IsNil() {
				return nilPtr
			}

			return v.Type().String() + "(" + fmt.Sprint(v.Elem()) + ")"
		}

		return fmt.Sprint(f.vany)
	case StringerType:
		return f.Stringer().String()
	default:
		panic(fmt.Sprintf("unknown FieldType %d", f.ftype))
	}
}

// Int returns Field with IntType
func Int(key string, value int) KeyValue {
	return KeyValue{
		ftype: IntType,
		key:   key,
		vint:  int64(value),
	}
}

// Int64 returns Field with Int64Type
func Int64(key string, value int64) KeyValue {
	return KeyValue{
		ftype: Int64Type,
		key:   key,
		vint:  value,
	}
}

// String returns Field with StringType
func String(key, value string) KeyValue {
	return KeyValue{
		ftype: StringType,
		key:   key,
		vstr:  value,
	}
}

// Bool returns Field with BoolType
func Bool(key string, value bool) KeyValue {
	var vint int64
	if value {
		vint = 1
	}

	return KeyValue{
		ftype: BoolType,
		key:   key,
		vint:  vint,
	}
}

// Duration returns Field with DurationType
func Duration(key string, value time.Duration) KeyValue {
	return KeyValue{
		ftype: DurationType,
		key:   key,
		vint:  value.Nanoseconds(),
	}
}

// Strings returns Field with StringsType
func Strings(key string, value []string) KeyValue {
	return KeyValue{
		ftype: StringsType,
		key:   key,
		vany:  value,
	}
}

// NamedError returns Field with ErrorType
func NamedError(key string, value error) KeyValue {
	return KeyValue{
		ftype: ErrorType,
		key:   key,
		vany:  value,
	}
}

// Error returns Field with ErrorType and key "error"
func Error(value error) KeyValue {
	return NamedError("error", value)
}

// Any returns Field with AnyType
func Any(key string, value interface{}) KeyValue {
	return KeyValue{
		ftype: AnyType,
		key:   key,
		vany:  value,
	}
}

// Stringer returns Field with StringerType
func Stringer(key string, value fmt.Stringer) KeyValue {
	return KeyValue{
		ftype: StringerType,
		key:   key,
		vany:  value,
	}
}

// Latency creates Field "latency": time.Since(start)
func Latency(start time.Time) KeyValue {
	return Duration("latency", time.Since(start))
}

// Version creates Field "version": version.FullVersion
func Version() KeyValue {
	return String("version", version.FullVersion)
}
