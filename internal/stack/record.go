package stack

import (
	"runtime"
	"strconv"
	"strings"

	"github.com/guarded-go/guarded/internal/xstring"
)

type recordOptions struct {
	fileName bool
	line     bool
}

type recordOption func(opts *recordOptions)

func FileName(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.fileName = b
	}
}

func Line(b bool) recordOption {
	return func(opts *recordOptions) {
		opts.line = b
	}
}

type call struct {
	function uintptr
	file     string
	line     int
}

// Call captures the frame depth levels above the caller; depth 0 is the
// caller itself.
func Call(depth int) (c call) {
	c.function, c.file, c.line, _ = runtime.Caller(depth + 1)

	return c
}

// Record renders the captured frame as
// `path/to/package.Function(file.go:line)`. FileName(false) drops the
// parenthesized suffix, Line(false) only the line. Generic instantiation
// markers are stripped from the function name.
func (c call) Record(opts ...recordOption) string {
	o := recordOptions{
		fileName: true,
		line:     true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	b := xstring.Buffer()
	defer b.Free()

	name := runtime.FuncForPC(c.function).Name()
	b.WriteString(strings.ReplaceAll(name, "[...]", ""))
	if o.fileName {
		b.WriteByte('(')
		if i := strings.LastIndexByte(c.file, '/'); i > -1 {
			b.WriteString(c.file[i+1:])
		} else {
			b.WriteString(c.file)
		}
		if o.line {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(c.line))
		}
		b.WriteByte(')')
	}

	return b.String()
}

// Record stamps the frame depth levels above the caller of Record.
func Record(depth int, opts ...recordOption) string {
	return Call(depth + 1).Record(opts...)
}
