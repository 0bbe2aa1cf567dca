package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const colorReset = "\033[0m"

// Per-level rendering: name, line color, bold color for the level tag
// itself. Unknown levels render as QUIET.
var levels = [...]struct {
	name  string
	color string
	bold  string
}{
	TRACE: {name: "TRACE", color: "\033[38m", bold: "\033[47m"},
	DEBUG: {name: "DEBUG", color: "\033[37m", bold: "\033[100m"},
	INFO:  {name: "INFO", color: "\033[36m", bold: "\033[106m"},
	WARN:  {name: "WARN", color: "\033[33m", bold: "\033[30m\033[103m"},
	ERROR: {name: "ERROR", color: "\033[31m", bold: "\033[101m"},
	FATAL: {name: "FATAL", color: "\033[41m", bold: "\033[101m"},
	QUIET: {name: "QUIET", color: colorReset, bold: ""},
}

func (l Level) known() Level {
	if l < TRACE || l > QUIET {
		return QUIET
	}

	return l
}

func (l Level) String() string {
	return levels[l.known()].name
}

func (l Level) Color() string {
	return levels[l.known()].color
}

func (l Level) BoldColor() string {
	return levels[l.known()].bold
}

func FromString(s string) Level {
	s = strings.ToUpper(s)
	for lvl := TRACE; lvl <= FATAL; lvl++ {
		if levels[lvl].name == s {
			return lvl
		}
	}

	return QUIET
}
