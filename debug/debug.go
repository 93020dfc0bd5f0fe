// Package debug holds the debugging verbosity plumbing shared by the demo
// binary and its helpers.
package debug

import (
	"fmt"
	"io"
)

type DebugLevel int8

const (
	NoDebug DebugLevel = iota
	Debug
	Warn
	Error
)

func (l DebugLevel) String() string {
	switch l {
	case NoDebug:
		return "none"
	case Debug:
		return "debug"
	case Warn:
		return "warn"
	}
	return "error"
}

func IsDebug(level DebugLevel) bool {
	return level <= Debug
}

func IsWarn(level DebugLevel) bool {
	return level <= Warn
}

func IsError(level DebugLevel) bool {
	return level <= Error
}

// DebugWithPrefix tags diagnostic output with the component it came from.
type DebugWithPrefix struct {
	Level  DebugLevel
	Prefix string
}

func NewDebugWithPrefix(level DebugLevel, prefix string) *DebugWithPrefix {
	return &DebugWithPrefix{Level: level, Prefix: prefix}
}

func (d *DebugWithPrefix) String() string {
	return d.Prefix
}

// Printf emits a prefixed diagnostic line when the receiver's level admits
// debugging output.
func (d *DebugWithPrefix) Printf(w io.Writer, format string, args ...interface{}) {
	if !IsDebug(d.Level) {
		return
	}
	fmt.Fprintf(w, "(%s) %s", d.Prefix, fmt.Sprintf(format, args...))
}
