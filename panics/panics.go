// Package panics implements the process-terminating failure reporter
// used for contract violations. A panic raised here carries the message
// and the call site that raised it; it is not meant to be recovered,
// and an unrecovered panic terminates the process with the diagnostic
// and the offending stack. Recoverable conditions belong in domain
// error values, not here.
package panics

import (
	"fmt"
	"runtime"
)

// Location identifies the call site that raised a panic.
type Location struct {
	File string
	Line int
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Caller captures the location skip frames above the caller of Caller.
// Caller(0) is the caller itself.
func Caller(skip int) Location {
	_, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return Location{File: "unknown"}
	}
	return Location{File: file, Line: line}
}

// Error is the value carried by a panic raised from this package.
type Error struct {
	Msg      string
	Location Location
}

func (e *Error) Error() string {
	return fmt.Sprintf("panicked at '%s', %s", e.Msg, e.Location)
}

// Panic reports msg together with the caller's location and never
// returns.
func Panic(msg string) {
	PanicAt(msg, Caller(1))
}

// PanicAt is Panic with an explicit location, for callers that captured
// the site earlier.
func PanicAt(msg string, loc Location) {
	panic(&Error{Msg: msg, Location: loc})
}
