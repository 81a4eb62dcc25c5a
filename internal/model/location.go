package model

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// PropertyLocation captures the call-site provenance of an inspection
// call. It is immutable after construction; two locations are equal iff
// function, file and line all match.
type PropertyLocation struct {
	Function string
	File     string
	Line     int
}

// NewPropertyLocation builds a location from explicit fields.
func NewPropertyLocation(function, file string, line int) PropertyLocation {
	return PropertyLocation{Function: function, File: file, Line: line}
}

// CallerLocation captures the location of the caller skip frames above the
// caller of CallerLocation itself. It degrades to an "unknown" location
// when the runtime cannot resolve the frame.
func CallerLocation(skip int) PropertyLocation {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return PropertyLocation{Function: "unknown", File: "unknown", Line: 0}
	}

	function := "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		function = shortFunctionName(fn.Name())
	}

	return PropertyLocation{
		Function: function,
		File:     filepath.Base(file),
		Line:     line,
	}
}

// shortFunctionName trims the package path prefix from a fully qualified
// runtime function name.
func shortFunctionName(qualified string) string {
	if idx := strings.LastIndex(qualified, "/"); idx >= 0 {
		qualified = qualified[idx+1:]
	}

	if idx := strings.Index(qualified, "."); idx >= 0 {
		qualified = qualified[idx+1:]
	}

	return qualified
}

// String renders the deterministic "file:line" display label.
func (l PropertyLocation) String() string {
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Compare orders locations by file, then numerically by line, so
// properties from the same file group together and sort in source order.
func (l PropertyLocation) Compare(other PropertyLocation) int {
	if c := strings.Compare(l.File, other.File); c != 0 {
		return c
	}

	switch {
	case l.Line < other.Line:
		return -1
	case l.Line > other.Line:
		return 1
	}

	return 0
}
