// Released under an MIT license. See LICENSE.

// Package loc provides the position type used by streams and reported in
// reader errors.
package loc

import (
	"strconv"
)

// T (loc) is a position within a named character source.
type T struct {
	Char int    // Characters read on the current line.
	Line int    // Line number, starting at 1 for input.
	Name string // Path or label of the source.
}

type loc = T

// String formats l as name:line:char.
func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
