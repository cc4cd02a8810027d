// Released under an MIT license. See LICENSE.

// Package vector defines the interface for fixed-length indexed sequences.
package vector

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
)

// I (vector) is satisfied by arrays and strings.
type I interface {
	cell.I

	Length() int
	Ref(i int) (cell.I, error)
	Set(i int, v cell.I) (cell.I, error)
}

// Is returns true if c is a vector.
func Is(c cell.I) bool {
	_, ok := c.(I)

	return ok
}
