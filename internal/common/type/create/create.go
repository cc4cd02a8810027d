// Released under an MIT license. See LICENSE.

// Package create provides helper functions for creating starlisp values.
package create

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
)

// Bool returns t if a is true and Null otherwise. The symbol t belongs
// to a symbol table so it is supplied by the caller.
func Bool(a bool, t cell.I) cell.I {
	if a {
		return t
	}

	return pair.Null
}
