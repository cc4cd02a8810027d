// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all starlisp types.
package cell

// I (cell) is the basic unit of storage in starlisp.
type I interface {
	// Equal is structural equality (equal?).
	Equal(c I) bool
	// Name is the type name used by type? and in diagnostics.
	Name() string
}
