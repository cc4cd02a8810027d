// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
)

// Is returns true if c is Null or a cons cell.
func Is(c cell.I) bool {
	return c == pair.Null || pair.Is(c)
}

// Length returns the number of cons cells in list. An improper tail is
// not counted. The list must be non-circular.
func Length(list cell.I) int {
	length := 0

	for pair.Is(list) {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.I) cell.I {
	return Dotted(pair.Null, elements...)
}

// Dotted creates a new list composed of elements with tail as the final cdr.
func Dotted(tail cell.I, elements ...cell.I) cell.I {
	l := tail

	for i := len(elements) - 1; i >= 0; i-- {
		l = pair.Cons(elements[i], l)
	}

	return l
}

// Reverse reverses list.
// The list must be non-circular.
func Reverse(list cell.I) cell.I {
	reversed := pair.Null

	for pair.Is(list) {
		reversed = pair.Cons(pair.Car(list), reversed)

		list = pair.Cdr(list)
	}

	return reversed
}

// Slice returns the elements of list and its final cdr.
// The list must be non-circular.
func Slice(list cell.I) ([]cell.I, cell.I) {
	s := make([]cell.I, 0, Length(list))

	for pair.Is(list) {
		s = append(s, pair.Car(list))

		list = pair.Cdr(list)
	}

	return s, list
}
