// Released under an MIT license. See LICENSE.

// Package array provides starlisp's fixed-length mutable array type.
package array

import (
	"strings"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/vector"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
)

const name = "array"

// T (array) is a fixed-length sequence of cells.
type T struct {
	v []cell.I
}

type array = T

// New creates an array of length n with every element set to Null.
func New(n int) *array {
	v := make([]cell.I, n)
	for i := range v {
		v[i] = pair.Null
	}

	return &array{v: v}
}

// FromList creates an array with the elements of the list l.
func FromList(l cell.I) *array {
	v, _ := list.Slice(l)

	return &array{v: v}
}

// Equal returns true if c is an array with equal elements.
func (a *array) Equal(c cell.I) bool {
	o, ok := c.(*array)
	if !ok || len(o.v) != len(a.v) {
		return false
	}

	for i, e := range a.v {
		if !e.Equal(o.v[i]) {
			return false
		}
	}

	return true
}

// Hash returns a hash consistent with Equal.
func (a *array) Hash() uint32 {
	h := uint32(1)
	for _, e := range a.v {
		h = 31*h + hashable.Value(e)
	}

	return h
}

// Length returns the number of elements in the array a.
func (a *array) Length() int {
	return len(a.v)
}

// Literal returns the literal representation of the array a.
func (a *array) Literal() string {
	s := make([]string, len(a.v))
	for i, e := range a.v {
		s[i] = literal.String(e)
	}

	return "#(" + strings.Join(s, " ") + ")"
}

// Name returns the type name for the array a.
func (a *array) Name() string {
	return name
}

// Ref returns the element at index i.
func (a *array) Ref(i int) (cell.I, error) {
	if err := Check(i, len(a.v)); err != nil {
		return nil, err
	}

	return a.v[i], nil
}

// Set replaces the element at index i with v and returns the old element.
func (a *array) Set(i int, v cell.I) (cell.I, error) {
	if err := Check(i, len(a.v)); err != nil {
		return nil, err
	}

	old := a.v[i]
	a.v[i] = v

	return old, nil
}

// Check returns an error if i is not a valid index for length n.
func Check(i, n int) error {
	if i < 0 || i >= n {
		return errs.New(errs.Range, "index %d out of range [0, %d)", i, n)
	}

	return nil
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t array

	// The array type is a vector.
	_ = vector.I(&t)

	// The array type has a literal representation.
	_ = literal.I(&t)

	// The array type has a structural hash.
	_ = hashable.I(&t)
}
