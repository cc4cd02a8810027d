// Released under an MIT license. See LICENSE.

// Package pair provides starlisp's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
)

const (
	name = "cons"

	// Mixed into hashes so that a proper tail hashes differently
	// from an atom in the same position.
	properTail = 261835505
)

//nolint:gochecknoglobals
var (
	// Null is the empty list. It is also false and "not found".
	Null cell.I
)

// T (pair) is a cons cell.
type T struct {
	car cell.I
	cdr cell.I
}

type pair = T

// Equal returns true if c is a pair with elements that are equal to p's.
func (p *pair) Equal(c cell.I) bool {
	for {
		q, ok := c.(*pair)
		if !ok {
			return false
		}

		if p == q {
			return true
		}

		if p == Null || q == Null || !p.car.Equal(q.car) {
			return false
		}

		next, ok := p.cdr.(*pair)
		if !ok {
			return p.cdr.Equal(q.cdr)
		}

		p, c = next, q.cdr
	}
}

// Hash returns a hash consistent with Equal.
func (p *pair) Hash() uint32 {
	if p == Null {
		return properTail
	}

	cars := []cell.I{}

	var c cell.I = p
	for Is(c) {
		cars = append(cars, Car(c))
		c = Cdr(c)
	}

	h := element(c)
	for i := len(cars) - 1; i >= 0; i-- {
		h = element(cars[i]) + 31*h

		if i > 0 {
			// The cdr of the previous cell is this pair.
			h++
		}
	}

	return h
}

// Literal returns the literal representation of the pair p.
func (p *pair) Literal() string {
	if p == Null {
		return "nil"
	}

	var b strings.Builder

	b.WriteByte('(')

	var c cell.I = p
	for {
		b.WriteString(literal.String(Car(c)))

		tail := Cdr(c)
		if tail == Null {
			break
		}

		if !Is(tail) {
			b.WriteString(" . ")
			b.WriteString(literal.String(tail))

			break
		}

		b.WriteByte(' ')

		c = tail
	}

	b.WriteByte(')')

	return b.String()
}

// Name returns the name for a pair type.
func (p *pair) Name() string {
	if p == Null {
		return "nil"
	}

	return name
}

// String returns the text representation of the pair p.
func (p *pair) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// The car of Null is Null. If c is not a pair, this function will panic.
func Car(c cell.I) cell.I {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// The cdr of Null is Null. If c is not a pair, this function will panic.
func Cdr(c cell.I) cell.I {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.I) cell.I {
	return To(To(c).cdr).car
}

// Cddr returns the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cddr(c cell.I) cell.I {
	return To(To(c).cdr).cdr
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.I) cell.I {
	return &pair{car: h, cdr: t}
}

// Is returns true if c is a cons cell. Null is not a cons cell.
func Is(c cell.I) bool {
	p, ok := c.(*pair)

	return ok && p != Null
}

// SetCar sets the car/head/first of the pair c to value.
// If c is not a cons cell, this function will panic.
func SetCar(c, value cell.I) {
	mutable(c).car = value
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// If c is not a cons cell, this function will panic.
func SetCdr(c, value cell.I) {
	mutable(c).cdr = value
}

// To returns a *T if c is a pair (including Null); Otherwise it panics.
func To(c cell.I) *T {
	if p, ok := c.(*pair); ok {
		return p
	}

	panic("not a " + name)
}

func element(c cell.I) uint32 {
	if c == Null {
		return properTail
	}

	if Is(c) {
		return 1 + hashable.Value(c)
	}

	return hashable.Value(c)
}

func mutable(c cell.I) *pair {
	p := To(c)
	if p == Null {
		panic("nil cannot be modified")
	}

	return p
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t pair

	// The pair type is a cell.
	_ = cell.I(&t)

	// The pair type has a literal representation.
	_ = literal.I(&t)

	// The pair type has a structural hash.
	_ = hashable.I(&t)
}

func init() { //nolint:gochecknoinits
	pair := &pair{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.I(pair)
}
