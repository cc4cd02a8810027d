// Released under an MIT license. See LICENSE.

package num

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
)

// Each binary operation is defined once per representation. Operands are
// coerced to the wider of their two representations first:
// fixnum < bignum < flonum.
type operation struct {
	name string
	fix  func(x, y int64) (I, error)
	big  func(x, y *big.Int) (I, error)
	flo  func(x, y float64) (I, error)
}

type rank int

const (
	fixnum rank = iota
	bignum
	flonum
)

// Add returns a + b.
func Add(a, b I) I {
	n, _ := apply(&add, a, b)

	return n
}

// Sub returns a - b.
func Sub(a, b I) I {
	n, _ := apply(&sub, a, b)

	return n
}

// Mul returns a * b.
func Mul(a, b I) I {
	n, _ := apply(&mul, a, b)

	return n
}

// Div returns a / b. Integer division truncates toward zero.
func Div(a, b I) (I, error) {
	return apply(&div, a, b)
}

// Mod returns the remainder of a / b. Both a and b must be integers.
// The result has the sign of a.
func Mod(a, b I) (I, error) {
	if !IsInteger(a) || !IsInteger(b) {
		return nil, errs.New(errs.Type, "mod: expected integers, got %s and %s", a.Literal(), b.Literal())
	}

	return apply(&mod, a, b)
}

// Ash shifts the integer a left by b bits, or right if b is negative.
func Ash(a, b I) (I, error) {
	if !IsInteger(a) || !IsInteger(b) {
		return nil, errs.New(errs.Type, "ash: expected integers, got %s and %s", a.Literal(), b.Literal())
	}

	s, ok := Int(b)
	if !ok {
		return nil, errs.New(errs.Range, "ash: shift amount %s out of range", b.Literal())
	}

	switch a := a.(type) {
	case Fixnum:
		return ashFixnum(int64(a), s), nil
	case *Bignum:
		return ashBig(a.Int(), s), nil
	}

	return nil, errs.New(errs.Type, "ash: expected an integer")
}

// Cmp compares a and b by value and returns -1, 0 or +1. NaN compares
// as unordered and returns ok == false.
func Cmp(a, b I) (c int, ok bool) {
	switch max(order(a), order(b)) {
	case fixnum:
		x, y := a.(Fixnum), b.(Fixnum)

		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}

		return 0, true
	case bignum:
		return toBig(a).Cmp(toBig(b)), true
	}

	if isNaN(a) || isNaN(b) {
		return 0, false
	}

	return toBigFloat(a).Cmp(toBigFloat(b)), true
}

// Equal compares a and b by value (=). A flonum and an integer are equal
// if the flonum has exactly the integer's value.
func Equal(a, b I) bool {
	c, ok := Cmp(a, b)

	return ok && c == 0
}

// Eql compares a and b by representation and value (eql?).
func Eql(a, b I) bool {
	return order(a) == order(b) && Equal(a, b)
}

// Neg returns true if n is negative.
func Neg(n I) bool {
	switch n := n.(type) {
	case Fixnum:
		return n < 0
	case *Bignum:
		return n.Int().Sign() < 0
	case Flonum:
		return n < 0
	}

	return false
}

// Float returns the value of n as a float64.
func Float(n I) float64 {
	return toFloat(n)
}

//nolint:gochecknoglobals
var (
	add = operation{
		name: "+",
		fix: func(x, y int64) (I, error) {
			r := x + y
			if (x^r)&(y^r) < 0 {
				return Big(new(big.Int).Add(big.NewInt(x), big.NewInt(y))), nil
			}

			return Fixnum(r), nil
		},
		big: func(x, y *big.Int) (I, error) {
			return Big(new(big.Int).Add(x, y)), nil
		},
		flo: func(x, y float64) (I, error) {
			return Flonum(x + y), nil
		},
	}

	sub = operation{
		name: "-",
		fix: func(x, y int64) (I, error) {
			r := x - y
			if (x^y)&(x^r) < 0 {
				return Big(new(big.Int).Sub(big.NewInt(x), big.NewInt(y))), nil
			}

			return Fixnum(r), nil
		},
		big: func(x, y *big.Int) (I, error) {
			return Big(new(big.Int).Sub(x, y)), nil
		},
		flo: func(x, y float64) (I, error) {
			return Flonum(x - y), nil
		},
	}

	mul = operation{
		name: "*",
		fix: func(x, y int64) (I, error) {
			// If the magnitudes have fewer than 64 significant bits
			// between them the product fits. Otherwise it might not.
			if bits.LeadingZeros64(abs(x))+bits.LeadingZeros64(abs(y)) < 65 {
				return Big(new(big.Int).Mul(big.NewInt(x), big.NewInt(y))), nil
			}

			return Fixnum(x * y), nil
		},
		big: func(x, y *big.Int) (I, error) {
			return Big(new(big.Int).Mul(x, y)), nil
		},
		flo: func(x, y float64) (I, error) {
			return Flonum(x * y), nil
		},
	}

	div = operation{
		name: "/",
		fix: func(x, y int64) (I, error) {
			if y == 0 {
				return nil, divisionByZero("/")
			}

			if x == math.MinInt64 && y == -1 {
				return Big(new(big.Int).Neg(big.NewInt(x))), nil
			}

			return Fixnum(x / y), nil
		},
		big: func(x, y *big.Int) (I, error) {
			if y.Sign() == 0 {
				return nil, divisionByZero("/")
			}

			return Big(new(big.Int).Quo(x, y)), nil
		},
		flo: func(x, y float64) (I, error) {
			return Flonum(x / y), nil
		},
	}

	mod = operation{
		name: "mod",
		fix: func(x, y int64) (I, error) {
			if y == 0 {
				return nil, divisionByZero("mod")
			}

			return Fixnum(x % y), nil
		},
		big: func(x, y *big.Int) (I, error) {
			if y.Sign() == 0 {
				return nil, divisionByZero("mod")
			}

			return Big(new(big.Int).Rem(x, y)), nil
		},
	}
)

func abs(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}

func apply(o *operation, a, b I) (I, error) {
	switch max(order(a), order(b)) {
	case fixnum:
		return o.fix(int64(a.(Fixnum)), int64(b.(Fixnum)))
	case bignum:
		return o.big(toBig(a), toBig(b))
	}

	if o.flo == nil {
		return nil, errs.New(errs.Type, "%s: expected integers", o.name)
	}

	return o.flo(toFloat(a), toFloat(b))
}

func ashBig(x *big.Int, s int64) I {
	if s >= 0 {
		return Big(new(big.Int).Lsh(x, uint(s)))
	}

	if s < -math.MaxInt32 {
		s = -math.MaxInt32
	}

	return Big(new(big.Int).Rsh(x, uint(-s)))
}

func ashFixnum(x, s int64) I {
	if s <= 0 {
		if s < -63 {
			s = -63
		}

		return Fixnum(x >> uint(-s))
	}

	if x == 0 {
		return Fixnum(0)
	}

	if s >= 63 || bits.Len64(abs(x))+int(s) > 62 {
		return ashBig(big.NewInt(x), s)
	}

	return Fixnum(x << uint(s))
}

func divisionByZero(name string) error {
	return errs.New(errs.Arithmetic, "%s: division by zero", name)
}

func isNaN(n I) bool {
	f, ok := n.(Flonum)

	return ok && math.IsNaN(float64(f))
}

func order(n I) rank {
	switch n.(type) {
	case *Bignum:
		return bignum
	case Flonum:
		return flonum
	}

	return fixnum
}

func toBig(n I) *big.Int {
	switch n := n.(type) {
	case Fixnum:
		return big.NewInt(int64(n))
	case *Bignum:
		return n.Int()
	}

	panic("not an integer")
}

func toBigFloat(n I) *big.Float {
	switch n := n.(type) {
	case Fixnum:
		return new(big.Float).SetInt64(int64(n))
	case *Bignum:
		return new(big.Float).SetInt(n.Int())
	case Flonum:
		return new(big.Float).SetFloat64(float64(n))
	}

	panic("not a number")
}

func toFloat(n I) float64 {
	switch n := n.(type) {
	case Fixnum:
		return float64(n)
	case *Bignum:
		f, _ := new(big.Float).SetInt(n.Int()).Float64()

		return f
	case Flonum:
		return float64(n)
	}

	panic("not a number")
}
