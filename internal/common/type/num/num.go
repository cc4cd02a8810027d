// Released under an MIT license. See LICENSE.

// Package num provides starlisp's numeric tower: fixnums (int64), bignums
// (arbitrary precision integers) and flonums (float64).
package num

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/hashable"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
)

// I (num) is any starlisp number. The set of implementations is closed.
type I interface {
	cell.I
	literal.I
	hashable.I

	number()
}

// Fixnum is a fixed-width exact integer.
type Fixnum int64

// Bignum is an arbitrary-precision exact integer.
type Bignum big.Int

// Flonum is a floating-point number.
type Flonum float64

//nolint:gochecknoglobals
var pattern = regexp.MustCompile(`^[+-]?(\d+(\.\d+)?|\.\d+)([eE][+-]?\d+)?$`)

// Is returns true if the text s looks like a number.
func Is(s string) bool {
	return pattern.MatchString(s)
}

// Parse converts s to a number trying, in order, fixnum, bignum, flonum.
func Parse(s string) (I, bool) {
	if !Is(s) {
		return nil, false
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Fixnum(i), true
	}

	if b, ok := new(big.Int).SetString(s, 10); ok {
		return Big(b), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil && !math.IsInf(f, 0) {
		return nil, false
	}

	return Flonum(f), true
}

// Big wraps b as a bignum. The caller must not modify b afterwards.
func Big(b *big.Int) *Bignum {
	return (*Bignum)(b)
}

// Int returns the value of n as an int64 if n is an integer that fits.
func Int(n I) (int64, bool) {
	switch n := n.(type) {
	case Fixnum:
		return int64(n), true
	case *Bignum:
		if n.Int().IsInt64() {
			return n.Int().Int64(), true
		}
	}

	return 0, false
}

// IsInteger returns true if n is a fixnum or a bignum.
func IsInteger(n I) bool {
	switch n.(type) {
	case Fixnum, *Bignum:
		return true
	}

	return false
}

// Fixnum.

// Equal returns true if c is a number with the same value.
func (n Fixnum) Equal(c cell.I) bool {
	m, ok := c.(I)

	return ok && Equal(n, m)
}

// Hash returns a hash consistent with Equal.
func (n Fixnum) Hash() uint32 {
	return hashInt(int64(n))
}

// Literal returns the literal representation of n.
func (n Fixnum) Literal() string {
	return strconv.FormatInt(int64(n), 10)
}

// Name returns the type name for n.
func (n Fixnum) Name() string {
	return "fixnum"
}

// String returns the text of n.
func (n Fixnum) String() string {
	return n.Literal()
}

func (n Fixnum) number() {}

// Bignum.

// Equal returns true if c is a number with the same value.
func (n *Bignum) Equal(c cell.I) bool {
	m, ok := c.(I)

	return ok && Equal(n, m)
}

// Hash returns a hash consistent with Equal.
func (n *Bignum) Hash() uint32 {
	b := n.Int()
	if b.IsInt64() {
		return hashInt(b.Int64())
	}

	h := uint32(b.Sign())
	for _, w := range b.Bits() {
		h = 31*h + uint32(w) + uint32(uint64(w)>>32)
	}

	return h
}

// Int returns n as a *big.Int. The result must not be modified.
func (n *Bignum) Int() *big.Int {
	return (*big.Int)(n)
}

// Literal returns the literal representation of n.
func (n *Bignum) Literal() string {
	return n.Int().String()
}

// Name returns the type name for n.
func (n *Bignum) Name() string {
	return "bignum"
}

// String returns the text of n.
func (n *Bignum) String() string {
	return n.Literal()
}

func (n *Bignum) number() {}

// Flonum.

// Equal returns true if c is a number with the same value.
func (n Flonum) Equal(c cell.I) bool {
	m, ok := c.(I)

	return ok && Equal(n, m)
}

// Hash returns a hash consistent with Equal.
func (n Flonum) Hash() uint32 {
	f := float64(n)
	if f == math.Trunc(f) && !math.IsInf(f, 0) {
		if f >= math.MinInt64 && f < math.MaxInt64 {
			return hashInt(int64(f))
		}

		b, _ := big.NewFloat(f).Int(nil)

		return Big(b).Hash()
	}

	b := math.Float64bits(f)

	return uint32(b ^ b>>32)
}

// Literal returns the literal representation of n. The text always reads
// back as a flonum: a decimal point is added to integral values.
func (n Flonum) Literal() string {
	f := float64(n)
	s := strconv.FormatFloat(f, 'g', -1, 64)

	if math.IsInf(f, 0) || math.IsNaN(f) {
		return s
	}

	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}

	return s
}

// Name returns the type name for n.
func (n Flonum) Name() string {
	return "flonum"
}

// String returns the text of n.
func (n Flonum) String() string {
	return n.Literal()
}

func (n Flonum) number() {}

func hashInt(i int64) uint32 {
	return uint32(i ^ i>>32)
}

// A compiler-checked list of interfaces these types satisfy. Never called.
func implements() { //nolint:deadcode,unused
	var (
		b Bignum
		f Flonum
		i Fixnum
	)

	// All three types are numbers.
	_ = I(&b)
	_ = I(f)
	_ = I(i)
}
