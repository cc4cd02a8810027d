// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/cell"
	"github.com/michaelmacinnis/starlisp/internal/common/interface/literal"
	"github.com/michaelmacinnis/starlisp/internal/common/type/array"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/list"
	"github.com/michaelmacinnis/starlisp/internal/common/type/num"
	"github.com/michaelmacinnis/starlisp/internal/common/type/pair"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/validate"
)

func (c *commands) vectors() []entry {
	return []entry{
		{"aref", 2, 2, aref},
		{"aset", 3, 3, aset},
		{"char->integer", 1, 1, charToInteger},
		{"integer->char", 1, 1, integerToChar},
		{"make-array", 1, 1, makeArray},
		{"make-string", 2, 2, makeString},
	}
}

func aref(args []cell.I) (cell.I, error) {
	v, err := validate.Vector("aref", args[0])
	if err != nil {
		return nil, err
	}

	i, err := validate.Int("aref", args[1])
	if err != nil {
		return nil, err
	}

	return v.Ref(int(i))
}

// aset stores args[2] and returns the value it replaced.
func aset(args []cell.I) (cell.I, error) {
	v, err := validate.Vector("aset", args[0])
	if err != nil {
		return nil, err
	}

	i, err := validate.Int("aset", args[1])
	if err != nil {
		return nil, err
	}

	return v.Set(int(i), args[2])
}

func charToInteger(args []cell.I) (cell.I, error) {
	ch, err := validate.Char("char->integer", args[0])
	if err != nil {
		return nil, err
	}

	return num.Fixnum(ch), nil
}

func integerToChar(args []cell.I) (cell.I, error) {
	i, err := validate.Int("integer->char", args[0])
	if err != nil {
		return nil, err
	}

	if i < 0 || i > unicode.MaxRune {
		return nil, errs.New(errs.Range, "integer->char: %d is not a character", i)
	}

	return char.T(i), nil
}

func makeArray(args []cell.I) (cell.I, error) {
	if list.Is(args[0]) {
		_, tail := list.Slice(args[0])
		if tail != pair.Null {
			return nil, errs.New(errs.Type, "make-array: dotted list")
		}

		return array.FromList(args[0]), nil
	}

	n, err := validate.Int("make-array", args[0])
	if err != nil {
		return nil, errs.New(errs.Type, "make-array: expected integer or list, passed %s", literal.String(args[0]))
	}

	if n < 0 {
		return nil, errs.New(errs.Range, "make-array: negative length %d", n)
	}

	return array.New(int(n)), nil
}

func makeString(args []cell.I) (cell.I, error) {
	n, err := validate.Int("make-string", args[0])
	if err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, errs.New(errs.Range, "make-string: negative length %d", n)
	}

	ch, err := validate.Char("make-string", args[1])
	if err != nil {
		return nil, err
	}

	return str.Make(int(n), ch), nil
}
