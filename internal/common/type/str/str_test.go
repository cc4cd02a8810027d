// Released under an MIT license. See LICENSE.

package str_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/common/errs"
	"github.com/michaelmacinnis/starlisp/internal/common/type/char"
	"github.com/michaelmacinnis/starlisp/internal/common/type/str"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

func TestQuote(t *testing.T) {
	for _, tc := range [][2]string{
		{"", `""`},
		{"abc", `"abc"`},
		{`say "hi"`, `"say \"hi\""`},
		{"it's", `"it's"`},
		{"a\tb\n", `"a\tb\n"`},
		{`back\slash`, `"back\\slash"`},
		{"\x01", `"\x01"`},
		{"é", `"é"`},
		{"λx → \"y\"\n", `"λx → \"y\"\n"`},
		{"\u0085", `"\u0085"`},
		{"\xff", `"\xff"`},
	} {
		require.Equal(t, tc[1], str.Quote(tc[0]), "quoting %q", tc[0])
	}
}

func TestSet(t *testing.T) {
	s := str.Make(3, char.T('x'))
	require.Equal(t, "xxx", s.String())

	old, err := s.Set(1, char.T('y'))
	require.NoError(t, err)
	require.Equal(t, char.T('x'), old)
	require.Equal(t, "xyx", s.String())

	_, err = s.Set(3, char.T('z'))
	require.True(t, errs.Is(err, errs.Range))

	_, err = s.Set(0, sym.New("z"))
	require.True(t, errs.Is(err, errs.Type))
}

func TestEqual(t *testing.T) {
	a := str.New("same")
	b := str.New("same")

	require.True(t, a.Equal(b))
	require.Equal(t, a.Hash(), b.Hash())
	require.False(t, a.Equal(str.New("other")))
	require.Equal(t, 4, a.Length())
}
