// Released under an MIT license. See LICENSE.

package sym_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/common/struct/table"
	"github.com/michaelmacinnis/starlisp/internal/common/type/sym"
)

func TestLiteral(t *testing.T) {
	tab := table.New()

	tests := map[string]string{
		"foo":       "foo",
		"list->vec": "list->vec",
		"+":         "+",
		"nil":       "|nil|",
		"12":        "|12|",
		"1.5":       "|1.5|",
		"a b":       "|a b|",
		"(":         "|(|",
		"#x":        "|#x|",
		"'q":        "|'q|",
		"":          "||",
		".":         "|.|",
		"a;b":       "|a;b|",
		"a'b":       "|a'b|",
		`a"b`:       `|a"b|`,
		"a(b":       "|a(b|",
		"a|b":       "a|b",
	}

	for name, expected := range tests {
		require.Equal(t, expected, tab.Intern(name).Literal(), name)
	}

	require.Equal(t, "#:foo", sym.New("foo").Literal())
}

func TestValueCell(t *testing.T) {
	s := sym.New("x")

	require.False(t, s.Bound())
	require.Nil(t, s.Value())

	s.Set(s)
	require.True(t, s.Bound())
	require.Same(t, s, s.Value())
	require.True(t, s.Equal(s))
	require.False(t, s.Equal(sym.New("x")))
}
