// Released under an MIT license. See LICENSE.

package history_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/system/history"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	err := history.Save(path, func(w io.Writer) (int, error) {
		return io.WriteString(w, "(+ 1 2)\n")
	})
	require.NoError(t, err)

	var b strings.Builder

	err = history.Load(path, func(r io.Reader) (int, error) {
		n, err := io.Copy(&b, r)

		return int(n), err
	})
	require.NoError(t, err)
	require.Equal(t, "(+ 1 2)\n", b.String())
}

func TestDisabledOrMissing(t *testing.T) {
	called := false
	read := func(r io.Reader) (int, error) {
		called = true

		return 0, nil
	}

	require.NoError(t, history.Load("", read))
	require.NoError(t, history.Load(filepath.Join(t.TempDir(), "missing"), read))
	require.False(t, called)

	require.NoError(t, history.Save("", func(w io.Writer) (int, error) {
		called = true

		return 0, nil
	}))
	require.False(t, called)
}
