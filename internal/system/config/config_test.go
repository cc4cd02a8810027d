// Released under an MIT license. See LICENSE.

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/michaelmacinnis/starlisp/internal/system/config"
)

func TestDefaults(t *testing.T) {
	c := config.Default()

	require.Equal(t, config.DefaultPrompt, c.Prompt)
	require.False(t, c.Quiet)
	require.Empty(t, c.Preload)
}

func TestParse(t *testing.T) {
	c := config.Default()
	history := c.History

	err := config.Parse([]byte("prompt: \"? \"\npreload:\n  - a.lisp\n  - b.lisp\nquiet: true\n"), c)
	require.NoError(t, err)

	require.Equal(t, "? ", c.Prompt)
	require.Equal(t, []string{"a.lisp", "b.lisp"}, c.Preload)
	require.True(t, c.Quiet)
	require.Equal(t, history, c.History)
}

func TestParseDisablesHistory(t *testing.T) {
	c := config.Default()

	require.NoError(t, config.Parse([]byte("history: \"\"\n"), c))
	require.Equal(t, "", c.History)
	require.Equal(t, config.DefaultPrompt, c.Prompt)
}

func TestParseRejectsMalformed(t *testing.T) {
	require.Error(t, config.Parse([]byte("preload: [unterminated"), config.Default()))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "starlisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"> \"\n"), 0o600))

	c, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "> ", c.Prompt)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadMissingDefault(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	c, err := config.Load("")
	require.NoError(t, err)
	require.Equal(t, config.DefaultPrompt, c.Prompt)
}
