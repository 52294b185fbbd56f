package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	c := &Config{}
	assert.Equal(t, DefaultBible, c.Bible())
	assert.Equal(t, DefaultAbbreviations, c.Abbreviations())
	assert.Equal(t, DefaultJournal, c.Journal())
	assert.Equal(t, 80, c.Width())
	assert.False(t, c.IsSet("display.width"))
}

func TestSetGet(t *testing.T) {
	c := &Config{}

	require.NoError(t, c.Set("files.bible", "/data/kjv.txt"))
	require.NoError(t, c.Set("display.width", "72"))

	v, err := c.Get("files.bible")
	require.NoError(t, err)
	assert.Equal(t, "/data/kjv.txt", v)
	assert.Equal(t, 72, c.Width())
	assert.True(t, c.IsSet("display.width"))
	assert.Equal(t, "72", c.All()["display.width"])

	t.Run("invalid width", func(t *testing.T) {
		for _, v := range []string{"abc", "5", "100000"} {
			assert.ErrorIs(t, c.Set("display.width", v), ErrInvalidValue)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		assert.ErrorIs(t, c.Set("author.name", "x"), ErrUnknownKey)
		_, err := c.Get("author.name")
		assert.ErrorIs(t, err, ErrUnknownKey)
		assert.False(t, IsValidKey("author.name"))
	})
}

func TestSaveLoad(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	c, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "config.yaml"), c.Path())

	require.NoError(t, c.Set("files.journal", "out.txt"))
	require.NoError(t, c.Set("display.width", "60"))
	require.NoError(t, c.Save())

	loaded, err := LoadScope(ScopeGlobal)
	require.NoError(t, err)
	assert.Equal(t, "out.txt", loaded.Journal())
	assert.Equal(t, 60, loaded.Width())
	assert.Equal(t, ScopeGlobal, loaded.Scope())
}

func TestLoad_Invalid(t *testing.T) {
	home := t.TempDir()
	t.Setenv(HomeEnv, home)

	t.Run("malformed yaml", func(t *testing.T) {
		require.NoError(t, os.WriteFile(GlobalPath(), []byte("files: [\n"), 0644))
		_, err := LoadScope(ScopeGlobal)
		assert.ErrorContains(t, err, "malformed config file")
	})

	t.Run("width out of range", func(t *testing.T) {
		require.NoError(t, os.WriteFile(GlobalPath(), []byte("display:\n  width: 3\n"), 0644))
		_, err := LoadScope(ScopeGlobal)
		assert.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestHome(t *testing.T) {
	t.Setenv(HomeEnv, "/tmp/verse-home")
	assert.Equal(t, "/tmp/verse-home", Home())
	assert.Equal(t, filepath.Join("/tmp/verse-home", "config.yaml"), GlobalPath())
}
