package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"colon", []string{"find", "john", "11:35"}, "JOHN 11:35 Jesus wept."},
		{"dot", []string{"find", "gen 1.3"}, "GENESIS 1:3 And God said"},
		{"spaced", []string{"find", "ps", "23", "1"}, "PSALMS 23:1 The LORD is my shepherd"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv(t)
			out := env.run(tc.args...)
			env.contains(out, tc.want)
			env.contains(env.journal(), tc.want)
		})
	}
}

func TestFind_JSON(t *testing.T) {
	env := newTestEnv(t)

	out := env.run("find", "jn 11:35", "-o", "json", "--no-journal")

	var got struct {
		Reference struct {
			Book    string `json:"book"`
			Chapter string `json:"chapter"`
			Verse   string `json:"verse"`
		}
		Text      string
		Formatted string
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "JOHN", got.Reference.Book)
	assert.Equal(t, "11", got.Reference.Chapter)
	assert.Equal(t, "35", got.Reference.Verse)
	assert.Equal(t, "Jesus wept.", got.Text)
	assert.Empty(t, env.journal())
}

func TestFind_Errors(t *testing.T) {
	t.Run("verse not found", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("find", "gen", "1:99")
		assert.Error(t, err)
		env.contains(out, "verse not found")
	})

	t.Run("unparseable reference", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("find", "genesis")
		assert.Error(t, err)
	})

	t.Run("json error", func(t *testing.T) {
		env := newTestEnv(t)
		out, err := env.runErr("find", "gen", "9:1", "-o", "json")
		assert.NoError(t, err)
		env.contains(out, `"error"`)
	})

	t.Run("invalid output format", func(t *testing.T) {
		env := newTestEnv(t)
		_, err := env.runErr("find", "gen", "1:1", "-o", "xml")
		assert.Error(t, err)
	})
}
