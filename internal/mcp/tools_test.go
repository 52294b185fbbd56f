package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/verse/internal/abbrev"
	"github.com/jpl-au/verse/internal/cursor"
	"github.com/jpl-au/verse/internal/lookup"
)

const corpus = `THE BOOK OF GENESIS
CHAPTER 1
1 In the beginning God created the heaven and the earth.
THE BOOK OF JOHN
CHAPTER 11
35 Jesus wept.
`

func newHandlers(t *testing.T, journalPath string) *handlers {
	t.Helper()
	tbl, err := abbrev.Parse(strings.NewReader("JN,JOHN\n"))
	require.NoError(t, err)
	res := lookup.NewResolver(cursor.New(strings.NewReader(corpus)), tbl)
	return &handlers{res: res, journal: journalPath, session: "test"}
}

func request(args map[string]any) mcp.CallToolRequest {
	var req mcp.CallToolRequest
	req.Params.Arguments = args
	return req
}

func text(t *testing.T, r *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content)
	tc, ok := r.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestLookupVerse(t *testing.T) {
	journal := filepath.Join(t.TempDir(), "verses.txt")
	h := newHandlers(t, journal)

	r, err := h.lookupVerse(context.Background(), request(map[string]any{
		"book": "jn", "chapter": "11", "verse": "35",
	}))
	require.NoError(t, err)
	require.False(t, r.IsError)

	var got lookup.Result
	require.NoError(t, json.Unmarshal([]byte(text(t, r)), &got))
	assert.Equal(t, "Jesus wept.", got.Text)
	assert.Equal(t, "JOHN 11:35 Jesus wept.", got.Formatted)

	data, err := os.ReadFile(journal)
	require.NoError(t, err)
	assert.Equal(t, "JOHN 11:35 Jesus wept.\n", string(data))
}

func TestLookupVerse_Errors(t *testing.T) {
	h := newHandlers(t, "")

	t.Run("missing argument", func(t *testing.T) {
		r, err := h.lookupVerse(context.Background(), request(map[string]any{"book": "john"}))
		require.NoError(t, err)
		assert.True(t, r.IsError)
		assert.Contains(t, text(t, r), "chapter is required")
	})

	t.Run("miss", func(t *testing.T) {
		r, err := h.lookupVerse(context.Background(), request(map[string]any{
			"book": "genesis", "chapter": "2", "verse": "1",
		}))
		require.NoError(t, err)
		assert.True(t, r.IsError)
		assert.Contains(t, text(t, r), "chapter not found")
	})
}

func TestLookupReference(t *testing.T) {
	h := newHandlers(t, "")

	r, err := h.lookupReference(context.Background(), request(map[string]any{"reference": "Genesis 1:1"}))
	require.NoError(t, err)
	require.False(t, r.IsError)
	assert.Contains(t, text(t, r), "In the beginning")

	r, err = h.lookupReference(context.Background(), request(map[string]any{"reference": "genesis"}))
	require.NoError(t, err)
	assert.True(t, r.IsError)
}

func TestGuide(t *testing.T) {
	h := newHandlers(t, "")
	r, err := h.guide(context.Background(), request(map[string]any{"page": "corpus"}))
	require.NoError(t, err)
	assert.Contains(t, text(t, r), "THE BOOK OF")

	r, err = h.guide(context.Background(), request(map[string]any{"page": "nope"}))
	require.NoError(t, err)
	assert.True(t, r.IsError)
}

func TestNewServer(t *testing.T) {
	h := newHandlers(t, "")
	s := NewServer(h.res, Options{})
	assert.NotNil(t, s)
}
