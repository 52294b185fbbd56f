// Package mcp implements the Model Context Protocol server, exposing verse
// lookups to LLMs over stdio.
package mcp

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/jpl-au/verse/internal/lookup"
	"github.com/jpl-au/verse/internal/version"
)

// Options configures the server.
type Options struct {
	// Journal, when non-empty, receives every successful lookup.
	Journal string
	Logger  *slog.Logger
}

// Serve runs the MCP server over stdio until the client disconnects. The
// resolver is shared by all tool calls, which are serialised.
func Serve(res *lookup.Resolver, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := NewServer(res, opts)
	logger.Info("verse MCP server ready", "version", version.Short(), "transport", "stdio")

	err := server.ServeStdio(s)
	if errors.Is(err, context.Canceled) {
		logger.Info("server stopped")
		return nil
	}
	return err
}

// NewServer builds the MCP server with all tools registered.
func NewServer(res *lookup.Resolver, opts Options) *server.MCPServer {
	h := &handlers{
		res:     res,
		journal: opts.Journal,
		session: uuid.NewString(),
	}

	s := server.NewMCPServer(
		"verse",
		version.Short(),
		server.WithToolCapabilities(false),
	)
	registerTools(s, h)
	return s
}

// handlers holds the state tool calls share. The resolver owns a single
// cursor, so mu serialises every call that touches it.
type handlers struct {
	mu      sync.Mutex
	res     *lookup.Resolver
	journal string
	session string
}

func registerTools(s *server.MCPServer, h *handlers) {
	s.AddTool(
		mcp.NewTool("verse_lookup",
			mcp.WithDescription("Look up the text of a single verse by book, chapter and verse. Book abbreviations such as GEN or JN are expanded."),
			mcp.WithString("book", mcp.Required(), mcp.Description("Book name or abbreviation, e.g. Genesis, GEN, 1 John")),
			mcp.WithString("chapter", mcp.Required(), mcp.Description("Chapter or psalm number as written in the corpus, e.g. 3")),
			mcp.WithString("verse", mcp.Required(), mcp.Description("Verse number, e.g. 16")),
		),
		h.lookupVerse,
	)

	s.AddTool(
		mcp.NewTool("verse_reference",
			mcp.WithDescription("Look up a verse from a one-line reference such as \"John 3:16\" or \"1 Cor 13.4\"."),
			mcp.WithString("reference", mcp.Required(), mcp.Description("Reference in the form <book> <chapter>:<verse>")),
		),
		h.lookupReference,
	)

	s.AddTool(
		mcp.NewTool("verse_guide",
			mcp.WithDescription("Show the verse usage guide: corpus layout, abbreviations and reference syntax."),
			mcp.WithString("page", mcp.Description("Guide page name (default: guide)")),
		),
		h.guide,
	)
}
