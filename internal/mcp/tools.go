// tools.go implements the MCP tool handlers.
//
// Misses are returned as tool errors rather than protocol errors so the model
// sees the message and can correct the reference.

package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/verse/guide"
	"github.com/jpl-au/verse/internal/journal"
	"github.com/jpl-au/verse/internal/log"
	"github.com/jpl-au/verse/internal/lookup"
	"github.com/jpl-au/verse/internal/ref"
)

// lookupVerse handles verse_lookup tool calls.
func (h *handlers) lookupVerse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	book, err := req.RequireString("book")
	if err != nil {
		return mcp.NewToolResultError("book is required"), nil //nolint:nilerr
	}
	chapter, err := req.RequireString("chapter")
	if err != nil {
		return mcp.NewToolResultError("chapter is required"), nil //nolint:nilerr
	}
	verse, err := req.RequireString("verse")
	if err != nil {
		return mcp.NewToolResultError("verse is required"), nil //nolint:nilerr
	}
	return h.resolve(ctx, lookup.NewReference(book, chapter, verse))
}

// lookupReference handles verse_reference tool calls.
func (h *handlers) lookupReference(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := req.RequireString("reference")
	if err != nil {
		return mcp.NewToolResultError("reference is required"), nil //nolint:nilerr
	}
	r, err := ref.Parse(s)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return h.resolve(ctx, r)
}

func (h *handlers) resolve(ctx context.Context, r lookup.Reference) (*mcp.CallToolResult, error) {
	h.mu.Lock()
	res, err := h.res.Resolve(ctx, r)
	h.mu.Unlock()

	action := "lookup"
	if err != nil {
		action = "miss"
	}
	log.Event("mcp:lookup", action).Session(h.session).Ref(r.Book, r.Chapter, r.Verse).Write(err)

	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if h.journal != "" {
		if err := journal.Append(h.journal, res.Formatted); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	return jsonResult(res)
}

// guide handles verse_guide tool calls.
func (h *handlers) guide(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content, err := guide.Get(getString(req, "page", ""))
	if err != nil {
		return mcp.NewToolResultError("unknown guide page"), nil //nolint:nilerr
	}
	return mcp.NewToolResultText(content), nil
}
