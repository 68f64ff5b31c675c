// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes docdiff capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/docdiff"
)

const serverInstructions = `docdiff MCP server: compares two versions of a ProseMirror/TipTap document and returns one merged document with inserted and deleted content marked.

Configuration: All defaults are configurable via DOCDIFF_* environment variables set in your MCP client config.

Key settings:
- DOCDIFF_CACHE_ENABLED (default: true): disable document caching entirely
- DOCDIFF_CACHE_FILE_TTL (default: 15m): cache TTL for documents read from files
- DOCDIFF_CACHE_TTL (default: 15m): cache TTL for inline documents
- DOCDIFF_CACHE_MAX_SIZE (default: 10): maximum number of cached documents
- DOCDIFF_MAX_INLINE_SIZE (default: 10MiB): maximum inline content size
- DOCDIFF_SEMANTIC_CLEANUP (default: true): merge character edits into word-sized edits
- DOCDIFF_TEXT_DIFF_TIMEOUT (default: none): time limit per text run diff
- DOCDIFF_STRICT_SCHEMA (default: false): reject unknown node and mark types
- DOCDIFF_CHANGE_LIMIT (default: 100): default number of changes returned by diff

Caching: Parsed documents are cached per session. File entries use path+mtime as key (auto-invalidated on change); inline content is keyed by its SHA-256. A background sweeper removes expired entries.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		docCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "docdiff", Version: docdiff.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "diff",
		Description: "Compare two versions of a ProseMirror/TipTap document (JSON or YAML) and return a merged document in which deleted content carries a diffMark of type deleted and inserted content a diffMark of type inserted. Returns leaf counts, the list of changed leaves with JSON paths, and a plain-text rendering using [-deleted-] and {+inserted+} markers. Use include_document=true to get the merged document itself. Use offset/limit to page through long change lists.",
	}, handleDiff)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render a merged document (as returned by diff with include_document=true) as plain text or HTML. Use view=old or view=new to reconstruct one side of the comparison; view=merged shows both with changes highlighted (<ins>/<del> in HTML).",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "inspect",
		Description: "Summarize a document: node and text leaf counts, depth, character count, node and mark type histograms, and the number of inserted and deleted leaves if it is a merged document.",
	}, handleInspect)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.ChangeLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.ChangeLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
