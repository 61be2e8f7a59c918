// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes llmstxt capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/llmstxt"
)

const serverInstructions = `llmstxt MCP server — renders llms.txt documents from YAML project descriptions.

A project description file carries a title, summary, optional notes, and named
sections of links:

  title: Bookstore API
  summary: A sample API for managing a bookstore
  sections:
    - name: Documentation
      links:
        - title: API Docs
          url: https://example.com/docs

Provide the description as a file path or as inline YAML content. Malformed
link entries are skipped, not fatal; missing title or summary is an error.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "llmstxt", Version: llmstxt.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "render",
		Description: "Render an llms.txt document from a YAML project description. Provide the description via file (path on disk) or content (inline YAML), not both. Returns the rendered plain-text document.",
	}, handleRender)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "check",
		Description: "Check a YAML project description without rendering it. Reports the parsed title, the section count, and how many link entries were skipped as malformed.",
	}, handleCheck)
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
	}
}
