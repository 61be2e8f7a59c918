// Package llmstxt generates llms.txt documents for Go web applications.
//
// llms.txt is a community convention for a plain-text file served at a
// well-known path (/llms.txt) that summarizes a site or API's purpose,
// endpoints, and links for consumption by language models and human readers.
//
// # Overview
//
// The library consists of four primary packages:
//
//   - project: the passive description of a project (title, summary, notes,
//     and named sections of links)
//   - routes: the route-table model the generator introspects, including
//     path-template parameter extraction and parameter merging
//   - generator: renders a project description plus a live route table into
//     the final llms.txt document
//   - plugin: registers a GET /llms.txt endpoint on a web host in one call
//
// # Quick Start
//
// Register the endpoint on a host that implements plugin.Host:
//
//	import "github.com/erraggy/llmstxt/plugin"
//
//	err := plugin.Add(app, "Bookstore API", "A sample API for managing a bookstore",
//		plugin.WithNotes("All endpoints return JSON unless noted otherwise"),
//		plugin.WithSection("Documentation",
//			map[string]any{"title": "API Docs", "url": "https://example.com/docs"},
//		),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Render a document directly, without a host:
//
//	import (
//		"github.com/erraggy/llmstxt/generator"
//		"github.com/erraggy/llmstxt/project"
//	)
//
//	desc := &project.Description{Title: "My API", Summary: "Does things."}
//	gen, err := generator.New(desc)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(gen.Generate())
//
// # Route Introspection
//
// When a generator is bound to a routes.Provider, every call to Generate
// re-reads the provider's route table, so routes registered after setup are
// reflected immediately. Absent route metadata (no summary, no declared
// parameters) is treated as "feature absent", never as an error: the
// generator derives an endpoint name from the handler identifier or the path,
// and synthesizes parameter entries from {param} path segments.
//
// # Command-Line Interface
//
// The llmstxt CLI renders documents from a YAML project description:
//
//	# Render to stdout
//	llmstxt render -config llms.yaml
//
//	# Serve the rendered document at /llms.txt
//	llmstxt serve -config llms.yaml -addr :8080
//
//	# Run the MCP server over stdio
//	llmstxt mcp
//
// Install the CLI:
//
//	go install github.com/erraggy/llmstxt/cmd/llmstxt@latest
//
// # Additional Resources
//
//   - llms.txt convention: https://llmstxt.org
//   - Go Package Documentation: https://pkg.go.dev/github.com/erraggy/llmstxt
package llmstxt
