// Package generator renders a project description and an optional live route
// table into an llms.txt document.
//
// Import path: github.com/erraggy/llmstxt/generator
//
// A [Generator] is bound at construction to a
// [github.com/erraggy/llmstxt/project.Description] and, optionally, to a
// [github.com/erraggy/llmstxt/routes.Provider]. [Generator.Generate] is a
// pure function of those two inputs: it reads the provider's current routes
// on every call (never caching them), mutates nothing, and produces
// byte-identical output for an unchanged route table.
//
// # Output Structure
//
// The document is layered markdown-like text, in this order:
//
//	# <title>
//
//	<summary>
//
//	- <note>            (optional, one per note)
//
//	## API Endpoints    (only when a provider is bound and contributes routes)
//
//	### GET /books/{book_id}
//	...
//
//	## <section name>   (one per section, in insertion order)
//
//	- [<link title>](<link url>)
//
// The API Endpoints block excludes the documentation route itself (reserved
// name [DocRouteName]) and any route with an empty path, and is omitted
// entirely when no route contributes content.
package generator
