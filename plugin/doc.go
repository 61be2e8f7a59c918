// Package plugin registers an llms.txt documentation endpoint on a web host.
//
// Import path: github.com/erraggy/llmstxt/plugin
//
// [Add] is a one-time setup call: it validates the caller's raw input into a
// project description, builds a generator bound to the host's route table,
// and registers a GET /llms.txt route that renders the document on every
// request with a text/plain content type.
//
// The package is framework-agnostic. A host only needs to implement the
// small [Host] surface: enumerate its routes, register one more, and expose
// its tag metadata list.
//
// # Input Tolerance
//
// Malformed link entries (missing title or url, an unsupported value shape,
// or an invalid URL) are skipped with a logged warning; they never abort
// registration, and well-formed siblings still render. Misconfiguration of
// the call itself (nil host, duplicate section names) is fatal and returned
// immediately.
//
// # Idempotency
//
// Add is not idempotent: calling it twice on the same host registers two
// routes. Call it once per host, during application setup. The reserved tag
// is the exception: an existing tag named [TagName] is left untouched.
package plugin
