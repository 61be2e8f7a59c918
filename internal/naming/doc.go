// Package naming provides shared string humanization utilities for llmstxt packages.
//
// This internal package contains the word-level transformations used when the
// generator derives a human-readable endpoint name from a handler identifier
// or a path segment.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
