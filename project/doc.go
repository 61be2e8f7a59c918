// Package project defines the passive description of a project rendered into
// an llms.txt document: title, summary, optional notes, and named sections of
// link items.
//
// Import path: github.com/erraggy/llmstxt/project
//
// A [Description] is built once at setup time and treated as immutable
// thereafter; the generator only reads it. Section order is insertion order
// and determines output order. Link items validate their URL at construction
// via [NewLinkItem]; an invalid URL is rejected with a
// [github.com/erraggy/llmstxt/llmserrors.LinkError].
package project
