// Package routes models the route table the llms.txt generator introspects.
//
// Import path: github.com/erraggy/llmstxt/routes
//
// The generator never depends on a concrete web framework. It reads routes
// through the [Provider] interface, and every piece of per-route metadata is
// an explicit optional field on [Route] with a zero-value default: a missing
// summary, handler name, or parameter list is "feature absent", never an
// error.
//
// The package also implements the parameter core: [TemplateParams] extracts
// the {param} placeholders from a path template, and [MergeParams] reconciles
// them with the richer parameter descriptors a framework's request-binding
// layer declares. When both sources describe the same name, the framework
// descriptor wins for every field except the name; a path parameter with no
// declared description falls back to "Path parameter: <name>".
package routes
