package routes

// Route describes one entry of a host's route table. Every field other than
// Path may be zero-valued; the generator treats absence as "no metadata",
// not as an error. Routes with an empty Path are skipped entirely.
type Route struct {
	// Path is the path template, e.g. "/books/{book_id}".
	Path string

	// Methods is the set of HTTP methods, in the order the host registered
	// them. An empty set renders as the default method GET.
	Methods []string

	// Name is the host's internal identifier for the route. The generator
	// uses it only to exclude the documentation endpoint itself.
	Name string

	// Summary is the declared one-line summary, if any.
	Summary string

	// Description is the declared long-form description, if any.
	Description string

	// HandlerName is the identifier of the underlying handler, if known.
	// Used to derive an endpoint name when no summary is declared.
	HandlerName string

	// Doc is the handler's doc comment, if known. Carried for future use;
	// rendering does not read it.
	Doc string

	// Params are the parameter descriptors declared by the host's
	// request-binding layer, in declaration order. Path-template parameters
	// the host did not declare are synthesized during merge.
	Params []Parameter
}

// Parameter describes a single route parameter after (or before) merging.
type Parameter struct {
	// Name is the parameter name.
	Name string

	// Required reports whether the parameter must be supplied. Path-template
	// parameters are always required.
	Required bool

	// Type is the type label. May carry a language-level representation such
	// as "<class 'int'>"; MergeParams normalizes it to the bare type name.
	Type string

	// Description is the declared description, if any.
	Description string
}

// Provider enumerates the registered routes of a host. The returned slice is
// a momentary snapshot in the host's native order; the generator re-reads it
// on every render and never caches it.
type Provider interface {
	Routes() []Route
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func() []Route

// Routes implements Provider.
func (f ProviderFunc) Routes() []Route { return f() }
