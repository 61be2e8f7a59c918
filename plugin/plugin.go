package plugin

import (
	"io"
	"net/http"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/generator"
	"github.com/erraggy/llmstxt/llmserrors"
	"github.com/erraggy/llmstxt/project"
	"github.com/erraggy/llmstxt/routes"
)

const (
	// Endpoint is the fixed path the documentation route is registered at.
	Endpoint = "/llms.txt"

	// TagName is the reserved tag the documentation route is categorized
	// under in the host's metadata. Matching is a case-sensitive exact
	// comparison on the name.
	TagName = "LLMs.txt"

	// ContentType is the content type of the documentation response.
	ContentType = "text/plain; charset=utf-8"

	routeSummary = "Get llms.txt contents"

	routeDescription = "Returns a plain text llms.txt file that adheres to the llms.txt specification. " +
		"This endpoint provides information about the API that is helpful for Large Language Models " +
		"to understand the purpose and capabilities of this API."

	tagDescription = "Endpoints related to the llms.txt specification, " +
		"which provides information for Large Language Models " +
		"about the purpose and capabilities of this API."
)

// Tag is a single entry of a host's tag metadata list.
type Tag struct {
	// Name identifies the tag.
	Name string

	// Description is the tag's display description.
	Description string
}

// Host is the surface Add requires from a web framework: an enumerable route
// table, the ability to register one more route, and read/append access to a
// tag metadata list.
//
// Add serializes nothing: if routes or tags can be registered concurrently,
// the host's own registration path must serialize those calls.
type Host interface {
	routes.Provider

	// Handle registers a route and the handler serving it. The host must
	// include the route, with its Name intact, in subsequent Routes calls.
	Handle(route routes.Route, handler http.Handler)

	// Tags returns the current tag metadata list.
	Tags() []Tag

	// AddTag appends a tag to the metadata list.
	AddTag(tag Tag)
}

// Add registers a GET /llms.txt endpoint on the host. The rendered document
// carries the given title and summary, any notes and link sections supplied
// via options, and, unless WithoutAPIDocs is used, a live view of the host's
// route table.
//
// Setup-time misconfiguration (nil host, duplicate section names) is
// returned as an error. Malformed individual links are skipped with a logged
// warning and never abort registration.
//
// Add is not idempotent; see the package documentation.
func Add(host Host, title, summary string, opts ...Option) error {
	if host == nil {
		return llmserrors.NewConfigError("host", "cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return err
		}
	}

	desc := &project.Description{
		Title:   title,
		Summary: summary,
		Notes:   cfg.notes,
	}
	for _, sec := range cfg.sections {
		items := make([]project.LinkItem, 0, len(sec.links))
		for _, raw := range sec.links {
			if item, ok := coerceLink(sec.name, raw, cfg.logger); ok {
				items = append(items, item)
			}
		}
		if err := desc.AddSection(sec.name, items...); err != nil {
			return err
		}
	}

	genOpts := []generator.Option{generator.WithLogger(cfg.logger)}
	if cfg.includeAPIDocs {
		genOpts = append(genOpts, generator.WithRoutes(host))
	}
	gen, err := generator.New(desc, genOpts...)
	if err != nil {
		return err
	}

	host.Handle(routes.Route{
		Path:        Endpoint,
		Methods:     []string{http.MethodGet},
		Name:        generator.DocRouteName,
		Summary:     routeSummary,
		Description: routeDescription,
		HandlerName: generator.DocRouteName,
	}, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", ContentType)
		_, _ = io.WriteString(w, gen.Generate())
	}))

	ensureTag(host)
	return nil
}

// ensureTag categorizes the documentation route under the reserved tag,
// check-then-append: an existing tag with the reserved name keeps its
// description and no duplicate entry is added.
func ensureTag(host Host) {
	for _, tag := range host.Tags() {
		if tag.Name == TagName {
			return
		}
	}
	host.AddTag(Tag{Name: TagName, Description: tagDescription})
}

// coerceLink validates one raw link entry. Returns ok=false for entries that
// should be skipped; the warning is logged here so every skip is reported
// the same way.
func coerceLink(section string, raw any, logger llmstxt.Logger) (project.LinkItem, bool) {
	var title, rawURL string

	switch v := raw.(type) {
	case project.LinkItem:
		title, rawURL = v.Title, v.URL
	case *project.LinkItem:
		if v == nil {
			logger.Warn("skipping nil link", "section", section)
			return project.LinkItem{}, false
		}
		title, rawURL = v.Title, v.URL
	case map[string]any:
		var ok bool
		if title, ok = v["title"].(string); !ok {
			logger.Warn("skipping link without title", "section", section, "link", v)
			return project.LinkItem{}, false
		}
		if rawURL, ok = v["url"].(string); !ok {
			logger.Warn("skipping link without url", "section", section, "link", v)
			return project.LinkItem{}, false
		}
	case map[string]string:
		var ok bool
		if title, ok = v["title"]; !ok {
			logger.Warn("skipping link without title", "section", section, "link", v)
			return project.LinkItem{}, false
		}
		if rawURL, ok = v["url"]; !ok {
			logger.Warn("skipping link without url", "section", section, "link", v)
			return project.LinkItem{}, false
		}
	default:
		logger.Warn("skipping link of unsupported shape", "section", section, "link", raw)
		return project.LinkItem{}, false
	}

	item, err := project.NewLinkItem(title, rawURL)
	if err != nil {
		logger.Warn("skipping invalid link", "section", section, "error", err)
		return project.LinkItem{}, false
	}
	return item, true
}
