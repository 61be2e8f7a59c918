package generator

import (
	"fmt"
	"strings"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/internal/naming"
	"github.com/erraggy/llmstxt/llmserrors"
	"github.com/erraggy/llmstxt/project"
	"github.com/erraggy/llmstxt/routes"
)

const (
	// DocRouteName is the reserved internal name of the route that serves
	// the llms.txt document. Routes carrying this name are never rendered.
	DocRouteName = "serve_llms_txt"

	// DefaultMethod is rendered for routes that declare no HTTP methods.
	DefaultMethod = "GET"
)

// Generator renders llms.txt documents. Construct with New; the bound
// description and provider are immutable afterwards, so a Generator is safe
// for concurrent Generate calls as long as the host's own route registration
// is serialized.
type Generator struct {
	desc     *project.Description
	provider routes.Provider
	logger   llmstxt.Logger
}

// New creates a Generator bound to the given project description.
// The description must not be nil and must not be mutated after the call.
func New(desc *project.Description, opts ...Option) (*Generator, error) {
	if desc == nil {
		return nil, llmserrors.NewConfigError("description", "cannot be nil")
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return &Generator{
		desc:     desc,
		provider: cfg.provider,
		logger:   cfg.logger,
	}, nil
}

// Generate renders the llms.txt document. It is deterministic for a fixed
// route table and description, and has no side effects beyond reading the
// bound provider's current routes.
func (g *Generator) Generate() string {
	lines := []string{
		"# " + g.desc.Title,
		"",
		g.desc.Summary,
		"",
	}

	if len(g.desc.Notes) > 0 {
		for _, note := range g.desc.Notes {
			lines = append(lines, "- "+note)
		}
		lines = append(lines, "")
	}

	if g.provider != nil {
		lines = append(lines, g.endpointLines()...)
	}

	for _, sec := range g.desc.Sections {
		lines = append(lines, "## "+sec.Name, "")
		for _, link := range sec.Links {
			lines = append(lines, fmt.Sprintf("- [%s](%s)", link.Title, link.URL))
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// endpointLines renders the API Endpoints block. Returns nil when no route
// contributes content, so callers never emit a dangling header.
func (g *Generator) endpointLines() []string {
	all := g.provider.Routes()
	g.logger.Debug("rendering API endpoints", "routes", len(all))

	lines := []string{"## API Endpoints", ""}
	rendered := 0

	for _, rt := range all {
		// The documentation endpoint never documents itself, and a route
		// without a path has nothing to document.
		if rt.Name == DocRouteName || rt.Path == "" {
			continue
		}
		rendered++

		methods := DefaultMethod
		if len(rt.Methods) > 0 {
			methods = strings.Join(rt.Methods, ", ")
		}
		lines = append(lines, "### "+methods+" "+rt.Path, "")

		if summary := g.effectiveSummary(rt); summary != "" {
			lines = append(lines, summary, "")
		}

		if rt.Description != "" {
			lines = append(lines, rt.Description, "")
		}

		if params := routes.MergeParams(rt.Path, rt.Params); len(params) > 0 {
			lines = append(lines, "**Parameters:**", "")
			for _, p := range params {
				requirement := "optional"
				if p.Required {
					requirement = "required"
				}
				lines = append(lines, fmt.Sprintf("- `%s` (%s, %s): %s", p.Name, p.Type, requirement, p.Description))
			}
			lines = append(lines, "")
		}
	}

	if rendered == 0 {
		return nil
	}
	return lines
}

// effectiveSummary returns the route's declared summary, or a name derived
// from its handler identifier or path when no summary is set.
func (g *Generator) effectiveSummary(rt routes.Route) string {
	if rt.Summary != "" {
		return rt.Summary
	}
	return deriveEndpointName(rt)
}

// deriveEndpointName synthesizes a human-readable endpoint name:
// the humanized handler identifier when one is available, otherwise the
// humanized last non-parameter path segment, otherwise the empty string.
// The documentation endpoint itself never gets a synthesized name.
func deriveEndpointName(rt routes.Route) string {
	if rt.Name == DocRouteName || rt.HandlerName == DocRouteName {
		return ""
	}

	if rt.HandlerName != "" {
		return naming.Humanize(rt.HandlerName)
	}

	var last string
	for _, seg := range strings.Split(rt.Path, "/") {
		if seg == "" || strings.HasPrefix(seg, "{") {
			continue
		}
		last = seg
	}
	if last != "" {
		return naming.Humanize(last)
	}
	return ""
}
