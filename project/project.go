package project

import (
	"fmt"
	"net/url"

	"github.com/erraggy/llmstxt/llmserrors"
)

// LinkItem is a single link in a section. Construct with NewLinkItem to get
// URL validation; a LinkItem is immutable once constructed.
type LinkItem struct {
	// Title is the display text of the link.
	Title string

	// URL is the link target. Always a valid absolute http(s) URL when the
	// item was built via NewLinkItem.
	URL string
}

// NewLinkItem creates a LinkItem, validating the URL. The URL must parse,
// use the http or https scheme, and have a non-empty host.
func NewLinkItem(title, rawURL string) (LinkItem, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return LinkItem{}, &llmserrors.LinkError{Title: title, URL: rawURL, Message: "URL does not parse", Cause: err}
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return LinkItem{}, &llmserrors.LinkError{Title: title, URL: rawURL, Message: fmt.Sprintf("unsupported URL scheme %q", u.Scheme)}
	}
	if u.Host == "" {
		return LinkItem{}, &llmserrors.LinkError{Title: title, URL: rawURL, Message: "URL has no host"}
	}
	return LinkItem{Title: title, URL: rawURL}, nil
}

// Section is a named, ordered group of links.
type Section struct {
	// Name is the section header text. Unique within a Description.
	Name string

	// Links are rendered in order.
	Links []LinkItem
}

// Description is the project description rendered into an llms.txt document.
// It carries no behavior beyond section bookkeeping: the generator reads it,
// never mutates it. Build it once at setup time and do not modify it while a
// generator is bound to it.
type Description struct {
	// Title is the document title, rendered as the leading "# <title>" line.
	Title string

	// Summary is the one-line prose summary rendered after the title.
	Summary string

	// Notes are optional bullet lines rendered after the summary, in order.
	Notes []string

	// Sections are rendered last, in insertion order. Section names must be
	// unique; use AddSection to have uniqueness enforced.
	Sections []Section
}

// AddSection appends a section, enforcing the unique-name invariant.
// Returns a ConfigError wrapping ErrDuplicateSection if a section with the
// same name (case-sensitive) already exists.
func (d *Description) AddSection(name string, links ...LinkItem) error {
	if d.Section(name) != nil {
		return &llmserrors.ConfigError{
			Field:   "sections",
			Message: fmt.Sprintf("section %q already exists", name),
			Cause:   llmserrors.ErrDuplicateSection,
		}
	}
	d.Sections = append(d.Sections, Section{Name: name, Links: links})
	return nil
}

// Section returns the named section, or nil if absent. Name matching is
// case-sensitive.
func (d *Description) Section(name string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Name == name {
			return &d.Sections[i]
		}
	}
	return nil
}
