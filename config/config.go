package config

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/llmserrors"
	"github.com/erraggy/llmstxt/project"
)

// File is the YAML form of a project description.
type File struct {
	// Title is the document title. Required.
	Title string `yaml:"title"`

	// Summary is the one-line project summary. Required.
	Summary string `yaml:"summary"`

	// Notes are optional bullet lines.
	Notes []string `yaml:"notes,omitempty"`

	// Sections are rendered in file order.
	Sections []Section `yaml:"sections,omitempty"`
}

// Section is the YAML form of a link section.
type Section struct {
	// Name is the section header text. Required, unique within the file.
	Name string `yaml:"name"`

	// Links are rendered in file order.
	Links []Link `yaml:"links,omitempty"`
}

// Link is the YAML form of a link item.
type Link struct {
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Option is a functional option for configuring loading.
type Option func(*loader) error

type loader struct {
	logger llmstxt.Logger
}

// WithLogger sets the logger used to report skipped links.
// Default is a no-op logger.
func WithLogger(logger llmstxt.Logger) Option {
	return func(l *loader) error {
		if logger == nil {
			return llmserrors.NewConfigError("logger", "logger cannot be nil")
		}
		l.logger = logger
		return nil
	}
}

// Load reads and parses a YAML project description from path.
func Load(path string, opts ...Option) (*project.Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &llmserrors.ConfigError{Field: "config", Message: fmt.Sprintf("cannot read %s", path), Cause: err}
	}
	return Parse(data, opts...)
}

// Parse parses a YAML project description.
func Parse(data []byte, opts ...Option) (*project.Description, error) {
	l := &loader{logger: llmstxt.NopLogger{}}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, &llmserrors.ConfigError{Field: "config", Message: "invalid YAML", Cause: err}
	}
	return l.build(&f)
}

// build converts the file form into a Description, applying the per-link
// tolerance rules.
func (l *loader) build(f *File) (*project.Description, error) {
	if f.Title == "" {
		return nil, llmserrors.NewConfigError("title", "required")
	}
	if f.Summary == "" {
		return nil, llmserrors.NewConfigError("summary", "required")
	}

	desc := &project.Description{
		Title:   f.Title,
		Summary: f.Summary,
		Notes:   f.Notes,
	}

	for _, sec := range f.Sections {
		if sec.Name == "" {
			return nil, llmserrors.NewConfigError("sections", "section name is required")
		}

		items := make([]project.LinkItem, 0, len(sec.Links))
		for _, link := range sec.Links {
			if link.Title == "" || link.URL == "" {
				l.logger.Warn("skipping link with missing fields", "section", sec.Name, "title", link.Title, "url", link.URL)
				continue
			}
			item, err := project.NewLinkItem(link.Title, link.URL)
			if err != nil {
				l.logger.Warn("skipping invalid link", "section", sec.Name, "error", err)
				continue
			}
			items = append(items, item)
		}

		if err := desc.AddSection(sec.Name, items...); err != nil {
			return nil, err
		}
	}

	return desc, nil
}
