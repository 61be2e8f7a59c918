package plugin

import (
	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/llmserrors"
)

// Option is a functional option for configuring Add.
type Option func(*config) error

// config holds the configuration for a single Add call.
type config struct {
	notes          []string
	sections       []rawSection
	includeAPIDocs bool
	logger         llmstxt.Logger
}

// rawSection carries a section's raw link input until Add validates it.
type rawSection struct {
	name  string
	links []any
}

// defaultConfig returns the default configuration: API docs included,
// no-op logging.
func defaultConfig() *config {
	return &config{
		includeAPIDocs: true,
		logger:         llmstxt.NopLogger{},
	}
}

// WithNotes appends notes, rendered as bullet lines after the summary in the
// order given. May be used multiple times.
func WithNotes(notes ...string) Option {
	return func(c *config) error {
		c.notes = append(c.notes, notes...)
		return nil
	}
}

// WithSection adds a named section of links. Sections render in the order
// the options are given; section names must be unique.
//
// Each raw link may be a [github.com/erraggy/llmstxt/project.LinkItem], a
// map[string]any, or a map[string]string; maps must carry "title" and "url"
// keys. Entries of any other shape, with missing keys, or with an invalid
// URL are skipped with a logged warning.
func WithSection(name string, links ...any) Option {
	return func(c *config) error {
		c.sections = append(c.sections, rawSection{name: name, links: links})
		return nil
	}
}

// WithoutAPIDocs disables route introspection: the generator is never bound
// to the host's route table and the document carries no API Endpoints block.
func WithoutAPIDocs() Option {
	return func(c *config) error {
		c.includeAPIDocs = false
		return nil
	}
}

// WithLogger sets the logger used for setup and render diagnostics.
// Default is a no-op logger.
func WithLogger(logger llmstxt.Logger) Option {
	return func(c *config) error {
		if logger == nil {
			return llmserrors.NewConfigError("logger", "logger cannot be nil")
		}
		c.logger = logger
		return nil
	}
}
