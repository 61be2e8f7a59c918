package generator

import (
	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/llmserrors"
	"github.com/erraggy/llmstxt/routes"
)

// Option is a functional option for configuring a Generator.
type Option func(*config) error

// config holds the configuration for a Generator.
type config struct {
	provider routes.Provider
	logger   llmstxt.Logger
}

// defaultConfig returns the default configuration: no route introspection,
// no-op logging.
func defaultConfig() *config {
	return &config{
		logger: llmstxt.NopLogger{},
	}
}

// WithRoutes binds the generator to a live route table. Every Generate call
// re-reads the provider, so routes registered after setup are reflected
// immediately. Without this option the API Endpoints block is never rendered.
func WithRoutes(p routes.Provider) Option {
	return func(c *config) error {
		if p == nil {
			return llmserrors.NewConfigError("routes", "provider cannot be nil")
		}
		c.provider = p
		return nil
	}
}

// WithLogger sets the logger used for render diagnostics.
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
