package mcpserver

import (
	"fmt"

	"github.com/erraggy/llmstxt/config"
	"github.com/erraggy/llmstxt/project"
)

// descInput represents the two ways a project description can be provided to
// a tool. Exactly one of File or Content must be set.
type descInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a YAML project description on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline YAML project description"`
}

// resolve loads the description from whichever source is set.
func (in descInput) resolve(opts ...config.Option) (*project.Description, error) {
	switch {
	case in.File != "" && in.Content != "":
		return nil, fmt.Errorf("provide either file or content, not both")
	case in.File != "":
		return config.Load(in.File, opts...)
	case in.Content != "":
		return config.Parse([]byte(in.Content), opts...)
	default:
		return nil, fmt.Errorf("one of file or content is required")
	}
}
