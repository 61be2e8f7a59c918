package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/config"
	"github.com/erraggy/llmstxt/generator"
)

type renderInput struct {
	Desc descInput `json:"desc" jsonschema:"The project description to render"`
}

type renderOutput struct {
	Document string `json:"document"`
}

func handleRender(_ context.Context, _ *mcp.CallToolRequest, input renderInput) (*mcp.CallToolResult, renderOutput, error) {
	desc, err := input.Desc.resolve()
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	gen, err := generator.New(desc)
	if err != nil {
		return errResult(err), renderOutput{}, nil
	}

	return nil, renderOutput{Document: gen.Generate()}, nil
}

type checkInput struct {
	Desc descInput `json:"desc" jsonschema:"The project description to check"`
}

type checkOutput struct {
	Title        string `json:"title"`
	SectionCount int    `json:"section_count"`
	LinkCount    int    `json:"link_count"`
	SkippedLinks int    `json:"skipped_links"`
}

// skipCounter counts the warnings the config loader emits for skipped links.
type skipCounter struct {
	llmstxt.NopLogger
	count int
}

func (l *skipCounter) Warn(_ string, _ ...any) { l.count++ }

func (l *skipCounter) With(_ ...any) llmstxt.Logger { return l }

func handleCheck(_ context.Context, _ *mcp.CallToolRequest, input checkInput) (*mcp.CallToolResult, checkOutput, error) {
	counter := &skipCounter{}
	desc, err := input.Desc.resolve(config.WithLogger(counter))
	if err != nil {
		return errResult(err), checkOutput{}, nil
	}

	output := checkOutput{
		Title:        desc.Title,
		SectionCount: len(desc.Sections),
		SkippedLinks: counter.count,
	}
	for _, sec := range desc.Sections {
		output.LinkCount += len(sec.Links)
	}
	return nil, output, nil
}
