// Package commands provides CLI command handlers for llmstxt.
package commands

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/config"
	"github.com/erraggy/llmstxt/generator"
	"github.com/erraggy/llmstxt/internal/cliutil"
)

// RenderFlags contains flags for the render command
type RenderFlags struct {
	Config string
	Output string
	Quiet  bool
}

// SetupRenderFlags creates and configures a FlagSet for the render command.
// Returns the FlagSet and a RenderFlags struct with bound flag variables.
func SetupRenderFlags() (*flag.FlagSet, *RenderFlags) {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	flags := &RenderFlags{}

	fs.StringVar(&flags.Config, "c", "llms.yaml", "path to the YAML project description")
	fs.StringVar(&flags.Config, "config", "llms.yaml", "path to the YAML project description")
	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress skipped-link warnings")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress skipped-link warnings")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: llmstxt render [flags]\n\n")
		cliutil.Writef(fs.Output(), "Render an llms.txt document from a YAML project description.\n\n")
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  llmstxt render -config llms.yaml\n")
		cliutil.Writef(fs.Output(), "  llmstxt render -config llms.yaml -o llms.txt\n")
		cliutil.Writef(fs.Output(), "\nNotes:\n")
		cliutil.Writef(fs.Output(), "  - Malformed link entries are skipped with a warning, not fatal\n")
		cliutil.Writef(fs.Output(), "  - A missing title or summary fails the render\n")
	}

	return fs, flags
}

// HandleRender executes the render command
func HandleRender(args []string) error {
	fs, flags := SetupRenderFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	doc, err := renderDocument(flags.Config, flags.Quiet)
	if err != nil {
		return err
	}
	return cliutil.WriteDocument(flags.Output, doc)
}

// renderDocument loads a project description and renders it. Shared by the
// render and serve commands.
func renderDocument(configPath string, quiet bool) (string, error) {
	logger := llmstxt.Logger(llmstxt.NopLogger{})
	if !quiet {
		logger = llmstxt.NewSlogAdapter(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	desc, err := config.Load(configPath, config.WithLogger(logger))
	if err != nil {
		return "", err
	}

	gen, err := generator.New(desc, generator.WithLogger(logger))
	if err != nil {
		return "", err
	}
	return gen.Generate(), nil
}
