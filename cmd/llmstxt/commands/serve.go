package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/internal/cliutil"
	"github.com/erraggy/llmstxt/plugin"
)

// ServeFlags contains flags for the serve command
type ServeFlags struct {
	Config string
	Addr   string
}

// SetupServeFlags creates and configures a FlagSet for the serve command.
// Returns the FlagSet and a ServeFlags struct with bound flag variables.
func SetupServeFlags() (*flag.FlagSet, *ServeFlags) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	flags := &ServeFlags{}

	fs.StringVar(&flags.Config, "c", "llms.yaml", "path to the YAML project description")
	fs.StringVar(&flags.Config, "config", "llms.yaml", "path to the YAML project description")
	fs.StringVar(&flags.Addr, "addr", ":8080", "address to listen on")

	fs.Usage = func() {
		cliutil.Writef(fs.Output(), "Usage: llmstxt serve [flags]\n\n")
		cliutil.Writef(fs.Output(), "Serve the rendered llms.txt document at %s over HTTP.\n\n", plugin.Endpoint)
		cliutil.Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		cliutil.Writef(fs.Output(), "\nExamples:\n")
		cliutil.Writef(fs.Output(), "  llmstxt serve -config llms.yaml\n")
		cliutil.Writef(fs.Output(), "  llmstxt serve -config llms.yaml -addr :3000\n")
	}

	return fs, flags
}

// HandleServe executes the serve command
func HandleServe(args []string) error {
	fs, flags := SetupServeFlags()

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	// The document is static here: there is no live route table, so render
	// once at startup rather than per request.
	doc, err := renderDocument(flags.Config, false)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              flags.Addr,
		Handler:           serveMux(doc),
		ReadHeaderTimeout: 10 * time.Second,
	}
	fmt.Printf("Serving %s on %s\n", plugin.Endpoint, flags.Addr)
	return server.ListenAndServe()
}

// serveMux builds the handler serving a pre-rendered document at the
// documentation endpoint.
func serveMux(doc string) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+plugin.Endpoint, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", plugin.ContentType)
		w.Header().Set("Server", llmstxt.UserAgent())
		_, _ = io.WriteString(w, doc)
	})
	return mux
}
