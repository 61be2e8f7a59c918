package main

import (
	"fmt"
	"os"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/cmd/llmstxt/commands"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("llmstxt v%s\n", llmstxt.Version())
	case "help", "-h", "--help":
		printUsage()
	case "render":
		if err := commands.HandleRender(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "serve":
		if err := commands.HandleServe(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := commands.HandleMCP(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("llmstxt - render llms.txt documents from project descriptions")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  llmstxt <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  render    Render an llms.txt document from a YAML project description")
	fmt.Println("  serve     Serve the rendered document at /llms.txt over HTTP")
	fmt.Println("  mcp       Run the MCP server over stdio")
	fmt.Println("  version   Print the version")
	fmt.Println("  help      Print this help")
	fmt.Println()
	fmt.Println("Run 'llmstxt <command> -h' for command-specific flags.")
}
