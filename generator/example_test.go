package generator_test

import (
	"fmt"

	"github.com/erraggy/llmstxt/generator"
	"github.com/erraggy/llmstxt/project"
	"github.com/erraggy/llmstxt/routes"
)

func ExampleGenerator_Generate() {
	link, err := project.NewLinkItem("API Docs", "https://example.com/docs")
	if err != nil {
		fmt.Println("Link error:", err)
		return
	}

	desc := &project.Description{
		Title:   "Bookstore API",
		Summary: "A sample API for managing a bookstore",
	}
	if err := desc.AddSection("Documentation", link); err != nil {
		fmt.Println("Section error:", err)
		return
	}

	gen, err := generator.New(desc)
	if err != nil {
		fmt.Println("Generator error:", err)
		return
	}

	fmt.Print(gen.Generate())
	// Output:
	// # Bookstore API
	//
	// A sample API for managing a bookstore
	//
	// ## Documentation
	//
	// - [API Docs](https://example.com/docs)
}

func ExampleWithRoutes() {
	desc := &project.Description{
		Title:   "Bookstore API",
		Summary: "A sample API for managing a bookstore",
	}

	table := routes.ProviderFunc(func() []routes.Route {
		return []routes.Route{{
			Path:        "/books/{book_id}",
			Methods:     []string{"GET"},
			HandlerName: "get_book",
		}}
	})

	gen, err := generator.New(desc, generator.WithRoutes(table))
	if err != nil {
		fmt.Println("Generator error:", err)
		return
	}

	fmt.Print(gen.Generate())
	// Output:
	// # Bookstore API
	//
	// A sample API for managing a bookstore
	//
	// ## API Endpoints
	//
	// ### GET /books/{book_id}
	//
	// Get Book
	//
	// **Parameters:**
	//
	// - `book_id` (str, required): Path parameter: book_id
}
