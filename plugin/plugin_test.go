package plugin

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/generator"
	"github.com/erraggy/llmstxt/llmserrors"
	"github.com/erraggy/llmstxt/project"
	"github.com/erraggy/llmstxt/routes"
)

// fakeHost is a minimal Host for tests: a route table, registered handlers,
// and a tag list.
type fakeHost struct {
	table    []routes.Route
	handlers map[string]http.Handler
	tags     []Tag
}

func (h *fakeHost) Routes() []routes.Route { return h.table }

func (h *fakeHost) Handle(rt routes.Route, handler http.Handler) {
	if h.handlers == nil {
		h.handlers = make(map[string]http.Handler)
	}
	h.table = append(h.table, rt)
	h.handlers[rt.Path] = handler
}

func (h *fakeHost) Tags() []Tag { return h.tags }

func (h *fakeHost) AddTag(tag Tag) { h.tags = append(h.tags, tag) }

// get invokes the handler registered at path and returns the response.
func (h *fakeHost) get(t *testing.T, path string) *httptest.ResponseRecorder {
	t.Helper()
	handler, ok := h.handlers[path]
	require.True(t, ok, "no handler registered at %s", path)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

// recordingLogger counts warnings for skip assertions.
type recordingLogger struct {
	llmstxt.NopLogger
	warnings []string
}

func (l *recordingLogger) Warn(msg string, _ ...any) { l.warnings = append(l.warnings, msg) }

func (l *recordingLogger) With(_ ...any) llmstxt.Logger { return l }

// =============================================================================
// Add Tests: registration
// =============================================================================

func TestAdd(t *testing.T) {
	t.Run("registers the documentation endpoint", func(t *testing.T) {
		host := &fakeHost{}
		err := Add(host, "Test API", "A test API for testing",
			WithSection("Documentation", map[string]any{"title": "API Docs", "url": "https://example.com/docs"}),
		)
		require.NoError(t, err)

		require.Len(t, host.table, 1)
		rt := host.table[0]
		assert.Equal(t, Endpoint, rt.Path)
		assert.Equal(t, []string{http.MethodGet}, rt.Methods)
		assert.Equal(t, generator.DocRouteName, rt.Name)
		assert.Equal(t, "Get llms.txt contents", rt.Summary)
	})

	t.Run("serves the rendered document as plain text", func(t *testing.T) {
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "A test API for testing",
			WithNotes("A note"),
			WithSection("Documentation", map[string]any{"title": "API Docs", "url": "https://example.com/docs"}),
		))

		rec := host.get(t, Endpoint)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))

		body := rec.Body.String()
		assert.Contains(t, body, "# Test API")
		assert.Contains(t, body, "A test API for testing")
		assert.Contains(t, body, "- A note")
		assert.Contains(t, body, "- [API Docs](https://example.com/docs)")
	})

	t.Run("documentation endpoint never documents itself", func(t *testing.T) {
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary"))

		body := host.get(t, Endpoint).Body.String()
		assert.NotContains(t, body, "## API Endpoints")
		assert.NotContains(t, body, "serve_llms_txt")
	})

	t.Run("renders host routes registered before and after Add", func(t *testing.T) {
		host := &fakeHost{}
		host.Handle(routes.Route{Path: "/books", Methods: []string{"GET"}, Summary: "List books"}, nil)
		require.NoError(t, Add(host, "Test API", "Summary"))

		body := host.get(t, Endpoint).Body.String()
		assert.Contains(t, body, "### GET /books")

		host.Handle(routes.Route{Path: "/authors", Methods: []string{"GET"}}, nil)
		body = host.get(t, Endpoint).Body.String()
		assert.Contains(t, body, "### GET /authors")
	})

	t.Run("WithoutAPIDocs disables introspection", func(t *testing.T) {
		host := &fakeHost{}
		host.Handle(routes.Route{Path: "/books", Methods: []string{"GET"}}, nil)
		require.NoError(t, Add(host, "Test API", "Summary", WithoutAPIDocs()))

		body := host.get(t, Endpoint).Body.String()
		assert.NotContains(t, body, "## API Endpoints")
		assert.NotContains(t, body, "/books")
	})

	t.Run("rejects a nil host", func(t *testing.T) {
		err := Add(nil, "Test API", "Summary")
		require.ErrorIs(t, err, llmserrors.ErrConfig)
	})

	t.Run("rejects duplicate section names", func(t *testing.T) {
		host := &fakeHost{}
		err := Add(host, "Test API", "Summary",
			WithSection("Documentation"),
			WithSection("Documentation"),
		)
		require.ErrorIs(t, err, llmserrors.ErrDuplicateSection)
		assert.Empty(t, host.table, "failed setup must not register the endpoint")
	})
}

// =============================================================================
// Add Tests: link tolerance
// =============================================================================

func TestAddLinkTolerance(t *testing.T) {
	t.Run("skips malformed links and keeps valid ones", func(t *testing.T) {
		logger := &recordingLogger{}
		host := &fakeHost{}
		err := Add(host, "Test API", "Summary",
			WithLogger(logger),
			WithSection("Documentation",
				map[string]any{"title": "Valid", "url": "https://example.com/docs"},
				map[string]any{"title": "No URL"},
				map[string]any{"url": "https://example.com/untitled"},
				"not a mapping at all",
			),
		)
		require.NoError(t, err)

		body := host.get(t, Endpoint).Body.String()
		assert.Contains(t, body, "- [Valid](https://example.com/docs)")
		assert.Equal(t, 1, countLines(body, "- ["))
		assert.Len(t, logger.warnings, 3)
	})

	t.Run("skips links with invalid URLs", func(t *testing.T) {
		logger := &recordingLogger{}
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary",
			WithLogger(logger),
			WithSection("Documentation",
				map[string]any{"title": "Bad", "url": "not-a-url"},
			),
		))

		body := host.get(t, Endpoint).Body.String()
		assert.NotContains(t, body, "not-a-url")
		assert.Len(t, logger.warnings, 1)
	})

	t.Run("section with only malformed links still renders its header", func(t *testing.T) {
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary",
			WithSection("Documentation", map[string]any{"title": "No URL"}),
		))

		body := host.get(t, Endpoint).Body.String()
		assert.Contains(t, body, "## Documentation")
	})

	t.Run("accepts pre-built LinkItems", func(t *testing.T) {
		link, err := project.NewLinkItem("Docs", "https://example.com/docs")
		require.NoError(t, err)

		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary", WithSection("Documentation", link, &link)))

		body := host.get(t, Endpoint).Body.String()
		assert.Equal(t, 2, countLines(body, "- [Docs]"))
	})

	t.Run("re-validates hand-built LinkItems", func(t *testing.T) {
		logger := &recordingLogger{}
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary",
			WithLogger(logger),
			WithSection("Documentation", project.LinkItem{Title: "Bad", URL: "ftp://example.com"}),
		))

		assert.NotContains(t, host.get(t, Endpoint).Body.String(), "ftp://")
		assert.Len(t, logger.warnings, 1)
	})
}

// =============================================================================
// Add Tests: tag metadata
// =============================================================================

func TestAddTagMetadata(t *testing.T) {
	t.Run("adds the reserved tag", func(t *testing.T) {
		host := &fakeHost{}
		require.NoError(t, Add(host, "Test API", "Summary"))

		require.Len(t, host.tags, 1)
		assert.Equal(t, TagName, host.tags[0].Name)
		assert.NotEmpty(t, host.tags[0].Description)
	})

	t.Run("leaves an existing reserved tag untouched", func(t *testing.T) {
		host := &fakeHost{tags: []Tag{{Name: TagName, Description: "custom description"}}}
		require.NoError(t, Add(host, "Test API", "Summary"))

		require.Len(t, host.tags, 1)
		assert.Equal(t, "custom description", host.tags[0].Description)
	})

	t.Run("tag name match is case-sensitive", func(t *testing.T) {
		host := &fakeHost{tags: []Tag{{Name: "llms.txt", Description: "different tag"}}}
		require.NoError(t, Add(host, "Test API", "Summary"))

		assert.Len(t, host.tags, 2)
	})
}

// countLines counts body lines starting with prefix.
func countLines(body, prefix string) int {
	count := 0
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, prefix) {
			count++
		}
	}
	return count
}
