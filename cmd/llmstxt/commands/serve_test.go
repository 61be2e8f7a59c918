package commands

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/llmstxt"
	"github.com/erraggy/llmstxt/plugin"
)

func TestServeMux(t *testing.T) {
	const doc = "# Test API\n\nA test API for testing\n"
	mux := serveMux(doc)

	t.Run("serves the document at the endpoint", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, plugin.Endpoint, nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, plugin.ContentType, rec.Header().Get("Content-Type"))
		assert.Equal(t, llmstxt.UserAgent(), rec.Header().Get("Server"))
		assert.Equal(t, doc, rec.Body.String())
	})

	t.Run("rejects other methods", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, plugin.Endpoint, nil))
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("unknown paths are not found", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/other", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
