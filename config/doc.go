// Package config loads a project description from a YAML file, so the
// llmstxt CLI and MCP server can render an llms.txt document without a live
// web host.
//
// Import path: github.com/erraggy/llmstxt/config
//
// # File Format
//
//	title: Bookstore API
//	summary: A sample API for managing a bookstore
//	notes:
//	  - All endpoints return JSON
//	sections:
//	  - name: Documentation
//	    links:
//	      - title: API Docs
//	        url: https://example.com/docs
//
// Sections are a list, so insertion order is the file order. The loader
// follows the same tolerance rules as the plugin: a file that does not
// decode, or is missing title or summary, fails loading; an individual link
// missing a title or url, or carrying an invalid URL, is skipped with a
// logged warning.
package config
