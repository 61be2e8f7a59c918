package naming

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Humanize converts an identifier or path segment to a human-readable name.
// Underscores become spaces and each word is title-cased. The Title caser
// also lowercases the remainder of each word, so "list_BOOKS" humanizes to
// "List Books" rather than "List BOOKS".
//
// A cases.Caser carries internal state and is not safe for concurrent use,
// so one is constructed per call; construction is cheap. This keeps Humanize
// safe to call from concurrent renders.
//
// Examples:
//
//	"list_books" -> "List Books"
//	"books"      -> "Books"
//	"non-fiction" -> "Non-Fiction"
func Humanize(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(s, "_", " "))
}
