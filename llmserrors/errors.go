// Package llmserrors provides structured error types for llmstxt.
//
// These error types enable programmatic error handling via errors.Is() and
// errors.As(), allowing callers to distinguish between fatal setup-time
// misconfiguration and per-item input problems.
//
// # Error Categories
//
//   - ConfigError: invalid setup input (nil host, missing title, duplicate sections)
//   - LinkError: a single link item that failed validation
//
// Setup-time ConfigErrors are fatal and abort registration. LinkErrors are
// advisory: the plugin and config loaders skip the offending link, log a
// warning, and keep going.
//
// # Usage with errors.Is
//
//	err := plugin.Add(app, title, summary, opts...)
//	if errors.Is(err, llmserrors.ErrDuplicateSection) {
//	    // Two WithSection options used the same name.
//	}
package llmserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrConfig indicates invalid setup input.
	ErrConfig = errors.New("configuration error")

	// ErrDuplicateSection indicates two sections share the same name.
	ErrDuplicateSection = errors.New("duplicate section name")

	// ErrInvalidLink indicates a link item failed validation.
	ErrInvalidLink = errors.New("invalid link")
)

// ConfigError represents invalid setup input. These errors indicate
// programmer misconfiguration rather than runtime data variance, and are
// surfaced immediately at setup time.
type ConfigError struct {
	// Field is the option or field that was misconfigured
	Field string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Field != "" {
		msg += ": " + e.Field
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
// Matches ErrConfig, and ErrDuplicateSection when the cause is one.
func (e *ConfigError) Is(target error) bool {
	if target == ErrConfig {
		return true
	}
	return target == ErrDuplicateSection && errors.Is(e.Cause, ErrDuplicateSection)
}

// NewConfigError creates a ConfigError for the given field.
func NewConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// LinkError represents a single link item that failed validation.
// The surrounding section and all well-formed sibling links are unaffected.
type LinkError struct {
	// Section is the section the link belongs to, if known
	Section string
	// Title is the link title, if present
	Title string
	// URL is the raw URL value that failed validation, if present
	URL string
	// Message describes the problem
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *LinkError) Error() string {
	msg := "invalid link"
	if e.Section != "" {
		msg += " in section " + fmt.Sprintf("%q", e.Section)
	}
	if e.URL != "" {
		msg += ": " + e.URL
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *LinkError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *LinkError) Is(target error) bool {
	return target == ErrInvalidLink
}
