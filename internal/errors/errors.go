// Package errors provides sentinel errors and structured error types for the
// plating CLI.
package errors

import (
	"fmt"
	"strings"
)

// DetailError captures structured error information with enough context to
// locate the offending bundle, scenario, or file.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory path involved (optional).
	Location string

	// Context contains additional key-value context (optional).
	Context map[string]string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}
	for k, v := range e.Context {
		b.WriteString("  ")
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(v)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewRenderError creates a render failure carrying the template path and,
// when known, the line number reported by the template engine.
func NewRenderError(message, path string, line int) error {
	location := path
	if line > 0 {
		location = fmt.Sprintf("%s:%d", path, line)
	}
	return &DetailError{
		Type:     "render failed",
		Message:  message,
		Location: location,
		Cause:    ErrRender,
	}
}

// NewIOError creates a filesystem failure carrying the failed path and the
// operation that failed (read, write, copy, mkdir).
func NewIOError(op, path string, cause error) error {
	return &DetailError{
		Type:     "filesystem failure",
		Message:  cause.Error(),
		Location: path,
		Context:  map[string]string{"operation": op},
		Cause:    fmt.Errorf("%w: %w", ErrFileSystem, cause),
	}
}

// NewCollisionError creates a collision failure for a grouped example
// scenario. kind is "component" or "fixture"; name is the colliding
// component name or fixture relative path.
func NewCollisionError(scenario, kind, name string, sources []string) error {
	ctx := map[string]string{
		"scenario": scenario,
		kind:       name,
	}
	if len(sources) > 0 {
		ctx["contributed by"] = strings.Join(sources, ", ")
	}
	return &DetailError{
		Type:    "example collision",
		Message: fmt.Sprintf("scenario %q received duplicate %s %q", scenario, kind, name),
		Context: ctx,
		Hint:    "rename the example file or fixture in one of the contributing bundles",
		Cause:   ErrCollision,
	}
}

// ExitError carries a process exit code alongside an error. The command
// layer sets Printed when it has already reported the error to the user.
type ExitError struct {
	Code    int
	Err     error
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitRenderError indicates one or more bundles failed to render.
	ExitRenderError = 2

	// ExitCollision indicates a grouped-example collision halted the run.
	ExitCollision = 3

	// ExitNotFound indicates a package, bundle, or file was not found.
	ExitNotFound = 4

	// ExitValidateError indicates a compiled example failed validation.
	ExitValidateError = 5
)

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
