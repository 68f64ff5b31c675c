package docerrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrTypeMismatch indicates the two root nodes handed to the differ
	// have different types.
	ErrTypeMismatch = errors.New("node type mismatch")

	// ErrSchema indicates the schema refused to construct a node or mark.
	ErrSchema = errors.New("schema error")

	// ErrResourceLimit indicates a resource limit was exceeded.
	ErrResourceLimit = errors.New("resource limit exceeded")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a document.
// This includes malformed JSON/YAML and nodes without a type.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Pointer locates the offending node inside the document (e.g. "$.content[2]")
	Pointer string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Pointer != "" {
		msg += " at " + e.Pointer
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
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// TypeMismatchError is returned when two nodes that must share a type do not.
// The differ only reports this for the pair it was called with; mismatches
// further down the tree are rendered as a deletion followed by an insertion.
type TypeMismatchError struct {
	// Path locates the pair (always "$" for the root)
	Path string
	// OldType is the type of the node from the old document
	OldType string
	// NewType is the type of the node from the new document
	NewType string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "node type mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg + fmt.Sprintf(": old %q, new %q", e.OldType, e.NewType)
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// SchemaError represents a schema refusing to construct a node or mark,
// or a document that uses types the schema does not know.
type SchemaError struct {
	// Kind is "node" or "mark"
	Kind string
	// Name is the node or mark type name
	Name string
	// Attr is the offending attribute name, if any
	Attr string
	// Message describes the failure
	Message string
}

// Error returns a human-readable error message.
func (e *SchemaError) Error() string {
	msg := "schema error"
	if e.Kind != "" && e.Name != "" {
		msg += fmt.Sprintf(" for %s type %q", e.Kind, e.Name)
	} else if e.Name != "" {
		msg += fmt.Sprintf(" for %q", e.Name)
	}
	if e.Attr != "" {
		msg += fmt.Sprintf(" attribute %q", e.Attr)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}

// ResourceLimitError represents a resource exhaustion condition.
type ResourceLimitError struct {
	// ResourceType identifies what limit was exceeded
	// Common values: "file_size", "nesting_depth", "inline_size"
	ResourceType string
	// Limit is the configured maximum value
	Limit int64
	// Actual is the value that exceeded the limit (may be 0 if unknown)
	Actual int64
	// Message provides additional context
	Message string
}

// Error returns a human-readable error message.
func (e *ResourceLimitError) Error() string {
	msg := "resource limit exceeded"
	if e.ResourceType != "" {
		msg += ": " + e.ResourceType
	}
	if e.Limit > 0 {
		msg += fmt.Sprintf(" (limit: %d", e.Limit)
		if e.Actual > 0 {
			msg += fmt.Sprintf(", actual: %d", e.Actual)
		}
		msg += ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ResourceLimitError) Is(target error) bool {
	return target == ErrResourceLimit
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
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
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
