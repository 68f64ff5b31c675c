// Package docerrors provides structured error types for the docdiff library.
//
// Import path: github.com/erraggy/docdiff/docerrors
//
// This package enables programmatic error handling via [errors.Is] and [errors.As],
// allowing callers to distinguish between a malformed input, a refused schema
// construction, and the one fatal precondition of the differ: roots of
// different types.
//
// # Error Types
//
//   - [ParseError]: JSON/YAML decoding failures and structural issues
//   - [TypeMismatchError]: old and new roots have different node types
//   - [SchemaError]: the schema rejected a node or mark type or attribute
//   - [ResourceLimitError]: input size or nesting limits
//   - [ConfigError]: invalid configuration or input options
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrTypeMismatch]: Matches any [TypeMismatchError]
//   - [ErrSchema]: Matches any [SchemaError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	merged, err := differ.Diff(schema, oldDoc, newDoc)
//	if errors.Is(err, docerrors.ErrTypeMismatch) {
//	    // The documents cannot be compared
//	}
//
//	var tm *docerrors.TypeMismatchError
//	if errors.As(err, &tm) {
//	    fmt.Printf("cannot compare %s with %s\n", tm.OldType, tm.NewType)
//	}
package docerrors
