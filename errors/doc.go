// Package errors provides structured error types for the ember-runtime library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: a value path, the offending value, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseArray, errors.KindOutOfBounds).
//		Path("scores").
//		Value(12).
//		Detail("insert index past end").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.OutOfBounds(errors.PhaseArray, 12, 5)
//	err := errors.Untracked(errors.PhaseAlloc, handle)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
