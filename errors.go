// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import "fmt"

// InvalidArgumentError is returned for a nil handle, an out-of-range
// function id, a duplicate enable, a disable of a handle not currently in
// the table, or a destroy of a handle still in it. It corresponds to the CL_INVALID_VALUE family
// of result codes surfaced by the cl_intel_tracing management entry
// points.
type InvalidArgumentError struct {
	Cause   error
	Message string
}

func (e *InvalidArgumentError) Error() string {
	if e.Message == "" {
		return "invalid argument"
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *InvalidArgumentError) Unwrap() error {
	return e.Cause
}

// OutOfResourcesError is returned when Enable is attempted against a full
// handle table (MaxHandles reached).
type OutOfResourcesError struct {
	Cause   error
	Message string
}

func (e *OutOfResourcesError) Error() string {
	if e.Message == "" {
		return "out of resources"
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *OutOfResourcesError) Unwrap() error {
	return e.Cause
}

// OutOfMemoryError is returned when handle allocation fails. CreateHandle
// in this implementation allocates via the Go runtime and so cannot
// observe allocation failure directly, but the type is kept to preserve
// the management API's documented error surface for callers layering
// their own resource accounting on top.
type OutOfMemoryError struct {
	Cause   error
	Message string
}

func (e *OutOfMemoryError) Error() string {
	if e.Message == "" {
		return "out of memory"
	}
	return e.Message
}

// Unwrap returns the underlying cause for use with [errors.Is] and [errors.As].
func (e *OutOfMemoryError) Unwrap() error {
	return e.Cause
}

// WrapError wraps an error with a message and optional cause chain.
//
//	WrapError("context failed", originalErr)
//
// The result satisfies errors.Is(result, originalErr) == true.
func WrapError(message string, cause error) error {
	return fmt.Errorf("%s: %w", message, cause)
}
