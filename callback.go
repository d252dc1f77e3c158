// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// CallbackData is the notification record delivered to an observer at both
// the ENTER and EXIT sites of a traced call. The gate populates Site,
// CorrelationID, FunctionName, Params and ReturnValue once per call and
// reuses the same value across the ENTER/EXIT pair for a given handle,
// mutating only Site and ReturnValue between the two deliveries.
type CallbackData struct {
	// Site distinguishes the notification made immediately before the
	// traced work (SiteEnter) from the one made immediately after
	// (SiteExit).
	Site Site

	// CorrelationID is unique per (enter, exit) pair for one traced call on
	// one thread. It does not disambiguate between handles: all handles
	// notified for the same call observe the same id.
	CorrelationID uint32

	// Scratch points at a per-handle, per-call 64-bit word the observer may
	// use freely to carry state from ENTER to EXIT. It is uninitialized on
	// ENTER and stable (same backing memory) on EXIT.
	Scratch *uint64

	// FunctionName is a human-readable name for the traced function, e.g.
	// "clCreateContext".
	FunctionName string

	// Params is an opaque pointer to a per-function parameter record
	// produced by the shim layer. Its shape is owned by the caller of the
	// gate, not by this package.
	Params interface{}

	// ReturnValue is an opaque pointer to the function's return-value
	// storage. It is nil at ENTER and populated at EXIT.
	ReturnValue interface{}
}

// Callback is the observer function signature. It receives the function
// being traced, the notification record, and the opaque user pointer
// supplied when the handle was created.
//
// A callback must not destroy its own handle. It may re-enter traced API
// functions; nested calls on the same goroutine are silently untraced (see
// the reentrancy guard in reentrancy.go). It must not assume ENTER and EXIT
// run on the same OS thread, only the same goroutine. Scratch is valid only
// within one ENTER/EXIT pair.
type Callback func(fn FunctionID, data *CallbackData, userData interface{})
