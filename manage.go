// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// CreateHandle constructs a Handle with an empty mask. The handle is not
// yet enabled; no callback fires for it until Enable is called. This is
// the clCreateTracingHandleINTEL entry point.
func (g *Gate) CreateHandle(callback Callback, userData interface{}) (*Handle, error) {
	if callback == nil {
		return nil, &InvalidArgumentError{Message: "callback must not be nil"}
	}
	h := newHandle(callback, userData)
	if g.log().IsEnabled(LevelDebug) {
		g.log().Log(LogEntry{Level: LevelDebug, Category: "manage", Message: "handle created"})
	}
	return h, nil
}

// SetTracingPoint opts h into or out of notifications for fn. Delegates to
// Handle.SetTracingPoint; no lock is required, see that method's doc.
func (g *Gate) SetTracingPoint(h *Handle, fn FunctionID, on bool) error {
	if h == nil {
		return &InvalidArgumentError{Message: "handle must not be nil"}
	}
	return h.SetTracingPoint(fn, on)
}

// Enable inserts h into the handle table, setting ENABLED if the table was
// previously empty. Enable and Disable are the
// clEnableTracingINTEL/clDisableTracingINTEL entry points.
func (g *Gate) Enable(h *Handle) error {
	if h == nil {
		return &InvalidArgumentError{Message: "handle must not be nil"}
	}

	g.state.lock()
	defer g.state.unlock()

	if g.table.indexOf(h) >= 0 {
		return &InvalidArgumentError{Message: "handle already enabled"}
	}
	if g.table.full() {
		return &OutOfResourcesError{Message: "handle table is full"}
	}

	wasEmpty := g.table.empty()
	g.table.insert(h)
	if wasEmpty {
		g.state.setEnabledLocked(true)
	}

	if g.log().IsEnabled(LevelInfo) {
		g.log().Log(LogEntry{Level: LevelInfo, Category: "manage", Message: "handle enabled"})
	}
	return nil
}

// Disable removes h from the handle table by swap-with-last, clearing
// ENABLED if the table becomes empty.
func (g *Gate) Disable(h *Handle) error {
	if h == nil {
		return &InvalidArgumentError{Message: "handle must not be nil"}
	}

	g.state.lock()
	defer g.state.unlock()

	i := g.table.indexOf(h)
	if i < 0 {
		return &InvalidArgumentError{Message: "handle not enabled"}
	}
	g.table.remove(i)
	if g.table.empty() {
		g.state.setEnabledLocked(false)
	}

	if g.log().IsEnabled(LevelInfo) {
		g.log().Log(LogEntry{Level: LevelInfo, Category: "manage", Message: "handle disabled"})
	}
	return nil
}

// GetState reports whether h is currently present in the handle table. The
// lock is taken so the caller never observes a mid-swap table state during
// a concurrent Disable.
func (g *Gate) GetState(h *Handle) (enabled bool, err error) {
	if h == nil {
		return false, &InvalidArgumentError{Message: "handle must not be nil"}
	}
	g.state.lock()
	defer g.state.unlock()
	return g.table.indexOf(h) >= 0, nil
}

// DestroyHandle releases a handle. The caller is responsible for having
// disabled it first; destroying an enabled handle, or one currently being
// called, is a protocol error callers must avoid. Go's garbage collector
// reclaims the Handle once unreferenced, so this is a validation-only
// hook rather than an allocator call.
func (g *Gate) DestroyHandle(h *Handle) error {
	if h == nil {
		return &InvalidArgumentError{Message: "handle must not be nil"}
	}
	g.state.lock()
	defer g.state.unlock()
	if g.table.indexOf(h) >= 0 {
		return &InvalidArgumentError{Message: "cannot destroy an enabled handle"}
	}
	if g.log().IsEnabled(LevelDebug) {
		g.log().Log(LogEntry{Level: LevelDebug, Category: "manage", Message: "handle destroyed"})
	}
	return nil
}
