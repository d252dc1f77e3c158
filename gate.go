// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// Call carries the state threaded between a gate's Enter and Exit for one
// traced API invocation. The shim layer (see shim.go) owns its lifetime: it
// is constructed by Enter, passed unchanged to Exit, and then discarded.
// Its fields are internal; adapters treat it as an opaque token.
type Call struct {
	admitted   bool
	guardOwned bool
	handles    []*Handle
	scratch    [MaxHandles]uint64
	data       CallbackData
}

// Gate is the notification gate and registration machine described by the
// package: the admission state word, the dense handle table it guards, the
// correlation counter, and the per-goroutine reentrancy guard, wired
// together into the ENTER/EXIT idiom every traced function uses.
//
// A Gate is safe for concurrent use by any number of goroutines, both as
// API-calling (hot path, Enter/Exit) and as management (CreateHandle,
// Enable, Disable, GetState, DestroyHandle) callers.
type Gate struct {
	state       stateWord
	table       handleTable
	correlation correlationCounter
	reentrancy  *reentrancyGuard
	logger      Logger
}

// NewGate constructs a Gate ready to accept handle registrations and traced
// calls. ENABLED starts clear: no callbacks fire until at least one handle
// is enabled.
func NewGate(opts ...ManagerOption) *Gate {
	cfg := resolveManagerOptions(opts)
	g := &Gate{reentrancy: newReentrancyGuard()}
	if cfg.loggerSet {
		g.logger = cfg.logger
	}
	return g
}

// log returns the Logger this Gate uses for its own diagnostic output: the
// one supplied via WithLogger, or the package's global structured logger
// (see SetStructuredLogger) when no per-Gate logger was configured.
func (g *Gate) log() Logger {
	if g.logger != nil {
		return g.logger
	}
	return getGlobalLogger()
}

// Enter is the ENTER half of the hot-path gate. fn identifies
// the API function being called; params is the shim-owned per-function
// parameter record forwarded unchanged to every notified handle.
//
// Enter always returns a non-nil *Call; the caller must pass it to Exit
// exactly once, even when no admission occurred. Exit's handling of the
// reentrancy guard depends on whether this particular call acquired it
// (see Call.guardOwned): a call suppressed because the goroutine was
// already inside an outer traced call must never touch a guard it never
// set, or it would clear the outer call's entry out from under it.
func (g *Gate) Enter(fn FunctionID, functionName string, params interface{}) *Call {
	c := &Call{}

	// The enabled check comes before the guard: it is a single atomic
	// load, so the tracing-off hot path pays no mutex and no map access.
	// The guard only needs consulting once tracing is active. A nested
	// call that finds tracing disabled mid-callback returns here without
	// touching the outer call's guard entry.
	if !g.state.enabled() {
		return c
	}

	if g.reentrancy.enter() {
		// Already inside a traced call on this goroutine: no admission, no
		// notification. The outer call's Exit owns clearing the guard.
		return c
	}
	// This call acquired the guard; its Exit is responsible for releasing
	// it, whether or not admission itself succeeds.
	c.guardOwned = true

	if !g.state.admit() {
		return c
	}

	c.admitted = true
	c.handles = g.table.snapshot()
	c.data = CallbackData{
		Site:          SiteEnter,
		CorrelationID: g.correlation.allocate(),
		FunctionName:  functionName,
		Params:        params,
	}

	for i, h := range c.handles {
		if !h.TracingPoint(fn) {
			continue
		}
		c.data.Scratch = &c.scratch[i]
		h.call(fn, &c.data)
	}

	if g.log().IsEnabled(LevelDebug) {
		g.log().Log(LogEntry{
			Level:         LevelDebug,
			Category:      "gate",
			Function:      fn,
			CorrelationID: c.data.CorrelationID,
			Message:       "admitted " + functionName,
		})
	}

	return c
}

// Exit is the EXIT half of the hot-path gate. returnValue is an opaque
// pointer to the function's return-value storage, nullable when the
// function has no meaningful return.
func (g *Gate) Exit(fn FunctionID, c *Call, returnValue interface{}) {
	if !c.admitted {
		if c.guardOwned {
			g.reentrancy.exit()
		}
		return
	}

	c.data.Site = SiteExit
	c.data.ReturnValue = returnValue

	for i, h := range c.handles {
		if !h.TracingPoint(fn) {
			continue
		}
		c.data.Scratch = &c.scratch[i]
		h.call(fn, &c.data)
	}

	g.state.release()
	g.reentrancy.exit()
}
