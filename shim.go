// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// This file is the seam between the gate and the per-function adapter
// shims that marshal a real API call's arguments into a parameter record
// and fan the record out to enabled handles. The core exposes the shim
// layer four hooks (AdmissionAcquire, AdmissionRelease,
// HandleTableSnapshot, NextCorrelationID) and a concrete implementation
// is free to inline these into its shim macros. The per-function adapters
// themselves (roughly one per traced entry point, 118 in a full runtime)
// are outside the core's scope; adapters_example.go sketches a
// representative handful.

// AdmissionAcquire is the admission_acquire hook: it attempts to enter the
// gate for one traced call, honoring the reentrancy guard and the
// admission protocol. It reports whether the call was admitted.
//
// When it reports false, AdmissionAcquire has already balanced whatever it
// did to the reentrancy guard (nothing, if tracing was disabled or the
// goroutine was already inside an outer traced call; a matching release,
// if admission itself failed). The
// caller must skip notification entirely and must NOT call
// AdmissionRelease. AdmissionRelease is only for the true branch, paired
// with the eventual admitted body.
func (g *Gate) AdmissionAcquire() bool {
	// Enabled first: the tracing-off hot path is a single atomic load,
	// never the guard's mutex. See Gate.Enter.
	if !g.state.enabled() {
		return false
	}
	if g.reentrancy.enter() {
		return false
	}
	if !g.state.admit() {
		g.reentrancy.exit()
		return false
	}
	return true
}

// AdmissionRelease is the admission_release hook, paired with a call to
// AdmissionAcquire that reported true. Never call it after a false
// AdmissionAcquire; see that method's doc.
func (g *Gate) AdmissionRelease(admitted bool) {
	if admitted {
		g.state.release()
	}
	g.reentrancy.exit()
}

// HandleTableSnapshot is the handle_table_snapshot hook: the ordered list
// of currently enabled handles. Only meaningful to call between a
// successful AdmissionAcquire and its matching AdmissionRelease.
func (g *Gate) HandleTableSnapshot() []*Handle {
	return g.table.snapshot()
}

// NextCorrelationID is the next_correlation_id hook.
func (g *Gate) NextCorrelationID() uint32 {
	return g.correlation.allocate()
}

// Trace is a generic shim wrapper built from the four hooks above: rather
// than generating one near-identical adapter per traced entry point, a
// caller wraps the real API call in a closure and lets Trace handle
// admission, correlation, and notification fan-out on both sides.
//
// body is invoked exactly once, regardless of whether tracing is active;
// its return value becomes the EXIT notification's ReturnValue.
func (g *Gate) Trace(fn FunctionID, functionName string, params interface{}, body func() interface{}) interface{} {
	admitted := g.AdmissionAcquire()
	if !admitted {
		return body()
	}

	handles := g.HandleTableSnapshot()
	var scratch [MaxHandles]uint64
	data := CallbackData{
		Site:          SiteEnter,
		CorrelationID: g.NextCorrelationID(),
		FunctionName:  functionName,
		Params:        params,
	}
	for i, h := range handles {
		if !h.TracingPoint(fn) {
			continue
		}
		data.Scratch = &scratch[i]
		h.call(fn, &data)
	}

	result := body()

	data.Site = SiteExit
	data.ReturnValue = result
	for i, h := range handles {
		if !h.TracingPoint(fn) {
			continue
		}
		data.Scratch = &scratch[i]
		h.call(fn, &data)
	}

	g.AdmissionRelease(admitted)
	return result
}
