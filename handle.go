// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import "sync/atomic"

// maskWords is the number of 64-bit words needed to hold one bit per
// FunctionID. FunctionCount is 118, so two words (128 bits) suffice.
const maskWords = (int(FunctionCount) + 63) / 64

// Handle is an opaque observer record: a callback, an opaque user pointer,
// and a bitmask of the function ids the observer has opted into. Once
// created, the callback and user pointer are immutable; only the mask may
// change, and only through SetTracingPoint.
//
// Mask edits are not serialized against the gate: a concurrent admission
// may or may not observe a just-changed bit. The mask words are atomic so
// that this stays a benign logical race rather than a data race.
type Handle struct {
	callback Callback
	userData interface{}
	mask     [maskWords]atomic.Uint64
}

// newHandle constructs a Handle with an empty mask.
func newHandle(callback Callback, userData interface{}) *Handle {
	return &Handle{callback: callback, userData: userData}
}

// call invokes the handle's callback.
func (h *Handle) call(fn FunctionID, data *CallbackData) {
	h.callback(fn, data, h.userData)
}

// SetTracingPoint sets or clears the mask bit for fn. Safe to call whether
// or not the handle is currently enabled; changes take effect on the next
// admission that reads the handle. No lock is taken: mask edits are
// intentionally allowed to race with in-flight gate iteration.
func (h *Handle) SetTracingPoint(fn FunctionID, on bool) error {
	if fn >= FunctionCount {
		return &InvalidArgumentError{Message: "function id out of range"}
	}
	word, bit := fn/64, uint64(1)<<(fn%64)
	for {
		old := h.mask[word].Load()
		var next uint64
		if on {
			next = old | bit
		} else {
			next = old &^ bit
		}
		if next == old || h.mask[word].CompareAndSwap(old, next) {
			return nil
		}
	}
}

// TracingPoint reports whether fn is currently selected by this handle's
// mask.
func (h *Handle) TracingPoint(fn FunctionID) bool {
	if fn >= FunctionCount {
		return false
	}
	word, bit := fn/64, uint64(1)<<(fn%64)
	return h.mask[word].Load()&bit != 0
}
