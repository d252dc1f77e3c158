// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"sync/atomic"
)

// Bit layout of the packed 32-bit tracing state word.
//
//	[ E | L | CCCCCCCCCCCCCCCCCCCCCCCCCCCCCC ]
//	  31  30  29 .......................... 0
//
// E (stateEnabledBit) is set iff the handle table is non-empty: the hot-path
// fast-exit check. L (stateLockedBit) is set iff a management operation is
// in progress: hot-path admission blocks until it clears. The remaining 30
// bits (stateCountMask) count API calls currently past admission and not
// yet released.
//
// LOCKED and CLIENT_COUNT>0 are mutually exclusive at every observable
// post-CAS moment; ENABLED only transitions while LOCKED is held;
// CLIENT_COUNT only increments through a successful admission CAS and only
// decrements through release.
const (
	stateEnabledBit uint32 = 1 << 31
	stateLockedBit  uint32 = 1 << 30
	stateCountMask  uint32 = stateLockedBit - 1
)

func stateEnabled(v uint32) bool      { return v&stateEnabledBit != 0 }
func stateLocked(v uint32) bool       { return v&stateLockedBit != 0 }
func stateCount(v uint32) uint32      { return v & stateCountMask }
func stateSetEnabled(v uint32) uint32 { return v | stateEnabledBit }
func stateClrLocked(v uint32) uint32  { return v &^ stateLockedBit }
func stateSetLocked(v uint32) uint32  { return v | stateLockedBit }
func stateZeroCount(v uint32) uint32  { return v &^ stateCountMask }

// stateWord is the lock-free admission gate, cache-line padded to avoid
// false sharing between cores under concurrent admission.
//
// PERFORMANCE: pure atomic CAS; the state word itself takes no mutex.
type stateWord struct { // betteralign:ignore
	_ [64]byte      //nolint:unused
	v atomic.Uint32 // ENABLED | LOCKED | CLIENT_COUNT, see the bit layout above
	_ [60]byte      //nolint:unused
}

// load returns the raw packed state, acquire-ordered.
func (s *stateWord) load() uint32 {
	return s.v.Load()
}

// enabled reports whether the handle table is currently non-empty.
func (s *stateWord) enabled() bool {
	return stateEnabled(s.v.Load())
}

// admit is the hot-path admission CAS. It is called on API entry once the
// caller has already checked enabled() and the reentrancy guard. On
// success CLIENT_COUNT has been incremented by one and the caller must
// eventually call release(). On failure no state changed.
func (s *stateWord) admit() bool {
	backoff := newSpinBackoff()
	prev := s.v.Load()
	for {
		candidate := stateSetEnabled(prev)
		candidate = stateClrLocked(candidate)
		if s.v.CompareAndSwap(candidate, candidate+1) {
			return true
		}
		observed := s.v.Load()
		if !stateEnabled(observed) {
			return false
		}
		if stateLocked(observed) {
			// CLIENT_COUNT must be zero whenever LOCKED is set; the locker
			// established that quiescence point before setting the bit.
			observed = stateZeroCount(observed)
			observed = stateClrLocked(observed)
		}
		prev = observed
		backoff.pause()
	}
}

// release is called at API exit on every thread that successfully admitted.
// No CAS loop is required: nothing else may alter a non-zero client count.
func (s *stateWord) release() {
	s.v.Add(^uint32(0)) // atomic decrement by one
}

// lock is called by every management operation that mutates the handle
// table. It blocks (with backoff) until it observes CLIENT_COUNT == 0 and
// LOCKED == 0, then atomically claims LOCKED while preserving ENABLED. This
// is the quiescence point: once it returns, no admission can be in flight
// and none can succeed until unlock().
func (s *stateWord) lock() {
	backoff := newSpinBackoff()
	for {
		observed := s.v.Load()
		candidate := stateZeroCount(observed)
		candidate = stateClrLocked(candidate)
		if s.v.CompareAndSwap(candidate, stateSetLocked(candidate)) {
			return
		}
		backoff.pause()
	}
}

// unlock clears LOCKED. CLIENT_COUNT cannot be non-zero at this moment, so
// no CAS is required.
func (s *stateWord) unlock() {
	s.v.And(^stateLockedBit)
}

// setEnabledLocked sets or clears ENABLED. Must only be called while the
// caller holds the lock (between lock() and unlock()).
func (s *stateWord) setEnabledLocked(on bool) {
	if on {
		s.v.Or(stateEnabledBit)
	} else {
		s.v.And(^stateEnabledBit)
	}
}
