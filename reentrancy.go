// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"sync"

	"github.com/joeycumines/goroutineid"
)

// reentrancyGuard suppresses recursive tracing when a callback re-enters a
// traced API function on the same goroutine. The guard must be per-thread
// (here, per-goroutine, Go's nearest equivalent: the runtime gives no
// portable thread-local storage, and a global guard would incorrectly
// serialize tracing across unrelated goroutines).
//
// A map keyed by goroutine id, guarded by a mutex, stands in for a native
// OS thread-local bool. The critical section is tiny (a map lookup and a
// single bool flip), and the gate only consults the guard after observing
// ENABLED set, so the tracing-off hot path never touches this mutex; when
// tracing is active it is taken once at Enter and once at Exit of a call,
// not on every handle iterated.
type reentrancyGuard struct {
	mu   sync.Mutex
	busy map[int64]bool
}

func newReentrancyGuard() *reentrancyGuard {
	return &reentrancyGuard{busy: make(map[int64]bool)}
}

// enter reports whether the calling goroutine is already inside a traced
// call. If not, it marks the goroutine busy and returns false.
func (g *reentrancyGuard) enter() (alreadyInside bool) {
	id := goroutineid.ID()
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.busy[id] {
		return true
	}
	g.busy[id] = true
	return false
}

// exit clears the calling goroutine's guard. Must be called exactly once
// for every enter() that returned false.
func (g *reentrancyGuard) exit() {
	id := goroutineid.ID()
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.busy, id)
}
