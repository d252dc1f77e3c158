// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGate_recursionSuppressed: a callback for clCreateContext calls
// clCreateContext again on the same goroutine. Exactly two notifications
// (the outer ENTER and EXIT) must be observed; the nested call produces
// none.
func TestGate_recursionSuppressed(t *testing.T) {
	g := NewGate()

	var notifications int
	var recursed bool
	var cb Callback
	cb = func(fn FunctionID, data *CallbackData, userData interface{}) {
		notifications++
		if !recursed && data.Site == SiteEnter {
			recursed = true
			c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
			g.Exit(FunctionCreateContext, c, nil)
		}
	}

	h, err := g.CreateHandle(cb, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetTracingPoint(h, FunctionCreateContext, true))
	require.NoError(t, g.Enable(h))

	c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
	g.Exit(FunctionCreateContext, c, nil)

	assert.Equal(t, 2, notifications)
}

// TestGate_recursionDoesNotDeadlockAdmission exercises that a recursive
// call, even though untraced, does not corrupt CLIENT_COUNT: after the
// outer call completes, CLIENT_COUNT must be back to zero. It also
// guards against a reentrancy-guard regression: a nested Enter/Exit pair
// suppressed by the guard must never clear it out from under the next
// nested pair, which would let that next pair re-admit and fire its
// callback.
func TestGate_recursionDoesNotDeadlockAdmission(t *testing.T) {
	g := NewGate()

	var notifications int
	var recursed bool
	cb := func(fn FunctionID, data *CallbackData, userData interface{}) {
		notifications++
		if !recursed && data.Site == SiteEnter {
			recursed = true
			for i := 0; i < 3; i++ {
				c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
				g.Exit(FunctionCreateContext, c, nil)
			}
		}
	}

	h, err := g.CreateHandle(cb, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetTracingPoint(h, FunctionCreateContext, true))
	require.NoError(t, g.Enable(h))

	c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
	g.Exit(FunctionCreateContext, c, nil)

	assert.Equal(t, uint32(0), stateCount(g.state.load()))
	// only the outer ENTER and EXIT fire; all 3 nested pairs stay
	// suppressed since the guard is still held by the outer call.
	assert.Equal(t, 2, notifications)
}

// TestGate_reentrancyGuardIsPerGoroutine ensures one goroutine's
// in-progress call does not suppress tracing for another goroutine, per
// the design note that a global guard would incorrectly serialize tracing
// across unrelated goroutines.
func TestGate_reentrancyGuardIsPerGoroutine(t *testing.T) {
	g := NewGate()

	var count atomic.Int32
	h, err := g.CreateHandle(func(FunctionID, *CallbackData, interface{}) {
		count.Add(1)
	}, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetTracingPoint(h, FunctionCreateContext, true))
	require.NoError(t, g.Enable(h))

	done := make(chan struct{})
	blocking := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		defer close(finished)
		c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
		close(blocking)
		<-done
		g.Exit(FunctionCreateContext, c, nil)
	}()

	<-blocking
	c := g.Enter(FunctionCreateContext, "clCreateContext", nil)
	g.Exit(FunctionCreateContext, c, nil)
	close(done)
	<-finished

	assert.Equal(t, int32(4), count.Load())
}
