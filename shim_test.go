// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShim_admissionHooksBalanceReentrancyGuard(t *testing.T) {
	g := NewGate()

	admitted := g.AdmissionAcquire()
	assert.False(t, admitted, "no handle enabled yet")
	// AdmissionAcquire already balanced the guard itself when it reports
	// false; the caller must not call AdmissionRelease in that case.

	// with nothing enabled, AdmissionAcquire returns on the ENABLED check
	// without touching the guard, so a second call is still just false.
	admitted = g.AdmissionAcquire()
	assert.False(t, admitted)

	// once a handle is enabled the guard is consulted: a nested acquire on
	// the same goroutine is suppressed, and after the outer release the
	// guard is clear again, so a fresh acquire is admitted.
	h, err := g.CreateHandle(func(FunctionID, *CallbackData, interface{}) {}, nil)
	require.NoError(t, err)
	require.NoError(t, g.Enable(h))
	require.True(t, g.AdmissionAcquire())
	assert.False(t, g.AdmissionAcquire(), "nested acquire must be suppressed by the guard")
	g.AdmissionRelease(true)
	require.True(t, g.AdmissionAcquire(), "guard must be clear after release")
	g.AdmissionRelease(true)
}

func TestShim_handleTableSnapshotReflectsEnabledHandles(t *testing.T) {
	g := NewGate()
	h, err := g.CreateHandle(func(FunctionID, *CallbackData, interface{}) {}, nil)
	require.NoError(t, err)
	require.NoError(t, g.Enable(h))

	admitted := g.AdmissionAcquire()
	require.True(t, admitted)
	snap := g.HandleTableSnapshot()
	assert.Equal(t, []*Handle{h}, snap)
	g.AdmissionRelease(admitted)
}

func TestShim_nextCorrelationIDIncrements(t *testing.T) {
	g := NewGate()
	first := g.NextCorrelationID()
	second := g.NextCorrelationID()
	assert.Equal(t, first+1, second)
}

func TestShim_traceRunsBodyExactlyOnceAndWiresReturnValue(t *testing.T) {
	g := NewGate()

	var sites []Site
	var returnValues []interface{}
	h, err := g.CreateHandle(func(fn FunctionID, data *CallbackData, userData interface{}) {
		sites = append(sites, data.Site)
		returnValues = append(returnValues, data.ReturnValue)
	}, nil)
	require.NoError(t, err)
	require.NoError(t, g.SetTracingPoint(h, FunctionGetDeviceInfo, true))
	require.NoError(t, g.Enable(h))

	var bodyRuns int
	result := g.Trace(FunctionGetDeviceInfo, "clGetDeviceInfo", nil, func() interface{} {
		bodyRuns++
		return int32(42)
	})

	assert.Equal(t, int32(42), result)
	assert.Equal(t, 1, bodyRuns)
	require.Len(t, sites, 2)
	assert.Equal(t, SiteEnter, sites[0])
	assert.Equal(t, SiteExit, sites[1])
	assert.Nil(t, returnValues[0])
	assert.Equal(t, int32(42), returnValues[1])
}

func TestShim_traceRunsBodyWhenUntraced(t *testing.T) {
	g := NewGate()
	var bodyRuns int
	result := g.Trace(FunctionGetDeviceInfo, "clGetDeviceInfo", nil, func() interface{} {
		bodyRuns++
		return int32(7)
	})
	assert.Equal(t, int32(7), result)
	assert.Equal(t, 1, bodyRuns)
}
