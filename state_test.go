// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateWord_bitLayout(t *testing.T) {
	assert.Equal(t, uint32(1<<31), stateEnabledBit)
	assert.Equal(t, uint32(1<<30), stateLockedBit)
	assert.Equal(t, uint32(1<<30-1), stateCountMask)
}

func TestStateWord_admitDeniedWhenDisabled(t *testing.T) {
	var s stateWord
	require.False(t, s.enabled())
	assert.False(t, s.admit())
	assert.Equal(t, uint32(0), s.load())
}

func TestStateWord_admitRelease(t *testing.T) {
	var s stateWord
	s.setEnabledLocked(true) // simulate an external enable without locking, for this narrow test
	require.True(t, s.admit())
	assert.Equal(t, uint32(1), stateCount(s.load()))
	s.release()
	assert.Equal(t, uint32(0), stateCount(s.load()))
}

func TestStateWord_lockRequiresQuiescence(t *testing.T) {
	var s stateWord
	s.setEnabledLocked(true)
	require.True(t, s.admit())

	locked := make(chan struct{})
	go func() {
		s.lock()
		close(locked)
	}()

	select {
	case <-locked:
		t.Fatal("lock returned while a client was still admitted")
	default:
	}

	s.release()
	<-locked
	assert.True(t, stateLocked(s.load()))
	assert.Equal(t, uint32(0), stateCount(s.load()))
	s.unlock()
	assert.False(t, stateLocked(s.load()))
}

func TestStateWord_lockedBlocksAdmission(t *testing.T) {
	var s stateWord
	s.setEnabledLocked(true)
	s.lock()

	admitted := make(chan bool, 1)
	go func() { admitted <- s.admit() }()

	select {
	case <-admitted:
		t.Fatal("admit succeeded while LOCKED was held")
	default:
	}

	s.unlock()
	assert.True(t, <-admitted)
}

// TestStateWord_concurrentAdmitRelease is the "zero-cost when disabled"
// counterpart: with ENABLED set, many goroutines hammering admit/release
// must leave CLIENT_COUNT at zero once all releases complete, with LOCKED
// still clear.
func TestStateWord_concurrentAdmitRelease(t *testing.T) {
	var s stateWord
	s.setEnabledLocked(true)

	const goroutines = 32
	const iterations = 500

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if s.admit() {
					s.release()
				}
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint32(0), stateCount(s.load()))
	assert.False(t, stateLocked(s.load()))
}

func TestStateWord_disabledIsZeroCost(t *testing.T) {
	var s stateWord
	for i := 0; i < 1000; i++ {
		require.False(t, s.admit())
	}
	assert.Equal(t, uint32(0), s.load())
}
