// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// MaxHandles is the fixed capacity of the handle table and the size of the
// per-call correlation scratch array.
const MaxHandles = 16

// handleTable is a fixed-capacity dense registry of enabled handles,
// mutated only while the owning stateWord is locked and quiesced. Non-empty
// slots occupy the contiguous prefix [0, size); removal swaps the last
// occupied slot into the removed position to preserve density, avoiding a
// free list and the fragmentation it would introduce into the hot-path
// iteration.
//
// Every method here except snapshot assumes the caller already holds the
// lock (between stateWord.lock and unlock). snapshot is read by the gate in
// gate.go and shim.go without the lock, between a successful admission and
// its release, when no management operation can hold the lock.
type handleTable struct {
	slots [MaxHandles]*Handle
	size  int
}

// indexOf returns the slot index of h, or -1 if absent.
func (t *handleTable) indexOf(h *Handle) int {
	for i := 0; i < t.size; i++ {
		if t.slots[i] == h {
			return i
		}
	}
	return -1
}

// insert appends h at the first free slot. The caller must have already
// verified h is absent and the table is not full.
func (t *handleTable) insert(h *Handle) {
	t.slots[t.size] = h
	t.size++
}

// remove deletes the handle at slot i by swapping the last occupied slot
// into its place, keeping [0, size) dense.
func (t *handleTable) remove(i int) {
	last := t.size - 1
	t.slots[i] = t.slots[last]
	t.slots[last] = nil
	t.size--
}

// full reports whether the table has no free slots.
func (t *handleTable) full() bool {
	return t.size == MaxHandles
}

// empty reports whether the table has no enabled handles.
func (t *handleTable) empty() bool {
	return t.size == 0
}

// snapshot returns the currently enabled handles in slot order. Only
// meaningful when read under quiescence (between a successful gate
// admission and its matching release), which is exactly how the hot path
// uses it in gate.go.
func (t *handleTable) snapshot() []*Handle {
	return t.slots[:t.size]
}
