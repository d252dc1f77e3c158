// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// spinBackoffThreshold is the longest run of procyield calls in one
// doubling round (runs of 1, 2, 4, 8, 16); once the run would exceed it,
// pause escalates to yieldOS, mirroring a CPU `pause`-doubling-to-16-
// then-yield policy. This is a tuning knob, not part of the contract: any
// backoff that bounds wasted cycles and guarantees eventual progress is
// acceptable.
const spinBackoffThreshold = 16

// spinBackoff implements a polite exponential spin: an exponentially
// growing run of procyield calls (standing in for a CPU `pause`
// instruction, which Go exposes no portable intrinsic for) doubling up to
// spinBackoffThreshold, after which the goroutine escalates to yieldOS, a
// short OS-level sleep.
type spinBackoff struct {
	count int
}

func newSpinBackoff() spinBackoff {
	return spinBackoff{count: 1}
}

// pause executes one backoff step. Each retry loop owns its own
// spinBackoff value on the stack; it is not meant to be shared.
func (b *spinBackoff) pause() {
	if b.count <= spinBackoffThreshold {
		for i := 0; i < b.count; i++ {
			procyield()
		}
		b.count *= 2
		return
	}
	yieldOS()
}
