// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import "sync/atomic"

// correlationCounter assigns a process-wide, monotonically increasing id to
// each traced call at its ENTER site, letting observers pair the ENTER and
// EXIT notifications for that call. Overflow wraps modulo 2^32 and is
// accepted: uniqueness over very long runs is not guaranteed.
type correlationCounter struct {
	next atomic.Uint32
}

// allocate returns the next correlation id, starting at zero.
func (c *correlationCounter) allocate() uint32 {
	return c.next.Add(1) - 1
}
