// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build !unix

package tracing

import "runtime"

// procyield is the doubling-phase spin step; see backoff_unix.go.
func procyield() {
	runtime.Gosched()
}

// yieldOS is the escalation step once the doubling phase is exhausted.
// Non-unix platforms (Windows) have no nanosleep syscall wired through
// golang.org/x/sys/unix, so this falls back to repeated scheduler yields.
func yieldOS() {
	runtime.Gosched()
}
