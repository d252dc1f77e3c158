// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

//go:build unix

package tracing

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// procyield is the doubling-phase spin step. Go exposes no portable
// equivalent of the x86 PAUSE / ARM YIELD instruction, so runtime.Gosched
// stands in: cheap, bounded, and it lets another runnable goroutine on
// the same P make progress instead of burning the core spinning.
func procyield() {
	runtime.Gosched()
}

// yieldOS is the escalation step once the doubling phase is exhausted. On
// unix platforms this sleeps for a single nanosecond via nanosleep(2),
// which in practice yields the thread for one scheduler quantum rather
// than just another runnable goroutine on the same P.
func yieldOS() {
	ts := unix.Timespec{Sec: 0, Nsec: 1}
	_ = unix.Nanosleep(&ts, nil)
}
