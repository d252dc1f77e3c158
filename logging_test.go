// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOpLogger_neverEnabled(t *testing.T) {
	l := NewNoOpLogger()
	assert.False(t, l.IsEnabled(LevelDebug))
	assert.False(t, l.IsEnabled(LevelError))
	l.Log(LogEntry{Level: LevelError, Message: "discarded"}) // must not panic
}

func TestWriterLogger_respectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LevelWarn, &buf)
	require.False(t, l.IsEnabled(LevelInfo))
	require.True(t, l.IsEnabled(LevelError))

	l.Log(LogEntry{Level: LevelInfo, Message: "should not appear"})
	assert.Empty(t, buf.String())

	l.Log(LogEntry{Level: LevelError, Category: "gate", Message: "boom", Err: errors.New("oops")})
	out := buf.String()
	assert.Contains(t, out, "ERROR")
	assert.Contains(t, out, "gate")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "oops")
}

func TestWriterLogger_includesFunctionAndCorrelation(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(LevelDebug, &buf)
	l.Log(LogEntry{Level: LevelDebug, Category: "gate", Function: FunctionCreateContext, CorrelationID: 7, Message: "admitted"})
	out := buf.String()
	assert.True(t, strings.Contains(out, "fn=clCreateContext"))
	assert.True(t, strings.Contains(out, "corr=7"))
}

func TestLogLevel_String(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Contains(t, LogLevel(99).String(), "UNKNOWN")
}

func TestSetStructuredLogger_globalDefault(t *testing.T) {
	var buf bytes.Buffer
	custom := NewWriterLogger(LevelDebug, &buf)
	SetStructuredLogger(custom)
	defer SetStructuredLogger(nil)

	assert.Same(t, Logger(custom), getGlobalLogger())
}

func TestSetStructuredLogger_nilFallsBackToNoOp(t *testing.T) {
	SetStructuredLogger(nil)
	assert.IsType(t, &NoOpLogger{}, getGlobalLogger())
}
