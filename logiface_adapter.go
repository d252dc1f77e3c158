// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import "github.com/joeycumines/logiface"

// LogifaceLogger adapts this package's Logger interface onto a
// github.com/joeycumines/logiface typed Logger, so callers already using
// logiface (e.g. via logiface/zerolog or logiface/slog) can point a Gate's
// diagnostic output at their existing sink instead of DefaultLogger or
// WriterLogger.
type LogifaceLogger struct {
	logger *logiface.Logger[logiface.Event]
}

// NewLogifaceLogger wraps logger, translating LogLevel to logiface's
// syslog-style Level and LogEntry fields to structured Builder calls.
func NewLogifaceLogger[E logiface.Event](logger *logiface.Logger[E]) *LogifaceLogger {
	return &LogifaceLogger{logger: logger.Logger()}
}

// IsEnabled reports whether the underlying logiface.Logger would emit at
// level.
func (l *LogifaceLogger) IsEnabled(level LogLevel) bool {
	return l.logger.Level() >= logifaceLevel(level)
}

// Log translates entry into a logiface Builder chain and logs it.
func (l *LogifaceLogger) Log(entry LogEntry) {
	b := l.logger.Build(logifaceLevel(entry.Level))
	if b == nil || !b.Enabled() {
		return
	}
	b.Str("category", entry.Category)
	if entry.Function != 0 {
		b.Str("fn", entry.Function.String())
	}
	if entry.CorrelationID != 0 {
		b.Uint64("corr", uint64(entry.CorrelationID))
	}
	for k, v := range entry.Context {
		b.Any(k, v)
	}
	if entry.Err != nil {
		b.Err(entry.Err)
	}
	b.Log(entry.Message)
}

func logifaceLevel(level LogLevel) logiface.Level {
	switch level {
	case LevelDebug:
		return logiface.LevelDebug
	case LevelInfo:
		return logiface.LevelInformational
	case LevelWarn:
		return logiface.LevelWarning
	case LevelError:
		return logiface.LevelError
	default:
		return logiface.LevelInformational
	}
}
