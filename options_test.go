// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveManagerOptions_defaultsToNoOpLogger(t *testing.T) {
	cfg := resolveManagerOptions(nil)
	assert.IsType(t, &NoOpLogger{}, cfg.logger)
}

func TestResolveManagerOptions_withLogger(t *testing.T) {
	logger := NewWriterLogger(LevelDebug, nil)
	cfg := resolveManagerOptions([]ManagerOption{WithLogger(logger)})
	assert.Same(t, logger, cfg.logger)
}

func TestResolveManagerOptions_ignoresNilOption(t *testing.T) {
	cfg := resolveManagerOptions([]ManagerOption{nil, WithLogger(NewNoOpLogger())})
	assert.IsType(t, &NoOpLogger{}, cfg.logger)
}

func TestNewGate_acceptsOptions(t *testing.T) {
	logger := NewWriterLogger(LevelDebug, nil)
	g := NewGate(WithLogger(logger))
	assert.Same(t, logger, g.logger)
}
