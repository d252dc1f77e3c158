// Copyright 2026 Joseph Cumines
//
// Permission to use, copy, modify, and distribute this software for any
// purpose with or without fee is hereby granted, provided that this copyright
// notice appears in all copies.

package tracing

// managerOptions holds configuration resolved from a set of ManagerOption
// values, applied when a Gate is constructed.
type managerOptions struct {
	logger    Logger
	loggerSet bool
}

// ManagerOption configures a Gate at construction time.
type ManagerOption interface {
	applyManager(*managerOptions)
}

type managerOptionFunc func(*managerOptions)

func (f managerOptionFunc) applyManager(opts *managerOptions) {
	f(opts)
}

// WithLogger sets the Logger a Gate uses for its own diagnostic output
// (handle lifecycle, admitted calls), overriding the package global
// logger used by SetStructuredLogger. A Gate built without this option
// falls back to the global logger at the time of each log call, so
// SetStructuredLogger still reaches it.
func WithLogger(logger Logger) ManagerOption {
	return managerOptionFunc(func(opts *managerOptions) {
		opts.logger = logger
		opts.loggerSet = true
	})
}

// resolveManagerOptions applies opts over the default configuration.
func resolveManagerOptions(opts []ManagerOption) *managerOptions {
	cfg := &managerOptions{logger: NewNoOpLogger()}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.applyManager(cfg)
	}
	return cfg
}
