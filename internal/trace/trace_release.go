//go:build !dev

// Package trace provides runtime tracing for development builds.
// This is the release version with no-op stubs.
package trace

import "context"

// Init initializes tracing. In release builds, this is a no-op.
func Init() func() {
	return func() {}
}

// Task returns ctx unchanged in release builds.
func Task(ctx context.Context, _ string) (context.Context, func()) {
	return ctx, func() {}
}

// Region creates a trace region. In release builds, this is a no-op.
func Region(_ context.Context, _ string) func() {
	return func() {}
}

// Log logs a message to the trace. In release builds, this is a no-op.
func Log(_ context.Context, _, _ string) {
}

// IsEnabled reports whether tracing is enabled. Always false in release builds.
func IsEnabled() bool {
	return false
}
