//go:build !dev

// Package trace records runtime/trace tasks and regions in dev builds.
// Release builds get these no-ops.
package trace

import "context"

// EnvVar names the variable holding the trace output path (dev builds only).
const EnvVar = "PIPSEED_TRACE"

// Init is a no-op in release builds.
func Init() func() {
	return func() {}
}

// Task returns ctx unchanged in release builds.
func Task(ctx context.Context, _ string) (context.Context, func()) {
	return ctx, func() {}
}

// Region is a no-op in release builds.
func Region(_ context.Context, _ string) func() {
	return func() {}
}
