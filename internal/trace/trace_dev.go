//go:build dev

// Package trace records runtime/trace tasks and regions when PIPSEED_TRACE
// names an output file:
//
//	PIPSEED_TRACE=trace.out pipseed generate -n 1000 person
//	go tool trace trace.out
package trace

import (
	"context"
	"fmt"
	"os"
	"runtime/trace"
	"sync/atomic"
)

// EnvVar names the variable holding the trace output path.
const EnvVar = "PIPSEED_TRACE"

var active atomic.Bool

// Init starts the runtime tracer and returns the function that stops it.
func Init() func() {
	path := os.Getenv(EnvVar)
	if path == "" {
		return func() {}
	}

	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pipseed: trace disabled: %v\n", err)
		return func() {}
	}
	if err := trace.Start(f); err != nil {
		_ = f.Close()
		fmt.Fprintf(os.Stderr, "pipseed: trace disabled: %v\n", err)
		return func() {}
	}
	active.Store(true)

	return func() {
		if active.CompareAndSwap(true, false) {
			trace.Stop()
		}
		_ = f.Close()
	}
}

// Task starts a trace task, one per shell line or generate run.
func Task(ctx context.Context, name string) (context.Context, func()) {
	if !active.Load() {
		return ctx, func() {}
	}
	ctx, task := trace.NewTask(ctx, name)
	return ctx, task.End
}

// Region marks a region inside the current task.
func Region(ctx context.Context, name string) func() {
	if !active.Load() {
		return func() {}
	}
	return trace.StartRegion(ctx, name).End
}
