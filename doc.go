// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package renderloop drives an EGL graphics context from a dedicated render
// goroutine.
//
// # Overview
//
// A Loop owns one native window's context for its whole life. The worker
// goroutine is pinned to an OS thread, initializes the context, calls the
// Renderer once per frame, presents, and paces itself to a fixed frame
// budget until the controller clears the StopSignal:
//
//	stop := renderloop.NewStopSignal()
//	loop := renderloop.New(win, renderer, stop, renderloop.WithDriverName("soft"))
//	if err := loop.Start(); err != nil {
//	    return err
//	}
//	...
//	stop.Stop()        // from the UI thread, never blocks
//	err := loop.Wait() // optional: block until teardown finished
//
// # Lifecycle
//
// The worker runs these steps in order:
//   - egl.Initialize; on failure the error is kept in Err and the
//     renderer is never touched
//   - Renderer.Init; false skips the frame loop
//   - frames until the signal clears
//   - Renderer.Destroy, exactly once
//   - Context.Teardown, always
//
// # Frame pacing
//
// Each frame receives the wall time since the previous frame in seconds.
// The first frame gets a delta close to zero. When a frame took less than
// the budget (DefaultFrameBudget, 30 frames per second) the worker sleeps
// the remainder. Slow frames are neither clamped nor made up for.
//
// # Logging
//
// Nothing is logged by default. SetLogger installs a slog.Logger for this
// package and for egl.
package renderloop
