// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package egl manages an EGL rendering context bound to a platform window.
//
// # Overview
//
// A Context is the display, config, rendering context and window surface
// that together let one thread draw with OpenGL ES and present frames:
//
//	drv, err := egl.OpenDefault()
//	if err != nil {
//	    return err
//	}
//	ctx, err := egl.Initialize(drv, window)
//	if err != nil {
//	    return err // *egl.Error: which step failed and the EGL error code
//	}
//	defer ctx.Teardown()
//
//	for running {
//	    draw()
//	    if err := ctx.SwapBuffers(); err != nil {
//	        log.Warn("swap failed", "err", err)
//	    }
//	}
//
// # Drivers
//
// The EGL entry points are abstracted behind Driver so the same Context
// code runs against libEGL on Android (registered as "android" in cgo
// builds) and against the in-process software implementation in
// egl/soft (registered as "soft"). Drivers register themselves with
// priorities; OpenDefault picks the best available one.
//
// # Errors
//
// Initialize returns *Error. Use errors.Is with the per-step sentinels
// (ErrDisplayUnavailable, ErrConfigUnavailable, ...) or ErrBadNativeWindow
// to branch on the cause. Nothing acquired before the failing step is
// left behind.
//
// # Threading
//
// EGL binds the current context to an OS thread. Pin the goroutine that
// calls Initialize with runtime.LockOSThread and keep every Context call
// on it.
package egl
