// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

// Driver is the raw EGL entry point set a Context is built on.
//
// Methods mirror the EGL C API one to one: failures are reported through
// sentinel handles or a false result, and the cause is read back with
// GetError. GetError reports the error of the most recent failing call
// made from the calling thread and resets it to Success.
//
// A Driver is used from the goroutine that owns the Context. Callers that
// need thread affinity (every real EGL implementation) must pin that
// goroutine with runtime.LockOSThread before calling Initialize.
type Driver interface {
	// Name identifies the driver in logs and errors.
	Name() string

	// GetDisplay returns the default display connection or NoDisplay.
	GetDisplay() Display

	// Initialize initializes the display and reports the EGL version.
	Initialize(d Display) (major, minor int32, ok bool)

	// ChooseConfig returns up to size configs matching the
	// None-terminated attribute list, best match first.
	ChooseConfig(d Display, attribs []int32, size int) ([]Config, bool)

	// CreateContext creates a rendering context or returns NoContext.
	CreateContext(d Display, c Config, share ContextHandle, attribs []int32) ContextHandle

	// CreateWindowSurface binds a window surface to win or returns NoSurface.
	CreateWindowSurface(d Display, c Config, win NativeWindow) Surface

	// MakeCurrent binds ctx with the draw and read surfaces to the calling
	// thread. Passing NoSurface and NoContext releases the binding.
	MakeCurrent(d Display, draw, read Surface, ctx ContextHandle) bool

	// SwapBuffers posts the back buffer of s to its window.
	SwapBuffers(d Display, s Surface) bool

	// DestroyContext destroys a rendering context.
	DestroyContext(d Display, ctx ContextHandle) bool

	// DestroySurface destroys a drawing surface.
	DestroySurface(d Display, s Surface) bool

	// GetError returns and clears the last error of the calling thread.
	GetError() ErrorCode
}
