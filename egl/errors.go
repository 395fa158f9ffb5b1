// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

import (
	"errors"
	"fmt"
)

// Kind classifies the initialization step that failed.
type Kind int

const (
	// KindDisplayUnavailable means eglGetDisplay returned EGL_NO_DISPLAY.
	KindDisplayUnavailable Kind = iota + 1

	// KindInitFailed means eglInitialize failed.
	KindInitFailed

	// KindConfigUnavailable means no config satisfies the attribute list.
	KindConfigUnavailable

	// KindContextCreationFailed means eglCreateContext returned EGL_NO_CONTEXT.
	KindContextCreationFailed

	// KindSurfaceCreationFailed means eglCreateWindowSurface returned EGL_NO_SURFACE.
	KindSurfaceCreationFailed

	// KindMakeCurrentFailed means eglMakeCurrent failed.
	KindMakeCurrentFailed
)

var kindOps = map[Kind]string{
	KindDisplayUnavailable:    "eglGetDisplay",
	KindInitFailed:            "eglInitialize",
	KindConfigUnavailable:     "eglChooseConfig",
	KindContextCreationFailed: "eglCreateContext",
	KindSurfaceCreationFailed: "eglCreateWindowSurface",
	KindMakeCurrentFailed:     "eglMakeCurrent",
}

// String returns the EGL call associated with the kind.
func (k Kind) String() string {
	if op, ok := kindOps[k]; ok {
		return op
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Sentinel errors matched by *Error through errors.Is.
var (
	ErrDisplayUnavailable    = errors.New("egl: display unavailable")
	ErrInitFailed            = errors.New("egl: initialize failed")
	ErrConfigUnavailable     = errors.New("egl: no matching config")
	ErrContextCreationFailed = errors.New("egl: context creation failed")
	ErrSurfaceCreationFailed = errors.New("egl: window surface creation failed")
	ErrMakeCurrentFailed     = errors.New("egl: make current failed")

	// ErrBadNativeWindow matches surface creation failures caused by an
	// invalid or already destroyed native window.
	ErrBadNativeWindow = errors.New("egl: bad native window")

	// ErrNilDriver is returned by Initialize when no driver is supplied.
	ErrNilDriver = errors.New("egl: nil driver")

	// ErrContextInvalid is returned by operations on a torn down Context.
	ErrContextInvalid = errors.New("egl: context is not valid")
)

var kindErrors = map[Kind]error{
	KindDisplayUnavailable:    ErrDisplayUnavailable,
	KindInitFailed:            ErrInitFailed,
	KindConfigUnavailable:     ErrConfigUnavailable,
	KindContextCreationFailed: ErrContextCreationFailed,
	KindSurfaceCreationFailed: ErrSurfaceCreationFailed,
	KindMakeCurrentFailed:     ErrMakeCurrentFailed,
}

// Error reports a failed context initialization step together with the
// platform error code read right after the failing call.
type Error struct {
	Kind   Kind
	Code   ErrorCode
	Driver string
}

func (e *Error) Error() string {
	if e.Kind == KindSurfaceCreationFailed && e.Code == BadNativeWindow {
		return fmt.Sprintf("egl: %s returned %s (driver %s)", e.Kind, e.Code, e.Driver)
	}
	return fmt.Sprintf("egl: %s failed: %s (driver %s)", e.Kind, e.Code, e.Driver)
}

// Is reports whether target is the sentinel for e's kind, or
// ErrBadNativeWindow for a surface failure with that code.
func (e *Error) Is(target error) bool {
	if target == ErrBadNativeWindow {
		return e.Kind == KindSurfaceCreationFailed && e.Code == BadNativeWindow
	}
	return kindErrors[e.Kind] == target
}

// SwapError reports a failed eglSwapBuffers call.
type SwapError struct {
	Code ErrorCode
}

func (e *SwapError) Error() string {
	return "egl: eglSwapBuffers failed: " + e.Code.String()
}
