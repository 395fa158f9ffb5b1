// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

import "fmt"

// Display is an opaque EGL display connection handle.
type Display uintptr

// Config is an opaque EGL frame buffer configuration handle.
type Config uintptr

// ContextHandle is an opaque EGL rendering context handle.
type ContextHandle uintptr

// Surface is an opaque EGL drawing surface handle.
type Surface uintptr

// NativeWindow is the platform window a window surface is bound to.
// On Android this is an ANativeWindow pointer; the software driver
// hands out its own identifiers.
type NativeWindow uintptr

// Sentinel handles. A zero handle never refers to a live object.
const (
	NoDisplay Display       = 0
	NoConfig  Config        = 0
	NoContext ContextHandle = 0
	NoSurface Surface       = 0
)

// Attribute names and values used when choosing a config and creating a
// context. Values match <EGL/egl.h>.
const (
	BufferSize           int32 = 0x3020
	AlphaSize            int32 = 0x3021
	BlueSize             int32 = 0x3022
	GreenSize            int32 = 0x3023
	RedSize              int32 = 0x3024
	SurfaceType          int32 = 0x3033
	None                 int32 = 0x3038
	RenderableType       int32 = 0x3040
	ContextClientVersion int32 = 0x3098

	PbufferBit int32 = 0x0001
	PixmapBit  int32 = 0x0002
	WindowBit  int32 = 0x0004

	OpenGLESBit  int32 = 0x0001
	OpenGLES2Bit int32 = 0x0004
	OpenGLES3Bit int32 = 0x0040
)

// ErrorCode is an EGL error value as returned by eglGetError.
type ErrorCode int32

// EGL error codes.
const (
	Success           ErrorCode = 0x3000
	NotInitialized    ErrorCode = 0x3001
	BadAccess         ErrorCode = 0x3002
	BadAlloc          ErrorCode = 0x3003
	BadAttribute      ErrorCode = 0x3004
	BadConfig         ErrorCode = 0x3005
	BadContext        ErrorCode = 0x3006
	BadCurrentSurface ErrorCode = 0x3007
	BadDisplay        ErrorCode = 0x3008
	BadMatch          ErrorCode = 0x3009
	BadNativePixmap   ErrorCode = 0x300A
	BadNativeWindow   ErrorCode = 0x300B
	BadParameter      ErrorCode = 0x300C
	BadSurface        ErrorCode = 0x300D
	ContextLost       ErrorCode = 0x300E
)

var errorNames = map[ErrorCode]string{
	Success:           "EGL_SUCCESS",
	NotInitialized:    "EGL_NOT_INITIALIZED",
	BadAccess:         "EGL_BAD_ACCESS",
	BadAlloc:          "EGL_BAD_ALLOC",
	BadAttribute:      "EGL_BAD_ATTRIBUTE",
	BadConfig:         "EGL_BAD_CONFIG",
	BadContext:        "EGL_BAD_CONTEXT",
	BadCurrentSurface: "EGL_BAD_CURRENT_SURFACE",
	BadDisplay:        "EGL_BAD_DISPLAY",
	BadMatch:          "EGL_BAD_MATCH",
	BadNativePixmap:   "EGL_BAD_NATIVE_PIXMAP",
	BadNativeWindow:   "EGL_BAD_NATIVE_WINDOW",
	BadParameter:      "EGL_BAD_PARAMETER",
	BadSurface:        "EGL_BAD_SURFACE",
	ContextLost:       "EGL_CONTEXT_LOST",
}

// String returns the EGL constant name, e.g. "EGL_BAD_NATIVE_WINDOW".
func (c ErrorCode) String() string {
	if name, ok := errorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("0x%04x", int32(c))
}
