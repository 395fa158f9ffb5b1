// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build android && cgo

package egl

/*
#cgo LDFLAGS: -lEGL
#include <stdint.h>
#include <EGL/egl.h>

// Handles cross the Go boundary as uintptr_t so Go never holds a C pointer
// typed as unsafe.Pointer.

static uintptr_t rl_get_display(void) {
	return (uintptr_t)eglGetDisplay(EGL_DEFAULT_DISPLAY);
}

static EGLBoolean rl_initialize(uintptr_t d, EGLint *major, EGLint *minor) {
	return eglInitialize((EGLDisplay)d, major, minor);
}

static EGLBoolean rl_choose_config(uintptr_t d, const EGLint *attribs, uintptr_t *out, EGLint size, EGLint *n) {
	EGLConfig configs[16];
	if (size > 16) {
		size = 16;
	}
	EGLBoolean ok = eglChooseConfig((EGLDisplay)d, attribs, configs, size, n);
	if (ok) {
		for (EGLint i = 0; i < *n && i < size; i++) {
			out[i] = (uintptr_t)configs[i];
		}
	}
	return ok;
}

static uintptr_t rl_create_context(uintptr_t d, uintptr_t c, uintptr_t share, const EGLint *attribs) {
	return (uintptr_t)eglCreateContext((EGLDisplay)d, (EGLConfig)c, (EGLContext)share, attribs);
}

static uintptr_t rl_create_window_surface(uintptr_t d, uintptr_t c, uintptr_t win) {
	return (uintptr_t)eglCreateWindowSurface((EGLDisplay)d, (EGLConfig)c, (EGLNativeWindowType)win, NULL);
}

static EGLBoolean rl_make_current(uintptr_t d, uintptr_t draw, uintptr_t read, uintptr_t ctx) {
	return eglMakeCurrent((EGLDisplay)d, (EGLSurface)draw, (EGLSurface)read, (EGLContext)ctx);
}

static EGLBoolean rl_swap_buffers(uintptr_t d, uintptr_t s) {
	return eglSwapBuffers((EGLDisplay)d, (EGLSurface)s);
}

static EGLBoolean rl_destroy_context(uintptr_t d, uintptr_t ctx) {
	return eglDestroyContext((EGLDisplay)d, (EGLContext)ctx);
}

static EGLBoolean rl_destroy_surface(uintptr_t d, uintptr_t s) {
	return eglDestroySurface((EGLDisplay)d, (EGLSurface)s);
}
*/
import "C"

const maxConfigs = 16

func init() {
	Register("android", 100, func() (Driver, error) { return androidDriver{}, nil }, nil)
}

// androidDriver calls the system libEGL. It is stateless: EGL keeps
// per-thread state itself.
type androidDriver struct{}

func (androidDriver) Name() string { return "android" }

func (androidDriver) GetDisplay() Display {
	return Display(C.rl_get_display())
}

func (androidDriver) Initialize(d Display) (int32, int32, bool) {
	var major, minor C.EGLint
	ok := C.rl_initialize(C.uintptr_t(d), &major, &minor) == C.EGL_TRUE
	return int32(major), int32(minor), ok
}

func (androidDriver) ChooseConfig(d Display, attribs []int32, size int) ([]Config, bool) {
	if size <= 0 {
		return nil, true
	}
	if size > maxConfigs {
		size = maxConfigs
	}
	list := toEGLints(attribs)
	out := make([]C.uintptr_t, size)
	var n C.EGLint
	if C.rl_choose_config(C.uintptr_t(d), &list[0], &out[0], C.EGLint(size), &n) != C.EGL_TRUE {
		return nil, false
	}
	configs := make([]Config, 0, int(n))
	for i := 0; i < int(n) && i < size; i++ {
		configs = append(configs, Config(out[i]))
	}
	return configs, true
}

func (androidDriver) CreateContext(d Display, c Config, share ContextHandle, attribs []int32) ContextHandle {
	list := toEGLints(attribs)
	return ContextHandle(C.rl_create_context(C.uintptr_t(d), C.uintptr_t(c), C.uintptr_t(share), &list[0]))
}

func (androidDriver) CreateWindowSurface(d Display, c Config, win NativeWindow) Surface {
	return Surface(C.rl_create_window_surface(C.uintptr_t(d), C.uintptr_t(c), C.uintptr_t(win)))
}

func (androidDriver) MakeCurrent(d Display, draw, read Surface, ctx ContextHandle) bool {
	return C.rl_make_current(C.uintptr_t(d), C.uintptr_t(draw), C.uintptr_t(read), C.uintptr_t(ctx)) == C.EGL_TRUE
}

func (androidDriver) SwapBuffers(d Display, s Surface) bool {
	return C.rl_swap_buffers(C.uintptr_t(d), C.uintptr_t(s)) == C.EGL_TRUE
}

func (androidDriver) DestroyContext(d Display, ctx ContextHandle) bool {
	return C.rl_destroy_context(C.uintptr_t(d), C.uintptr_t(ctx)) == C.EGL_TRUE
}

func (androidDriver) DestroySurface(d Display, s Surface) bool {
	return C.rl_destroy_surface(C.uintptr_t(d), C.uintptr_t(s)) == C.EGL_TRUE
}

func (androidDriver) GetError() ErrorCode {
	return ErrorCode(C.eglGetError())
}

// toEGLints copies attribs into C-sized ints, always None-terminated.
func toEGLints(attribs []int32) []C.EGLint {
	list := make([]C.EGLint, 0, len(attribs)+1)
	for _, v := range attribs {
		list = append(list, C.EGLint(v))
	}
	if len(list) == 0 || list[len(list)-1] != C.EGLint(None) {
		list = append(list, C.EGLint(None))
	}
	return list
}
