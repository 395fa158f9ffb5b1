// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"image"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gg"
	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"

	"github.com/gogpu/renderloop/egl"
)

// Window is a native window for the software driver.
//
// Rendering goes to the back buffer returned by Canvas. SwapBuffers on a
// surface bound to the window copies the back buffer into the front buffer
// in the surface's pixel format. Snapshot reads the front buffer and may be
// called from any goroutine.
//
// The owner of the window (usually the UI side) may Release it at any
// time. After that no new surface can be bound to it and swaps on an
// existing surface fail with EGL_BAD_NATIVE_WINDOW.
type Window struct {
	handle egl.NativeWindow
	width  int
	height int

	// canvas is only touched by the goroutine that owns the bound context.
	canvas  *gg.Context
	scratch *image.RGBA

	mu       sync.Mutex
	front    []byte
	format   gputypes.TextureFormat
	packed   bool
	released bool
	bound    bool

	presented atomic.Uint64
}

func newWindow(handle egl.NativeWindow, width, height int) *Window {
	return &Window{
		handle:  handle,
		width:   width,
		height:  height,
		canvas:  gg.NewContext(width, height),
		scratch: image.NewRGBA(image.Rect(0, 0, width, height)),
		front:   make([]byte, width*height*4),
		format:  gputypes.TextureFormatRGBA8Unorm,
	}
}

// Handle returns the native window handle to pass to egl.Initialize.
func (w *Window) Handle() egl.NativeWindow {
	return w.handle
}

// Size returns the window size in pixels.
func (w *Window) Size() (width, height int) {
	return w.width, w.height
}

// Canvas returns the back buffer drawing context.
func (w *Window) Canvas() *gg.Context {
	return w.canvas
}

// Release marks the window as destroyed by its owner.
// Release is idempotent and safe for concurrent use.
func (w *Window) Release() {
	w.mu.Lock()
	w.released = true
	w.mu.Unlock()
}

// Released reports whether Release was called.
func (w *Window) Released() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.released
}

// Presented returns the number of frames posted to the front buffer.
func (w *Window) Presented() uint64 {
	return w.presented.Load()
}

// Format returns the pixel format of the front buffer.
func (w *Window) Format() gputypes.TextureFormat {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.format
}

// FrontBuffer returns a copy of the front buffer bytes and their format.
func (w *Window) FrontBuffer() ([]byte, gputypes.TextureFormat) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]byte, len(w.front))
	copy(out, w.front)
	return out, w.format
}

// Snapshot returns the front buffer converted to RGBA.
func (w *Window) Snapshot() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, w.width, w.height))
	copy(img.Pix, w.front)
	if w.format == gputypes.TextureFormatBGRA8Unorm {
		swapRB(img.Pix)
	}
	return img
}

// bind attaches a surface with the given config. It fails when the window
// is released or already has a surface.
func (w *Window) bind(cfg ConfigDesc) egl.ErrorCode {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.released {
		return egl.BadNativeWindow
	}
	if w.bound {
		return egl.BadAlloc
	}
	w.bound = true
	w.format = cfg.Format
	w.packed = cfg.Format == gputypes.TextureFormatUndefined
	if w.format == gputypes.TextureFormatUndefined {
		w.format = gputypes.TextureFormatRGBA8Unorm
	}
	return egl.Success
}

func (w *Window) unbind() {
	w.mu.Lock()
	w.bound = false
	w.mu.Unlock()
}

// present copies the back buffer to the front buffer.
func (w *Window) present() egl.ErrorCode {
	draw.Draw(w.scratch, w.scratch.Bounds(), w.canvas.Image(), image.Point{}, draw.Src)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.released {
		return egl.BadNativeWindow
	}
	copy(w.front, w.scratch.Pix)
	switch {
	case w.format == gputypes.TextureFormatBGRA8Unorm:
		swapRB(w.front)
	case w.packed:
		quantize565(w.front)
	}
	w.presented.Add(1)
	return egl.Success
}

func swapRB(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+2] = pix[i+2], pix[i]
	}
}

// quantize565 drops the precision an RGB565 buffer cannot hold and makes
// the frame opaque.
func quantize565(pix []byte) {
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i] &^= 0x07
		pix[i+1] &^= 0x03
		pix[i+2] &^= 0x07
		pix[i+3] = 0xff
	}
}
