// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

// Renderer draws frames into the graphics context a Loop makes current.
//
// All three methods are called on the loop's worker goroutine with the
// context current:
//
//	Init once, after the context is ready. Returning false skips the frame loop.
//	DrawFrame once per frame with the seconds elapsed since the previous frame.
//	Destroy once after the frame loop ends, whenever Init was called.
//
// None of them is called when the graphics context fails to initialize.
type Renderer interface {
	Init() bool
	DrawFrame(dt float32)
	Destroy()
}

// RendererFuncs adapts plain functions to Renderer. Nil fields are no-ops,
// and a nil InitFunc counts as success.
type RendererFuncs struct {
	InitFunc      func() bool
	DrawFrameFunc func(dt float32)
	DestroyFunc   func()
}

// Init implements Renderer.
func (f RendererFuncs) Init() bool {
	if f.InitFunc == nil {
		return true
	}
	return f.InitFunc()
}

// DrawFrame implements Renderer.
func (f RendererFuncs) DrawFrame(dt float32) {
	if f.DrawFrameFunc != nil {
		f.DrawFrameFunc(dt)
	}
}

// Destroy implements Renderer.
func (f RendererFuncs) Destroy() {
	if f.DestroyFunc != nil {
		f.DestroyFunc()
	}
}
