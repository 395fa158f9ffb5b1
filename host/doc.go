// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package host connects surface lifecycle callbacks from a UI toolkit to
// render loops.
//
// The UI thread reports surfaces as they come and go. Each available
// surface gets its own renderer, StopSignal and renderloop.Loop; a
// destroyed surface only has its signal cleared, so the UI thread never
// blocks on the render worker:
//
//	h := host.New(func(win egl.NativeWindow, w, h int) (renderloop.Renderer, error) {
//	    return skeleton.New(target, cfg), nil
//	}, host.WithLoopOptions(renderloop.WithDriverName("soft")))
//
//	h.SurfaceAvailable(win, 1080, 1920) // from the UI callback
//	...
//	h.SurfaceDestroyed(win)             // returns immediately
//	...
//	h.Close(ctx)                        // at shutdown, waits for workers
package host
