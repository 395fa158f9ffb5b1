// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package soft is an in-process EGL driver that renders with gg.
//
// A Display implements egl.Driver without any native library. Its windows
// carry a gg back buffer and a front buffer that SwapBuffers fills in the
// surface's pixel format, so frames can be inspected or written to disk:
//
//	d := soft.NewDisplay()
//	win := d.NewWindow(320, 240)
//	ctx, err := egl.Initialize(d, win.Handle())
//	...
//	win.Canvas().DrawCircle(160, 120, 40)
//	win.Canvas().Fill()
//	ctx.SwapBuffers()
//	img := win.Snapshot()
//
// Importing the package registers it with egl under the name "soft" at
// a lower priority than platform drivers. Registry-opened drivers share
// the display returned by Default.
//
// Faults can be injected per entry point with WithFault or InjectFault,
// which makes the driver useful for exercising error paths.
package soft
