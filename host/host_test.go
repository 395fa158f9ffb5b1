// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gogpu/renderloop"
	"github.com/gogpu/renderloop/egl"
	"github.com/gogpu/renderloop/egl/soft"
	"github.com/gogpu/renderloop/skeleton"
)

func sceneFactory(t *testing.T, d *soft.Display) Factory {
	return func(win egl.NativeWindow, width, height int) (renderloop.Renderer, error) {
		w, ok := d.Window(win)
		if !ok {
			t.Errorf("factory called with unknown window %v", win)
			return nil, errors.New("unknown window")
		}
		return skeleton.New(w, skeleton.Defaults()), nil
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(time.Millisecond)
	}
}

func closeHost(t *testing.T, h *Host) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return h.Close(ctx)
}

func TestHostSurfaceLifecycle(t *testing.T) {
	d := soft.NewDisplay()
	win := d.NewWindow(320, 240)
	h := New(sceneFactory(t, d), WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(win.Handle(), 320, 240); err != nil {
		t.Fatalf("SurfaceAvailable() = %v", err)
	}
	if h.Active() != 1 {
		t.Errorf("Active() = %d, want 1", h.Active())
	}
	loop, ok := h.Loop(win.Handle())
	if !ok {
		t.Fatal("Loop() found no loop for the surface")
	}

	waitFor(t, "a presented frame", func() bool { return win.Presented() > 0 })
	if px := win.Snapshot().RGBAAt(160, 110); px.A == 0 {
		t.Error("presented frame has no skeleton at the torso")
	}

	h.SurfaceSizeChanged(win.Handle(), 640, 480)

	if !h.SurfaceDestroyed(win.Handle()) {
		t.Fatal("SurfaceDestroyed() = false")
	}
	if h.Active() != 0 {
		t.Errorf("Active() = %d after destroy, want 0", h.Active())
	}
	if loop.Signal().Active() {
		t.Error("stop signal still active after SurfaceDestroyed")
	}

	if err := closeHost(t, h); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	if loop.State() != renderloop.StateTerminated {
		t.Errorf("loop state = %s, want terminated", loop.State())
	}
	if stats := d.Stats(); stats.LiveContexts() != 0 || stats.LiveSurfaces() != 0 {
		t.Errorf("live contexts/surfaces = %d/%d after Close", stats.LiveContexts(), stats.LiveSurfaces())
	}
}

func TestHostSurfaceRecreated(t *testing.T) {
	d := soft.NewDisplay()
	win := d.NewWindow(64, 64)
	h := New(sceneFactory(t, d), WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(win.Handle(), 64, 64); err != nil {
		t.Fatal(err)
	}
	if err := h.SurfaceAvailable(win.Handle(), 64, 64); !errors.Is(err, ErrSurfaceActive) {
		t.Errorf("second SurfaceAvailable() = %v, want ErrSurfaceActive", err)
	}

	first, _ := h.Loop(win.Handle())
	h.SurfaceDestroyed(win.Handle())
	<-first.Done()

	if err := h.SurfaceAvailable(win.Handle(), 64, 64); err != nil {
		t.Fatalf("SurfaceAvailable() after destroy = %v", err)
	}
	second, _ := h.Loop(win.Handle())
	if second == first {
		t.Error("a new surface must get a new loop")
	}
	if err := closeHost(t, h); err != nil {
		t.Fatalf("Close() = %v", err)
	}
}

func TestHostViewport(t *testing.T) {
	d := soft.NewDisplay()
	win := d.NewWindow(50, 40)
	var sc *skeleton.Scene
	factory := func(w egl.NativeWindow, width, height int) (renderloop.Renderer, error) {
		target, _ := d.Window(w)
		sc = skeleton.New(target, skeleton.Defaults())
		return sc, nil
	}
	h := New(factory, WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(win.Handle(), 50, 40); err != nil {
		t.Fatal(err)
	}
	if w, ht := sc.Viewport(); w != 50 || ht != 40 {
		t.Errorf("renderer viewport = %dx%d, want 50x40", w, ht)
	}
	if err := closeHost(t, h); err != nil {
		t.Fatal(err)
	}
}

func TestHostFactoryError(t *testing.T) {
	boom := errors.New("no assets")
	h := New(func(egl.NativeWindow, int, int) (renderloop.Renderer, error) { return nil, boom })

	err := h.SurfaceAvailable(1, 10, 10)
	if !errors.Is(err, boom) {
		t.Errorf("SurfaceAvailable() = %v, want %v", err, boom)
	}
	if h.Active() != 0 {
		t.Error("failed surface registered a loop")
	}
}

func TestHostInitFailureReportedOnClose(t *testing.T) {
	d := soft.NewDisplay()
	win := d.NewWindow(8, 8)
	win.Release()
	h := New(nil, WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(win.Handle(), 8, 8); err != nil {
		t.Fatalf("SurfaceAvailable() = %v, context errors are asynchronous", err)
	}
	loop, _ := h.Loop(win.Handle())
	<-loop.Done()

	if err := closeHost(t, h); !errors.Is(err, egl.ErrBadNativeWindow) {
		t.Errorf("Close() = %v, want ErrBadNativeWindow", err)
	}
}

func TestHostDestroyUnknownSurface(t *testing.T) {
	h := New(nil)
	if !h.SurfaceDestroyed(42) {
		t.Error("SurfaceDestroyed() = false for an unknown surface")
	}
}

func TestHostClosed(t *testing.T) {
	h := New(nil)
	if err := closeHost(t, h); err != nil {
		t.Fatalf("Close() on empty host = %v", err)
	}
	if err := h.SurfaceAvailable(1, 1, 1); !errors.Is(err, ErrClosed) {
		t.Errorf("SurfaceAvailable() after Close = %v, want ErrClosed", err)
	}
}

func TestHostCloseTimeout(t *testing.T) {
	d := soft.NewDisplay()
	win := d.NewWindow(8, 8)
	release := make(chan struct{})
	var drawing atomic.Bool
	blocking := renderloop.RendererFuncs{
		DrawFrameFunc: func(float32) {
			drawing.Store(true)
			<-release
		},
	}
	h := New(func(egl.NativeWindow, int, int) (renderloop.Renderer, error) { return blocking, nil },
		WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(win.Handle(), 8, 8); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "the first frame", drawing.Load)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := h.Close(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("Close() = %v, want DeadlineExceeded", err)
	}

	loop, _ := h.Loop(win.Handle())
	close(release)
	if loop != nil {
		t.Error("Close should have removed the loop from the active set")
	}
	waitFor(t, "teardown", func() bool { return d.Stats().LiveContexts() == 0 })
}

func TestHostSlowFactoryDoesNotBlockDestroy(t *testing.T) {
	d := soft.NewDisplay()
	fast := d.NewWindow(16, 16)
	slow := d.NewWindow(16, 16)

	entered := make(chan struct{})
	gate := make(chan struct{})
	build := sceneFactory(t, d)
	h := New(func(win egl.NativeWindow, width, height int) (renderloop.Renderer, error) {
		if win == slow.Handle() {
			close(entered)
			<-gate
		}
		return build(win, width, height)
	}, WithLoopOptions(renderloop.WithDriver(d)))

	if err := h.SurfaceAvailable(fast.Handle(), 16, 16); err != nil {
		t.Fatal(err)
	}

	started := make(chan error, 1)
	go func() { started <- h.SurfaceAvailable(slow.Handle(), 16, 16) }()
	<-entered

	destroyed := make(chan bool, 1)
	go func() { destroyed <- h.SurfaceDestroyed(fast.Handle()) }()
	select {
	case ok := <-destroyed:
		if !ok {
			t.Error("SurfaceDestroyed() = false")
		}
	case <-time.After(time.Second):
		close(gate)
		t.Fatal("SurfaceDestroyed blocked behind a renderer factory")
	}

	close(gate)
	if err := <-started; err != nil {
		t.Fatalf("SurfaceAvailable(slow) = %v", err)
	}
	if h.Active() != 1 {
		t.Errorf("Active() = %d, want 1", h.Active())
	}
	if err := closeHost(t, h); err != nil {
		t.Errorf("Close() = %v", err)
	}
}
