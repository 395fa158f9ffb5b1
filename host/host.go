// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package host

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/renderloop"
	"github.com/gogpu/renderloop/egl"
)

var (
	// ErrClosed is returned by SurfaceAvailable after Close.
	ErrClosed = errors.New("host: closed")

	// ErrSurfaceActive is returned when a surface already has a running loop.
	ErrSurfaceActive = errors.New("host: surface already has a render loop")
)

// Factory builds the renderer for a newly available surface.
type Factory func(win egl.NativeWindow, width, height int) (renderloop.Renderer, error)

// viewportSetter is implemented by renderers that need the surface size
// before their Init runs.
type viewportSetter interface {
	SetViewport(width, height int)
}

// Host reacts to surface lifecycle events from the UI thread by starting
// and stopping one render loop per surface.
//
// Every method is non-blocking except Close, and all are safe for
// concurrent use.
type Host struct {
	factory  Factory
	loopOpts []renderloop.Option

	mu      sync.Mutex
	closed  bool
	active  map[egl.NativeWindow]*renderloop.Loop
	retired []*renderloop.Loop
}

// Option configures a Host.
type Option func(*Host)

// WithLoopOptions passes options to every loop the host starts.
func WithLoopOptions(opts ...renderloop.Option) Option {
	return func(h *Host) {
		h.loopOpts = append(h.loopOpts, opts...)
	}
}

// New creates a host that builds renderers with factory.
func New(factory Factory, opts ...Option) *Host {
	h := &Host{
		factory: factory,
		active:  make(map[egl.NativeWindow]*renderloop.Loop),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// SurfaceAvailable builds a renderer for win, hands it the surface size
// and starts a render loop with a fresh stop signal. It returns once the
// worker is spawned; context initialization errors surface through the
// loop's Err. When the host is closed or win already has a loop, the built
// renderer is discarded before Init.
func (h *Host) SurfaceAvailable(win egl.NativeWindow, width, height int) error {
	log := renderloop.Logger().With("window", uint64(win))

	// Build outside the lock; SurfaceDestroyed must not wait on a factory.
	var r renderloop.Renderer
	if h.factory != nil {
		var err error
		r, err = h.factory(win, width, height)
		if err != nil {
			return fmt.Errorf("host: build renderer: %w", err)
		}
	}
	if vs, ok := r.(viewportSetter); ok {
		vs.SetViewport(width, height)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return ErrClosed
	}
	if _, ok := h.active[win]; ok {
		return ErrSurfaceActive
	}

	loop := renderloop.New(win, r, renderloop.NewStopSignal(), h.loopOpts...)
	if err := loop.Start(); err != nil {
		return fmt.Errorf("host: start render loop: %w", err)
	}
	h.active[win] = loop
	log.Info("host: surface available", "width", width, "height", height)
	return nil
}

// SurfaceSizeChanged is called when the surface is resized. The running
// loop keeps its original viewport.
func (h *Host) SurfaceSizeChanged(win egl.NativeWindow, width, height int) {
	renderloop.Logger().Debug("host: surface size changed, ignored",
		"window", uint64(win), "width", width, "height", height)
}

// SurfaceDestroyed asks the loop rendering to win to stop and returns
// immediately without waiting for it. It always returns true: the caller
// may release the surface.
func (h *Host) SurfaceDestroyed(win egl.NativeWindow) bool {
	log := renderloop.Logger().With("window", uint64(win))

	h.mu.Lock()
	defer h.mu.Unlock()
	loop, ok := h.active[win]
	if !ok {
		log.Warn("host: destroyed surface has no render loop")
		return true
	}
	loop.RequestStop()
	delete(h.active, win)
	h.retired = append(pruneTerminated(h.retired), loop)
	log.Info("host: surface destroyed")
	return true
}

// Loop returns the loop currently rendering to win.
func (h *Host) Loop(win egl.NativeWindow) (*renderloop.Loop, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	loop, ok := h.active[win]
	return loop, ok
}

// Active returns the number of surfaces with a running loop.
func (h *Host) Active() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.active)
}

// Close stops every loop, including those already asked to stop, and
// waits until all workers have terminated or ctx is done. It returns the
// workers' errors joined, or ctx's error on timeout.
func (h *Host) Close(ctx context.Context) error {
	h.mu.Lock()
	h.closed = true
	loops := h.retired
	for win, loop := range h.active {
		loop.RequestStop()
		loops = append(loops, loop)
		delete(h.active, win)
	}
	h.retired = nil
	h.mu.Unlock()

	var errs []error
	for _, loop := range loops {
		select {
		case <-loop.Done():
			if err := loop.Err(); err != nil {
				errs = append(errs, err)
			}
		case <-ctx.Done():
			return fmt.Errorf("host: waiting for render loops: %w", ctx.Err())
		}
	}
	renderloop.Logger().Info("host: closed", "loops", len(loops))
	return errors.Join(errs...)
}

func pruneTerminated(loops []*renderloop.Loop) []*renderloop.Loop {
	kept := loops[:0]
	for _, l := range loops {
		select {
		case <-l.Done():
		default:
			kept = append(kept, l)
		}
	}
	return kept
}
