// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"fmt"
	"log/slog"
	"runtime"
	"runtime/debug"
	"sync/atomic"

	"github.com/gogpu/renderloop/egl"
)

// Loop renders frames on a dedicated worker goroutine that owns an EGL
// context for one native window.
//
// The worker initializes the context, runs the renderer's frames paced to
// the frame budget until the StopSignal is cleared, then destroys the
// renderer and tears the context down. A Loop is single use.
//
// Start, RequestStop, Done, Wait, Err, State and Stats are safe for
// concurrent use.
type Loop struct {
	win      egl.NativeWindow
	renderer Renderer
	stop     *StopSignal
	opts     options

	started atomic.Bool
	state   atomic.Int32
	done    chan struct{}

	// err is written by the worker before done is closed.
	err error

	counters counters
}

// New creates a Loop for win. r may be nil, in which case the worker only
// creates and tears down the context. A nil stop gets a fresh signal.
func New(win egl.NativeWindow, r Renderer, stop *StopSignal, opts ...Option) *Loop {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if stop == nil {
		stop = NewStopSignal()
	}
	return &Loop{
		win:      win,
		renderer: r,
		stop:     stop,
		opts:     o,
		done:     make(chan struct{}),
	}
}

// Start spawns the worker goroutine and returns immediately.
func (l *Loop) Start() error {
	if !l.started.CompareAndSwap(false, true) {
		return ErrAlreadyStarted
	}
	go l.run()
	return nil
}

// RequestStop clears the stop signal. The worker finishes its current
// frame, then tears down. RequestStop does not wait.
func (l *Loop) RequestStop() {
	l.stop.Stop()
	l.state.CompareAndSwap(int32(StateRunning), int32(StateStopRequested))
}

// Signal returns the stop signal shared with the worker.
func (l *Loop) Signal() *StopSignal {
	return l.stop
}

// Done returns a channel closed once the worker has terminated.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Wait blocks until the worker terminates and returns Err.
// It returns ErrNotStarted if Start was never called.
func (l *Loop) Wait() error {
	if !l.started.Load() {
		return ErrNotStarted
	}
	<-l.done
	return l.err
}

// Err returns the worker's fatal error once it has terminated: the
// context initialization error, or a *FrameError for a recovered panic.
// It returns nil while the worker is running.
func (l *Loop) Err() error {
	select {
	case <-l.done:
		return l.err
	default:
		return nil
	}
}

// State returns the current lifecycle stage.
func (l *Loop) State() State {
	return State(l.state.Load())
}

// Stats returns a snapshot of the frame counters.
func (l *Loop) Stats() Stats {
	return l.counters.snapshot()
}

func (l *Loop) setState(s State) {
	l.state.Store(int32(s))
}

func (l *Loop) run() {
	// EGL binds the current context to the calling OS thread.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.done)

	log := Logger().With("window", uint64(l.win))
	l.setState(StateInitializing)
	log.Info("renderloop: worker started")

	ctx, err := l.initContext(log)
	switch {
	case err != nil:
		l.err = err
		l.setState(StateInitFailed)
		log.Error("renderloop: graphics context init failed", "err", err)
	case l.renderer == nil:
		log.Debug("renderloop: no renderer attached")
	default:
		if l.renderer.Init() {
			l.setState(StateRunning)
			if err := l.drawFrames(ctx, log); err != nil {
				l.err = err
			}
		} else {
			log.Warn("renderloop: renderer init failed, skipping frames")
		}
		l.renderer.Destroy()
	}

	l.setState(StateTearingDown)
	ctx.Teardown()
	l.setState(StateTerminated)
	log.Info("renderloop: worker terminated", "frames", l.counters.frames.Load())
}

func (l *Loop) initContext(log *slog.Logger) (*egl.Context, error) {
	drv := l.opts.driver
	if drv == nil {
		var err error
		if l.opts.driverName != "" {
			drv, err = egl.Open(l.opts.driverName)
		} else {
			drv, err = egl.OpenDefault()
		}
		if err != nil {
			return nil, fmt.Errorf("renderloop: open egl driver: %w", err)
		}
	}
	ctx, err := egl.Initialize(drv, l.win, l.opts.eglOpts...)
	if err != nil {
		return nil, err
	}
	major, minor := ctx.Version()
	log.Debug("renderloop: graphics context ready", "driver", drv.Name(), "egl", fmt.Sprintf("%d.%d", major, minor))
	return ctx, nil
}

// drawFrames runs the frame loop until the stop signal clears. A panic in
// the renderer or the swap is returned as *FrameError.
func (l *Loop) drawFrames(ctx *egl.Context, log *slog.Logger) (err error) {
	defer func() {
		if p := recover(); p != nil {
			fe := &FrameError{Frame: l.counters.frames.Load(), Value: p, Stack: debug.Stack()}
			log.Error("renderloop: frame panicked", "frame", fe.Frame, "panic", p)
			err = fe
		}
	}()

	clock, budget := l.opts.clock, l.opts.budget
	last := clock.Now()
	for l.stop.Active() {
		now := clock.Now()
		elapsed := now.Sub(last)
		last = now
		l.counters.lastDelta.Store(int64(elapsed))

		l.renderer.DrawFrame(float32(elapsed.Seconds()))
		if err := ctx.SwapBuffers(); err != nil {
			l.counters.swapFailures.Add(1)
			log.Warn("renderloop: swap buffers failed", "err", err)
		}
		l.counters.frames.Add(1)

		if elapsed < budget {
			pause := budget - elapsed
			if err := clock.Sleep(pause); err != nil {
				log.Warn("renderloop: frame sleep interrupted", "err", err)
			} else {
				l.counters.slept.Add(int64(pause))
			}
		}
	}
	l.state.CompareAndSwap(int32(StateRunning), int32(StateStopRequested))
	return nil
}
