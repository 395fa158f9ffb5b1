// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"time"

	"github.com/gogpu/renderloop/egl"
)

// Option configures a Loop.
//
// Example:
//
//	loop := renderloop.New(win, r, stop,
//	    renderloop.WithDriverName("soft"),
//	    renderloop.WithFrameBudget(time.Second/60),
//	)
type Option func(*options)

type options struct {
	driver     egl.Driver
	driverName string
	clock      Clock
	budget     time.Duration
	eglOpts    []egl.Option
}

func defaultOptions() options {
	return options{
		clock:  SystemClock(),
		budget: DefaultFrameBudget,
	}
}

// WithDriver sets the EGL driver directly. It takes precedence over
// WithDriverName.
func WithDriver(d egl.Driver) Option {
	return func(o *options) {
		o.driver = d
	}
}

// WithDriverName opens the named driver from the egl registry when the
// worker starts. Without either driver option the highest-priority
// available driver is used.
func WithDriverName(name string) Option {
	return func(o *options) {
		o.driverName = name
	}
}

// WithClock replaces the system clock. Intended for tests.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithFrameBudget sets the target frame interval. Non-positive values
// keep DefaultFrameBudget.
func WithFrameBudget(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.budget = d
		}
	}
}

// WithAttributes overrides the EGL config and context attributes.
func WithAttributes(a egl.Attributes) Option {
	return func(o *options) {
		o.eglOpts = append(o.eglOpts, egl.WithAttributes(a))
	}
}
