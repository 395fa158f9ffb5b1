// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"testing"
	"time"

	"github.com/gogpu/renderloop/egl"
	"github.com/gogpu/renderloop/egl/soft"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.budget != DefaultFrameBudget {
		t.Errorf("budget = %v, want %v", o.budget, DefaultFrameBudget)
	}
	if o.clock == nil {
		t.Error("clock is nil")
	}
	if o.driver != nil || o.driverName != "" {
		t.Error("no driver should be preselected")
	}
}

func TestOptions(t *testing.T) {
	d := soft.NewDisplay()
	clk := &fakeClock{}

	tests := []struct {
		name  string
		opt   Option
		check func(t *testing.T, o options)
	}{
		{"WithDriver", WithDriver(d), func(t *testing.T, o options) {
			if o.driver != egl.Driver(d) {
				t.Error("driver not set")
			}
		}},
		{"WithDriverName", WithDriverName("soft"), func(t *testing.T, o options) {
			if o.driverName != "soft" {
				t.Errorf("driverName = %q", o.driverName)
			}
		}},
		{"WithClock", WithClock(clk), func(t *testing.T, o options) {
			if o.clock != Clock(clk) {
				t.Error("clock not set")
			}
		}},
		{"WithClock nil", WithClock(nil), func(t *testing.T, o options) {
			if o.clock == nil {
				t.Error("nil clock replaced the default")
			}
		}},
		{"WithFrameBudget", WithFrameBudget(time.Second / 60), func(t *testing.T, o options) {
			if o.budget != time.Second/60 {
				t.Errorf("budget = %v", o.budget)
			}
		}},
		{"WithFrameBudget zero", WithFrameBudget(0), func(t *testing.T, o options) {
			if o.budget != DefaultFrameBudget {
				t.Errorf("budget = %v, want default", o.budget)
			}
		}},
		{"WithFrameBudget negative", WithFrameBudget(-time.Second), func(t *testing.T, o options) {
			if o.budget != DefaultFrameBudget {
				t.Errorf("budget = %v, want default", o.budget)
			}
		}},
		{"WithAttributes", WithAttributes(egl.RequiredAttributes()), func(t *testing.T, o options) {
			if len(o.eglOpts) != 1 {
				t.Errorf("eglOpts = %d, want 1", len(o.eglOpts))
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := defaultOptions()
			tt.opt(&o)
			tt.check(t, o)
		})
	}
}
