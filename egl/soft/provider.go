// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderloop/egl"
)

// Display doubles as a gpucontext.DeviceProvider so gg-ecosystem code that
// negotiates a surface format can target a software window.
var _ gpucontext.DeviceProvider = (*Display)(nil)

type device struct{ d *Display }

// Poll is a no-op: software swaps complete synchronously.
func (device) Poll(bool) {}

// Destroy terminates the display.
func (v device) Destroy() { v.d.Terminate() }

type queue struct{}

type adapter struct{ name string }

// Device returns the display as a gpucontext device.
func (d *Display) Device() gpucontext.Device { return device{d: d} }

// Queue returns a queue placeholder; the software driver submits nothing.
func (d *Display) Queue() gpucontext.Queue { return queue{} }

// Adapter returns an adapter describing the driver.
func (d *Display) Adapter() gpucontext.Adapter { return adapter{name: d.name} }

// AdapterInfo reports a software adapter named after the driver.
func (d *Display) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: d.name, Type: gpucontext.AdapterTypeSoftware}
}

// SurfaceFormat returns the pixel format of the current draw surface, or
// of the first window config when nothing is current.
func (d *Display) SurfaceFormat() gputypes.TextureFormat {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s, ok := d.surfaces[d.currentDraw]; ok {
		if cfg, ok := d.config(egl.Config(s.config)); ok {
			return formatOf(cfg)
		}
	}
	for _, cfg := range d.configs {
		if cfg.SurfaceType&egl.WindowBit != 0 {
			return formatOf(cfg)
		}
	}
	return gputypes.TextureFormatUndefined
}

func formatOf(cfg ConfigDesc) gputypes.TextureFormat {
	if cfg.Format == gputypes.TextureFormatUndefined {
		return gputypes.TextureFormatRGBA8Unorm
	}
	return cfg.Format
}
