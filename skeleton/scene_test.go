// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import (
	"image/color"
	"testing"

	"github.com/gogpu/gg"
)

type canvasTarget struct {
	dc *gg.Context
}

func (c canvasTarget) Canvas() *gg.Context { return c.dc }

func newTarget(w, h int) canvasTarget {
	return canvasTarget{dc: gg.NewContext(w, h)}
}

func TestSceneInitFailures(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		w, h   int
		modify func(*Config)
	}{
		{"empty viewport", newTarget(32, 32), 0, 0, nil},
		{"no target", nil, 32, 32, nil},
		{"unknown animation", newTarget(32, 32), 32, 32, func(c *Config) { c.Animation = "dance" }},
		{"unknown skin", newTarget(32, 32), 32, 32, func(c *Config) { c.Skin = "gold" }},
		{"invalid config", newTarget(32, 32), 32, 32, func(c *Config) { c.Scale = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			if tt.modify != nil {
				tt.modify(&cfg)
			}
			sc := New(tt.target, cfg)
			sc.SetViewport(tt.w, tt.h)
			if sc.Init() {
				t.Fatal("Init() = true, want false")
			}
			if sc.Skeleton() != nil {
				t.Error("failed Init left a skeleton behind")
			}
			sc.Destroy()
		})
	}
}

func TestSceneDrawFrame(t *testing.T) {
	target := newTarget(320, 240)
	sc := New(target, Defaults())
	sc.SetViewport(320, 240)
	if !sc.Init() {
		t.Fatal("Init() = false")
	}

	sc.DrawFrame(0)

	// The torso runs straight up from the hip at (160, 100) in y-up space.
	r, g, b, a := target.dc.Image().At(160, 240-130).RGBA()
	if a == 0 {
		t.Fatal("torso pixel is transparent")
	}
	if b <= r || b <= g {
		t.Errorf("torso pixel = (%d, %d, %d), want the blue body colour", r, g, b)
	}

	_, _, _, a = target.dc.Image().At(5, 5).RGBA()
	if a != 0 {
		t.Error("background should be cleared to transparent")
	}
}

func TestSceneDrawFrameClearsPrevious(t *testing.T) {
	target := newTarget(64, 64)
	target.dc.ClearWithColor(gg.RGBA2(1, 0, 0, 1))

	cfg := Defaults()
	cfg.Skins["default"] = SkinConfig{}
	sc := New(target, cfg)
	sc.SetViewport(64, 64)
	if !sc.Init() {
		t.Fatal("Init() = false")
	}
	sc.DrawFrame(0.016)

	if got := color.RGBAModel.Convert(target.dc.Image().At(32, 32)).(color.RGBA); got.A != 0 {
		t.Errorf("pixel = %v, want transparent after DrawFrame", got)
	}
}

func TestSceneAdvancesAnimation(t *testing.T) {
	cfg := Defaults()
	cfg.Animation = "wave"
	cfg.TimeScale = 0.5
	sc := New(newTarget(320, 240), cfg)
	sc.SetViewport(320, 240)
	if !sc.Init() {
		t.Fatal("Init() = false")
	}

	arm, _ := sc.Skeleton().FindBone("arm-right")
	before := arm.Tip()

	sc.DrawFrame(1) // half a second of animation time: arm fully raised
	if got := sc.State().Time(); got != 0.5 {
		t.Errorf("State().Time() = %v, want 0.5", got)
	}
	after := arm.Tip()
	if after.Y <= before.Y {
		t.Errorf("arm tip y %v -> %v, want the wave to raise it", before.Y, after.Y)
	}
}

func TestSceneDestroy(t *testing.T) {
	sc := New(newTarget(32, 32), Defaults())
	sc.SetViewport(32, 32)
	if !sc.Init() {
		t.Fatal("Init() = false")
	}
	sc.Destroy()
	if sc.Skeleton() != nil || sc.State() != nil {
		t.Error("Destroy() should release the skeleton")
	}
	sc.Destroy()
	sc.DrawFrame(0.1)
}

func TestSceneViewport(t *testing.T) {
	sc := New(nil, Defaults())
	sc.SetViewport(800, 600)
	if w, h := sc.Viewport(); w != 800 || h != 600 {
		t.Errorf("Viewport() = %d x %d", w, h)
	}
}
