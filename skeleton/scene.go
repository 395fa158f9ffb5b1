// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import (
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/renderloop"
)

// Target supplies the drawing surface of the current window. Canvas is
// called on the render goroutine every frame.
type Target interface {
	Canvas() *gg.Context
}

// Scene renders an animated skeleton. It implements renderloop.Renderer.
//
// SetViewport may be called from the controller before the loop starts.
// Init, DrawFrame and Destroy are called by the render worker.
type Scene struct {
	target Target
	cfg    Config

	mu            sync.Mutex
	width, height int

	skeleton *Skeleton
	state    *State
	skin     map[string]gg.RGBA
}

var _ renderloop.Renderer = (*Scene)(nil)

// New creates a scene drawing cfg onto target. Nothing is built until Init.
func New(target Target, cfg Config) *Scene {
	return &Scene{target: target, cfg: cfg}
}

// SetViewport sets the drawable area in pixels.
func (s *Scene) SetViewport(width, height int) {
	s.mu.Lock()
	s.width, s.height = width, height
	s.mu.Unlock()
}

// Viewport returns the drawable area in pixels.
func (s *Scene) Viewport() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.width, s.height
}

// Init builds the skeleton, selects the skin and starts the animation.
// It returns false, leaving the scene empty, when the viewport is empty,
// the configuration is invalid or the selected skin or animation does not
// exist.
func (s *Scene) Init() bool {
	log := renderloop.Logger().With("animation", s.cfg.Animation, "skin", s.cfg.Skin)
	w, h := s.Viewport()
	log.Info("skeleton: loading", "width", w, "height", h)

	if w <= 0 || h <= 0 {
		log.Error("skeleton: empty viewport")
		return false
	}
	if s.target == nil || s.target.Canvas() == nil {
		log.Error("skeleton: no drawing target")
		return false
	}
	if err := s.cfg.Validate(); err != nil {
		log.Error("skeleton: invalid configuration", "err", err)
		return false
	}
	skinCfg, ok := s.cfg.Skins[s.cfg.Skin]
	if !ok {
		log.Error("skeleton: unknown skin")
		return false
	}
	animCfg, ok := s.cfg.Animations[s.cfg.Animation]
	if !ok {
		log.Error("skeleton: failed to find animation")
		return false
	}

	s.skin = make(map[string]gg.RGBA, len(skinCfg.Colors))
	for slot, hex := range skinCfg.Colors {
		s.skin[slot] = gg.Hex(hex)
	}
	s.skeleton = NewSkeleton(&s.cfg)
	s.state = NewState(newAnimation(s.cfg.Animation, animCfg, s.skeleton), s.cfg.Loop, s.cfg.TimeScale)
	s.state.Apply(s.skeleton)
	s.skeleton.UpdateWorldTransform()
	log.Debug("skeleton: loaded", "bones", len(s.skeleton.bones))
	return true
}

// DrawFrame clears the canvas to transparent, advances the animation by
// dt and draws the posed skeleton inside the viewport.
func (s *Scene) DrawFrame(dt float32) {
	dc := s.target.Canvas()
	dc.Clear()
	if s.skeleton == nil {
		return
	}

	s.state.Update(float64(dt))
	s.state.Apply(s.skeleton)
	s.skeleton.UpdateWorldTransform()

	w, h := s.Viewport()
	dc.Push()
	dc.Identity()
	dc.ClipRect(0, 0, float64(w), float64(h))
	// Skeleton space is y-up with the origin at the bottom left.
	view := gg.Translate(0, float64(h)).Multiply(gg.Scale(1, -1))
	s.skeleton.Draw(dc, view, s.skin)
	dc.Pop()
}

// Destroy releases the skeleton. It is safe after a failed Init.
func (s *Scene) Destroy() {
	if s.skeleton == nil {
		return
	}
	renderloop.Logger().Info("skeleton: destroyed", "animation", s.cfg.Animation)
	s.skeleton, s.state, s.skin = nil, nil, nil
}

// Skeleton returns the posed skeleton, or nil outside Init and Destroy.
func (s *Scene) Skeleton() *Skeleton { return s.skeleton }

// State returns the animation state, or nil outside Init and Destroy.
func (s *Scene) State() *State { return s.state }
