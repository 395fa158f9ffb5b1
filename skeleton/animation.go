// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import "math"

// Timeline is a list of keyframes sampled with linear interpolation.
// Before the first key it holds the first value, after the last key the
// last value.
type Timeline []KeyConfig

// Sample returns the value at time t.
func (tl Timeline) Sample(t float64) (float64, bool) {
	switch {
	case len(tl) == 0:
		return 0, false
	case t <= tl[0].Time:
		return tl[0].Value, true
	case t >= tl[len(tl)-1].Time:
		return tl[len(tl)-1].Value, true
	}
	for i := 1; i < len(tl); i++ {
		next := tl[i]
		if t > next.Time {
			continue
		}
		prev := tl[i-1]
		f := (t - prev.Time) / (next.Time - prev.Time)
		return prev.Value + (next.Value-prev.Value)*f, true
	}
	return tl[len(tl)-1].Value, true
}

type boneTimeline struct {
	bone   int
	rotate Timeline
	scale  Timeline
}

// Animation is a compiled AnimationConfig bound to a skeleton's bones.
type Animation struct {
	Name      string
	Duration  float64
	timelines []boneTimeline
}

func newAnimation(name string, cfg AnimationConfig, sk *Skeleton) *Animation {
	a := &Animation{Name: name, Duration: cfg.Duration}
	for _, tl := range cfg.Timelines {
		idx, ok := sk.index[tl.Bone]
		if !ok {
			continue
		}
		a.timelines = append(a.timelines, boneTimeline{
			bone:   idx,
			rotate: Timeline(tl.Rotate),
			scale:  Timeline(tl.Scale),
		})
	}
	return a
}

// apply poses sk at time t. Bones without a timeline keep their setup pose.
func (a *Animation) apply(sk *Skeleton, t float64) {
	for i := range sk.bones {
		sk.bones[i].rotation = 0
		sk.bones[i].scale = 1
	}
	for _, tl := range a.timelines {
		b := &sk.bones[tl.bone]
		if v, ok := tl.rotate.Sample(t); ok {
			b.rotation = v
		}
		if v, ok := tl.scale.Sample(t); ok {
			b.scale = v
		}
	}
}

// State plays one animation: it accumulates scaled time and poses the
// skeleton.
type State struct {
	anim      *Animation
	time      float64
	loop      bool
	timeScale float64
}

// NewState returns a state at time zero.
func NewState(anim *Animation, loop bool, timeScale float64) *State {
	return &State{anim: anim, loop: loop, timeScale: timeScale}
}

// Time returns the position inside the animation in seconds.
func (s *State) Time() float64 { return s.time }

// Update advances the state by dt seconds scaled by the time scale.
// Looping animations wrap; others stop at their last frame.
func (s *State) Update(dt float64) {
	s.time += dt * s.timeScale
	d := s.anim.Duration
	if d <= 0 {
		s.time = 0
		return
	}
	if s.loop {
		s.time = math.Mod(s.time, d)
		if s.time < 0 {
			s.time += d
		}
		return
	}
	s.time = math.Min(math.Max(s.time, 0), d)
}

// Apply poses sk for the current time.
func (s *State) Apply(sk *Skeleton) {
	s.anim.apply(sk, s.time)
}
