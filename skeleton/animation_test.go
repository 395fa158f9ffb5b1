// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import (
	"math"
	"testing"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestTimelineSample(t *testing.T) {
	tl := Timeline{{Time: 0.5, Value: 10}, {Time: 1, Value: 20}, {Time: 2, Value: 0}}
	tests := []struct {
		t, want float64
	}{
		{0, 10},
		{0.5, 10},
		{0.75, 15},
		{1, 20},
		{1.5, 10},
		{2, 0},
		{5, 0},
	}
	for _, tt := range tests {
		got, ok := tl.Sample(tt.t)
		if !ok || !near(got, tt.want) {
			t.Errorf("Sample(%v) = %v, %v; want %v", tt.t, got, ok, tt.want)
		}
	}

	if _, ok := Timeline(nil).Sample(1); ok {
		t.Error("empty timeline should report no value")
	}
}

func TestStateUpdate(t *testing.T) {
	anim := &Animation{Name: "a", Duration: 2}

	looping := NewState(anim, true, 1)
	looping.Update(1.5)
	looping.Update(1)
	if !near(looping.Time(), 0.5) {
		t.Errorf("looping Time() = %v, want 0.5", looping.Time())
	}

	once := NewState(anim, false, 1)
	once.Update(5)
	if once.Time() != 2 {
		t.Errorf("non-looping Time() = %v, want 2", once.Time())
	}

	scaled := NewState(anim, true, 0.25)
	scaled.Update(2)
	if !near(scaled.Time(), 0.5) {
		t.Errorf("scaled Time() = %v, want 0.5", scaled.Time())
	}

	paused := NewState(anim, true, 0)
	paused.Update(10)
	if paused.Time() != 0 {
		t.Errorf("paused Time() = %v, want 0", paused.Time())
	}
}

func TestStateApply(t *testing.T) {
	cfg := Config{
		Scale: 1,
		Bones: []BoneConfig{
			{Name: "arm", Length: 10},
			{Name: "hand", Parent: "arm", X: 10, Length: 2},
		},
		Animations: map[string]AnimationConfig{
			"swing": {Duration: 1, Timelines: []TimelineConfig{
				{Bone: "arm", Rotate: []KeyConfig{{Time: 0, Value: 0}, {Time: 1, Value: 90}}},
				{Bone: "hand", Scale: []KeyConfig{{Time: 0, Value: 1}, {Time: 1, Value: 3}}},
			}},
		},
	}
	sk := NewSkeleton(&cfg)
	st := NewState(newAnimation("swing", cfg.Animations["swing"], sk), false, 1)

	st.Update(1)
	st.Apply(sk)
	sk.UpdateWorldTransform()

	hand, _ := sk.FindBone("hand")
	pos := hand.WorldPosition()
	if !near(pos.X, 0) || !near(pos.Y, 10) {
		t.Errorf("hand origin = %v, want (0, 10) after a 90 degree swing", pos)
	}
	tip := hand.Tip()
	if !near(tip.Y, 16) {
		t.Errorf("hand tip = %v, want y 16 with scale 3", tip)
	}
}
