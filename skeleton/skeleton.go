// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import (
	"math"

	"github.com/gogpu/gg"
)

// Bone is one node of a Skeleton. World transforms are valid after
// UpdateWorldTransform.
type Bone struct {
	BoneConfig
	parent int

	// animated offsets applied on top of the setup pose
	rotation float64
	scale    float64

	world gg.Matrix
}

// World returns the bone's transform from local to skeleton space.
func (b *Bone) World() gg.Matrix { return b.world }

// WorldPosition returns the bone origin in skeleton space.
func (b *Bone) WorldPosition() gg.Point {
	return b.world.TransformPoint(gg.Pt(0, 0))
}

// Tip returns the end of the bone in skeleton space.
func (b *Bone) Tip() gg.Point {
	return b.world.TransformPoint(gg.Pt(b.Length, 0))
}

// Skeleton is a posed hierarchy of bones in a y-up coordinate system.
type Skeleton struct {
	bones []Bone
	index map[string]int
	root  gg.Matrix
}

// NewSkeleton builds a skeleton in its setup pose. cfg must be valid.
func NewSkeleton(cfg *Config) *Skeleton {
	sk := &Skeleton{
		bones: make([]Bone, len(cfg.Bones)),
		index: make(map[string]int, len(cfg.Bones)),
		root:  gg.Translate(cfg.X, cfg.Y).Multiply(gg.Scale(cfg.Scale, cfg.Scale)),
	}
	for i, bc := range cfg.Bones {
		parent := -1
		if bc.Parent != "" {
			parent = sk.index[bc.Parent]
		}
		sk.bones[i] = Bone{BoneConfig: bc, parent: parent, scale: 1}
		sk.index[bc.Name] = i
	}
	sk.UpdateWorldTransform()
	return sk
}

// Bones returns the bones in parent-first order.
func (sk *Skeleton) Bones() []Bone { return sk.bones }

// FindBone returns the named bone.
func (sk *Skeleton) FindBone(name string) (*Bone, bool) {
	i, ok := sk.index[name]
	if !ok {
		return nil, false
	}
	return &sk.bones[i], true
}

// UpdateWorldTransform recomputes every bone's world matrix from its
// parent's.
func (sk *Skeleton) UpdateWorldTransform() {
	for i := range sk.bones {
		b := &sk.bones[i]
		local := gg.Translate(b.X, b.Y).
			Multiply(gg.Rotate((b.Rotation + b.rotation) * math.Pi / 180)).
			Multiply(gg.Scale(b.scale, b.scale))
		parent := sk.root
		if b.parent >= 0 {
			parent = sk.bones[b.parent].world
		}
		b.world = parent.Multiply(local)
	}
}

// Draw fills every bone that has a colour in skin. view maps skeleton
// space to canvas pixels.
func (sk *Skeleton) Draw(dc *gg.Context, view gg.Matrix, skin map[string]gg.RGBA) {
	for i := range sk.bones {
		b := &sk.bones[i]
		col, ok := skin[b.Slot]
		if !ok || b.Length == 0 {
			continue
		}
		dc.Push()
		dc.SetTransform(view.Multiply(b.world))
		dc.SetRGBA(col.R, col.G, col.B, col.A)
		switch b.Shape {
		case ShapeCircle:
			dc.DrawCircle(b.Length/2, 0, b.Length/2)
		default:
			dc.DrawRoundedRectangle(0, -b.Width/2, b.Length, b.Width, b.Width/2)
		}
		_ = dc.Fill()
		dc.Pop()
	}
}
