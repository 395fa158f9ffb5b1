// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package skeleton renders keyframe-animated 2D skeletons with gg.
//
// A Config lists bones (parent first, each relative to its parent),
// skins that colour bone slots and animations made of per-bone rotate and
// scale timelines. Configurations are TOML files:
//
//	skin = "default"
//	animation = "idle"
//	loop = true
//	time_scale = 1.0
//
//	[[bones]]
//	name = "root"
//
//	[[bones]]
//	name = "torso"
//	parent = "root"
//	rotation = 90.0
//	length = 70.0
//	width = 26.0
//	slot = "body"
//
//	[skins.default.colors]
//	body = "#3B82F6"
//
//	[animations.idle]
//	duration = 2.0
//
//	[[animations.idle.timelines]]
//	bone = "torso"
//	rotate = [{time = 0.0, value = 0.0}, {time = 1.0, value = 4.0}, {time = 2.0, value = 0.0}]
//
// Scene implements renderloop.Renderer on top of a Target such as a
// soft.Window:
//
//	cfg, err := skeleton.LoadFile("scene.toml")
//	...
//	sc := skeleton.New(win, *cfg)
//	sc.SetViewport(win.Size())
//	loop := renderloop.New(win.Handle(), sc, stop)
package skeleton
