// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package egl

// Attributes is the set of properties a config must satisfy and the client
// API version requested for the rendering context.
type Attributes struct {
	BufferSize     int32
	RedSize        int32
	GreenSize      int32
	BlueSize       int32
	AlphaSize      int32
	RenderableType int32
	SurfaceType    int32
	ClientVersion  int32
}

// RequiredAttributes returns the attribute set used by default: a 32-bit
// RGBA8888 colour buffer, GLES2 renderable, window surface, client
// version 2.
func RequiredAttributes() Attributes {
	return Attributes{
		BufferSize:     32,
		RedSize:        8,
		GreenSize:      8,
		BlueSize:       8,
		AlphaSize:      8,
		RenderableType: OpenGLES2Bit,
		SurfaceType:    WindowBit,
		ClientVersion:  2,
	}
}

// ConfigList returns the None-terminated list passed to ChooseConfig.
func (a Attributes) ConfigList() []int32 {
	return []int32{
		BufferSize, a.BufferSize,
		AlphaSize, a.AlphaSize,
		BlueSize, a.BlueSize,
		GreenSize, a.GreenSize,
		RedSize, a.RedSize,
		RenderableType, a.RenderableType,
		SurfaceType, a.SurfaceType,
		None,
	}
}

// ContextList returns the None-terminated list passed to CreateContext.
func (a Attributes) ContextList() []int32 {
	return []int32{ContextClientVersion, a.ClientVersion, None}
}

// ParseAttribList decodes a None-terminated key/value list.
// Unknown keys are returned in the map as-is; a missing terminator is
// tolerated.
func ParseAttribList(list []int32) map[int32]int32 {
	out := make(map[int32]int32, len(list)/2)
	for i := 0; i+1 < len(list); i += 2 {
		if list[i] == None {
			break
		}
		out[list[i]] = list[i+1]
	}
	return out
}

// Option configures Initialize.
type Option func(*options)

type options struct {
	attribs Attributes
}

func defaultOptions() options {
	return options{attribs: RequiredAttributes()}
}

// WithAttributes overrides the config and context attributes.
func WithAttributes(a Attributes) Option {
	return func(o *options) {
		o.attribs = a
	}
}
