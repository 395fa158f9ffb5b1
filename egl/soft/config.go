// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/renderloop/egl"
)

// ConfigDesc describes one frame buffer configuration offered by a Display.
type ConfigDesc struct {
	// Format is the pixel layout of the colour buffer in memory.
	// Undefined marks a packed format the front buffer stores as RGBA.
	Format gputypes.TextureFormat

	BufferSize     int32
	RedSize        int32
	GreenSize      int32
	BlueSize       int32
	AlphaSize      int32
	RenderableType int32
	SurfaceType    int32
}

// DefaultConfigs returns the config table used when none is supplied:
// RGBA8888 and BGRA8888 window configs for GLES2/3, an RGB565 window
// config and an RGBA8888 pbuffer-only config.
func DefaultConfigs() []ConfigDesc {
	return []ConfigDesc{
		{
			Format:     gputypes.TextureFormatRGBA8Unorm,
			BufferSize: 32, RedSize: 8, GreenSize: 8, BlueSize: 8, AlphaSize: 8,
			RenderableType: egl.OpenGLES2Bit | egl.OpenGLES3Bit,
			SurfaceType:    egl.WindowBit | egl.PbufferBit,
		},
		{
			Format:     gputypes.TextureFormatBGRA8Unorm,
			BufferSize: 32, RedSize: 8, GreenSize: 8, BlueSize: 8, AlphaSize: 8,
			RenderableType: egl.OpenGLES2Bit,
			SurfaceType:    egl.WindowBit,
		},
		{
			Format:     gputypes.TextureFormatUndefined,
			BufferSize: 16, RedSize: 5, GreenSize: 6, BlueSize: 5, AlphaSize: 0,
			RenderableType: egl.OpenGLES2Bit,
			SurfaceType:    egl.WindowBit,
		},
		{
			Format:     gputypes.TextureFormatRGBA8Unorm,
			BufferSize: 32, RedSize: 8, GreenSize: 8, BlueSize: 8, AlphaSize: 8,
			RenderableType: egl.OpenGLES2Bit,
			SurfaceType:    egl.PbufferBit,
		},
	}
}

// matches reports whether c satisfies the parsed attribute list.
// Sizes are minimums and type attributes are bit masks that must all be
// present, as in eglChooseConfig.
func (c ConfigDesc) matches(attribs map[int32]int32) bool {
	for key, want := range attribs {
		switch key {
		case egl.BufferSize:
			if c.BufferSize < want {
				return false
			}
		case egl.RedSize:
			if c.RedSize < want {
				return false
			}
		case egl.GreenSize:
			if c.GreenSize < want {
				return false
			}
		case egl.BlueSize:
			if c.BlueSize < want {
				return false
			}
		case egl.AlphaSize:
			if c.AlphaSize < want {
				return false
			}
		case egl.RenderableType:
			if c.RenderableType&want != want {
				return false
			}
		case egl.SurfaceType:
			if c.SurfaceType&want != want {
				return false
			}
		}
	}
	return true
}

// clientBit maps a GLES client version to the renderable type bit it needs.
func clientBit(version int32) (int32, bool) {
	switch version {
	case 1:
		return egl.OpenGLESBit, true
	case 2:
		return egl.OpenGLES2Bit, true
	case 3:
		return egl.OpenGLES3Bit, true
	}
	return 0, false
}

var configKeys = map[int32]bool{
	egl.BufferSize:     true,
	egl.RedSize:        true,
	egl.GreenSize:      true,
	egl.BlueSize:       true,
	egl.AlphaSize:      true,
	egl.RenderableType: true,
	egl.SurfaceType:    true,
}
