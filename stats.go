// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"sync/atomic"
	"time"
)

// Stats is a snapshot of a Loop's frame counters.
type Stats struct {
	// Frames is the number of DrawFrame calls that returned.
	Frames uint64

	// SwapFailures counts SwapBuffers errors.
	SwapFailures uint64

	// LastDelta is the elapsed time passed to the latest DrawFrame.
	LastDelta time.Duration

	// Slept is the total time spent pacing frames.
	Slept time.Duration
}

// FPS returns the frame rate implied by LastDelta, or 0 before the
// second frame.
func (s Stats) FPS() float64 {
	if s.LastDelta <= 0 {
		return 0
	}
	return float64(time.Second) / float64(s.LastDelta)
}

type counters struct {
	frames       atomic.Uint64
	swapFailures atomic.Uint64
	lastDelta    atomic.Int64
	slept        atomic.Int64
}

func (c *counters) snapshot() Stats {
	return Stats{
		Frames:       c.frames.Load(),
		SwapFailures: c.swapFailures.Load(),
		LastDelta:    time.Duration(c.lastDelta.Load()),
		Slept:        time.Duration(c.slept.Load()),
	}
}
