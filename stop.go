// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import "sync/atomic"

// StopSignal is a one-way flag shared by a controller and a render worker.
// It starts active; Stop clears it and nothing sets it again.
// All methods are safe for concurrent use.
type StopSignal struct {
	active atomic.Bool
}

// NewStopSignal returns an active signal.
func NewStopSignal() *StopSignal {
	s := &StopSignal{}
	s.active.Store(true)
	return s
}

// Stop asks the worker to finish. It never blocks and may be called any
// number of times.
func (s *StopSignal) Stop() {
	s.active.Store(false)
}

// Active reports whether the worker should keep rendering.
func (s *StopSignal) Active() bool {
	return s.active.Load()
}
