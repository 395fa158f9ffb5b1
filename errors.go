// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import (
	"errors"
	"fmt"
)

var (
	// ErrAlreadyStarted is returned by Start on a Loop that was started before.
	ErrAlreadyStarted = errors.New("renderloop: already started")

	// ErrNotStarted is returned by Wait on a Loop that was never started.
	ErrNotStarted = errors.New("renderloop: not started")
)

// FrameError records a panic raised while drawing or presenting a frame.
// The loop recovers it, destroys the renderer and tears the context down.
type FrameError struct {
	// Frame is the zero-based index of the frame that panicked.
	Frame uint64

	// Value is the recovered panic value.
	Value any

	// Stack is the worker's stack at the panic.
	Stack []byte
}

func (e *FrameError) Error() string {
	return fmt.Sprintf("renderloop: frame %d panicked: %v", e.Frame, e.Value)
}

// Unwrap returns the panic value when it is an error.
func (e *FrameError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
