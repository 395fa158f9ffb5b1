// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import "time"

// DefaultFrameBudget is the target frame interval, 30 frames per second.
const DefaultFrameBudget = time.Second / 30

// Clock is the time source of a render worker. Now must be monotonic.
// A Sleep error is logged by the loop and otherwise ignored.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration) error
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(d time.Duration) error {
	time.Sleep(d)
	return nil
}
