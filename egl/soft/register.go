// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"sync"

	"github.com/gogpu/renderloop/egl"
)

var (
	defaultOnce    sync.Once
	defaultDisplay *Display
)

// Default returns the process-wide display that egl.Open("soft") hands
// out. Windows meant for registry-opened contexts must be created on it.
func Default() *Display {
	defaultOnce.Do(func() {
		defaultDisplay = NewDisplay()
	})
	return defaultDisplay
}

func init() {
	egl.Register("soft", 10, func() (egl.Driver, error) {
		return Default(), nil
	}, nil)
}
