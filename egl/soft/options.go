// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package soft

import (
	"fmt"

	"github.com/gogpu/renderloop/egl"
)

// Step names a driver entry point that can be made to fail.
type Step int

const (
	StepGetDisplay Step = iota + 1
	StepInitialize
	StepChooseConfig
	StepCreateContext
	StepCreateWindowSurface
	StepMakeCurrent
	StepSwapBuffers
)

var stepNames = map[Step]string{
	StepGetDisplay:          "GetDisplay",
	StepInitialize:          "Initialize",
	StepChooseConfig:        "ChooseConfig",
	StepCreateContext:       "CreateContext",
	StepCreateWindowSurface: "CreateWindowSurface",
	StepMakeCurrent:         "MakeCurrent",
	StepSwapBuffers:         "SwapBuffers",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// Option configures a Display.
type Option func(*options)

type options struct {
	name    string
	configs []ConfigDesc
	faults  map[Step]egl.ErrorCode
}

func defaultOptions() options {
	return options{
		name:    "soft",
		configs: DefaultConfigs(),
		faults:  make(map[Step]egl.ErrorCode),
	}
}

// WithName sets the driver name reported in logs and errors.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithConfigs replaces the config table.
func WithConfigs(configs ...ConfigDesc) Option {
	return func(o *options) {
		o.configs = append([]ConfigDesc(nil), configs...)
	}
}

// WithFault makes every call at step fail with code.
func WithFault(step Step, code egl.ErrorCode) Option {
	return func(o *options) {
		o.faults[step] = code
	}
}
