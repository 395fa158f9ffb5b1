// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package renderloop

import "fmt"

// State is the lifecycle stage of a Loop.
//
//	Created -> Initializing -> Running -> StopRequested -> TearingDown -> Terminated
//	                        -> InitFailed -> TearingDown
//	                        -> TearingDown (renderer Init returned false)
type State int32

const (
	StateCreated State = iota
	StateInitializing
	StateInitFailed
	StateRunning
	StateStopRequested
	StateTearingDown
	StateTerminated
)

var stateNames = [...]string{
	StateCreated:       "created",
	StateInitializing:  "initializing",
	StateInitFailed:    "init-failed",
	StateRunning:       "running",
	StateStopRequested: "stop-requested",
	StateTearingDown:   "tearing-down",
	StateTerminated:    "terminated",
}

func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("State(%d)", int32(s))
}
