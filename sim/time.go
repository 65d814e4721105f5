// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import "github.com/emer/emergent/v2/etime"

// Time contains the timing state for running a simulation episode.
type Time struct {

	// accumulated amount of time the pipeline has been running,
	// in simulation-time (not real world time), in seconds.
	Time float32

	// step counter within the current episode: number of discrete
	// time steps taken since construction or the last Reset.
	Step int

	// total step count, continuing across episodes until ResetAll.
	StepTot int

	// amount of simulated time per step.
	TimePerStep float32 `def:"0.001"`

	// current evaluation mode, e.g., Train, Test, etc
	Mode etime.Modes
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerStep = 0.001
}

// Reset resets the episode counters back to zero, preserving StepTot
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	if tm.TimePerStep == 0 {
		tm.Defaults()
	}
}

// ResetAll resets all counters including the cross-episode total
func (tm *Time) ResetAll() {
	tm.Reset()
	tm.StepTot = 0
}

// StepInc increments the counters by one discrete time step
func (tm *Time) StepInc() {
	tm.Step++
	tm.StepTot++
	tm.Time += tm.TimePerStep
}
