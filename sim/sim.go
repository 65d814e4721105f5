// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sim provides the sequential discrete-time driver for pipelines
of spike-to-current transformers (tfcur) and synaptic connections (conn).

A Simulator owns an ordered list of modules and a pipeline of each
stage's most recent output:

	x[0] -> module[0] -> x[1] -> module[1] -> ... -> module[n-1] -> x[n]

Each Step runs exactly one discrete time step.  Within a step, a
transformer is always invoked before any connection that consumes its
output, and steps are strictly sequential: step t is fully applied
before step t+1 begins, which stateful transformers depend on.  There is
no concurrency inside the Simulator and no I/O; every Step is a bounded
in-memory computation.

Without fast mode, data entering at step t reaches the end of an n-stage
pipeline at step t+n-1, and Step returns nil until then.  With fast mode
(the default), the very first Step feeds its input through all stages at
once so output is available immediately.
*/
package sim

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/v2/etensor"
)

// Module is one stage in a simulation pipeline.  Every transformer and
// connection satisfies it.
type Module interface {
	// Forward is evaluated once per discrete time step.
	Forward(x etensor.Tensor) (*etensor.Float32, error)

	// Reset restores internal state for a new episode.
	Reset()
}

// Sizer is an optional interface for modules that can report the bytes
// of state or weights they hold, for SizeReport.
type Sizer interface {
	MemSize() int
}

// Simulator steps an ordered pipeline of modules, one discrete time
// step per Step call, strictly sequentially.
type Simulator struct {
	Modules  []Module         `desc:"pipeline stages, in signal-flow order"`
	Pipeline []etensor.Tensor `desc:"most recent value at each stage boundary -- Pipeline[0] is the current input, Pipeline[i+1] the output of Modules[i]; nil where no data has arrived yet"`
	Fast     bool             `def:"true" desc:"fast mode: on the first step of an episode, run the input through all stages so output is available immediately, instead of taking one step per stage"`
	Time     Time             `desc:"simulation clock, advanced once per Step"`
}

// NewSimulator returns a new Simulator in fast mode with no modules;
// use Add to append pipeline stages.
func NewSimulator() *Simulator {
	sm := &Simulator{Fast: true}
	sm.Time.Defaults()
	sm.Pipeline = make([]etensor.Tensor, 1)
	return sm
}

// Add appends modules to the end of the pipeline.
func (sm *Simulator) Add(mods ...Module) {
	sm.Modules = append(sm.Modules, mods...)
	sm.Pipeline = append(sm.Pipeline, make([]etensor.Tensor, len(mods))...)
}

// Step runs one discrete time step with the given input (a spike tensor
// for a transformer first stage, current otherwise) and returns the
// pipeline output, or nil if no data has reached the end yet.
// An error from any stage aborts the step and propagates unchanged.
func (sm *Simulator) Step(input etensor.Tensor) (etensor.Tensor, error) {
	n := len(sm.Modules)
	sm.Pipeline[0] = input

	if sm.Time.Step == 0 && sm.Fast {
		// fill the whole pipeline from this first input
		for i := 0; i < n; i++ {
			out, err := sm.Modules[i].Forward(sm.Pipeline[i])
			if err != nil {
				return nil, err
			}
			sm.Pipeline[i+1] = out
		}
	} else {
		// update in reverse so each stage consumes last step's value
		for i := n; i > 0; i-- {
			if sm.Pipeline[i-1] == nil {
				sm.Pipeline[i] = nil
				continue
			}
			out, err := sm.Modules[i-1].Forward(sm.Pipeline[i-1])
			if err != nil {
				return nil, err
			}
			sm.Pipeline[i] = out
		}
	}
	sm.Time.StepInc()
	return sm.Pipeline[n], nil
}

// Reset returns the Simulator to its pre-episode state: step counters
// zeroed, pipeline values cleared, and every module Reset.  The module
// list is preserved.
func (sm *Simulator) Reset() {
	sm.Time.Reset()
	for i := range sm.Pipeline {
		sm.Pipeline[i] = nil
	}
	for _, md := range sm.Modules {
		md.Reset()
	}
}

// SizeReport returns a human-readable report of the state and weight
// memory held by each module.
func (sm *Simulator) SizeReport() string {
	var b strings.Builder
	tot := 0
	for i, md := range sm.Modules {
		mem := 0
		if sz, ok := md.(Sizer); ok {
			mem = sz.MemSize()
		}
		tot += mem
		fmt.Fprintf(&b, "%4d:\t %T \t Mem: %v\n", i, md, (datasize.ByteSize)(mem).HumanReadable())
	}
	fmt.Fprintf(&b, "%4s\t Modules: %d \t Mem: %v\n", "Tot", len(sm.Modules), (datasize.ByteSize)(tot).HumanReadable())
	return b.String()
}
