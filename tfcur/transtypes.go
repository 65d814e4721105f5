// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tfcur

import (
	"fmt"

	"github.com/goki/ki/kit"
)

// TransTypes enumerates the spike-to-current transformer variants,
// for config-driven construction via New.
type TransTypes int

//go:generate stringer -type=TransTypes

var KiT_TransTypes = kit.Enums.AddEnum(TransTypesN, false, nil)

func (tt TransTypes) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(tt) }
func (tt *TransTypes) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(tt, b) }

// The transformer types
const (
	// SpikeCurrentTrans is the direct stateless transformer:
	// current = spike * Amplitude for exactly the step the spike occurs on.
	SpikeCurrentTrans TransTypes = iota

	// ExpDecayTrans is the stateful transformer whose internal current
	// charges on spikes and decays exponentially (single Euler step per
	// time step) otherwise.
	ExpDecayTrans

	TransTypesN
)

// New returns a new transformer of the given type with default
// parameters (call Defaults-adjusting setters and Validate as needed).
func New(typ TransTypes) (Transformer, error) {
	switch typ {
	case SpikeCurrentTrans:
		sc := &SpikeCurrent{}
		sc.Defaults()
		return sc, nil
	case ExpDecayTrans:
		ed := &ExpDecay{}
		ed.Defaults()
		return ed, nil
	}
	return nil, fmt.Errorf("tfcur.New: unknown transformer type: %v", typ)
}
