// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package tfcur provides the spike-to-current transformers that model how
a receiving neuron's membrane integrates incoming spikes over discrete
time steps.

The input to a transformer is a boolean-like spike tensor (etensor.Bits
canonically) of shape [batch, ..., neurons], delivered once per step;
the output is a float32 input-current tensor of the same shape, suitable
for driving a downstream neuron model directly or through a synaptic
connection (package conn).

SpikeCurrent is the direct, stateless transformer: each spike injects
Amplitude units of current for exactly the step it occurs on.

ExpDecay models a capacitor that charges on a spike and otherwise decays
exponentially toward zero with time constant Tau.  The decay is a single
explicit Euler step per call (state loses state/Tau per silent step),
not a closed-form exponential -- accuracy of the approximation depends
on the step size relative to Tau.

Both are driven by an external sequential loop, one Forward call per
simulated time step -- see package sim.
*/
package tfcur

import (
	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"github.com/sfgo/spikeflow/sig"
)

// Transformer is the common capability set for spike-to-current
// transformers: a deterministic Forward evaluated once per discrete
// time step, and a Reset that restores any internal state to its
// initial value at episode boundaries.  Stateless variants implement
// Reset as a no-op, and their Forward is a pure function of its input.
type Transformer interface {
	// Forward converts the spike tensor for the current time step into
	// an input-current tensor of the same shape.  Nonzero input elements
	// count as spikes.  The returned tensor is freshly allocated and
	// never aliases internal state.
	Forward(spikes etensor.Tensor) (*etensor.Float32, error)

	// Reset restores internal state to its initial value, for use at
	// episode boundaries only (not between steps within an episode).
	Reset()
}

//////////////////////////////////////////////////////////////////////////////////////
//  SpikeCurrent

// SpikeCurrent is the direct transformer: output current is
// spike * Amplitude, elementwise, with no internal state.
// Repeated identical calls produce identical output.
type SpikeCurrent struct {
	Amplitude float32 `def:"1" desc:"current injected per spike, in current units -- must be finite"`
}

// NewSpikeCurrent returns a new direct transformer with given amplitude.
func NewSpikeCurrent(amplitude float32) (*SpikeCurrent, error) {
	sc := &SpikeCurrent{Amplitude: amplitude}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *SpikeCurrent) Defaults() {
	sc.Amplitude = 1
}

// Validate checks construction parameters, returning a *sig.ConfigError
// if invalid.
func (sc *SpikeCurrent) Validate() error {
	if math32.IsNaN(sc.Amplitude) || math32.IsInf(sc.Amplitude, 0) {
		return sig.Configf("tfcur.SpikeCurrent", "amplitude must be finite, got: %v", sc.Amplitude)
	}
	return nil
}

func (sc *SpikeCurrent) Forward(spikes etensor.Tensor) (*etensor.Float32, error) {
	cur := etensor.NewFloat32(spikes.Shapes(), nil, nil)
	for i, n := 0, spikes.Len(); i < n; i++ {
		if spikes.FloatVal1D(i) != 0 {
			cur.Values[i] = sc.Amplitude
		}
	}
	return cur, nil
}

// Reset is a no-op: SpikeCurrent has no internal state.
func (sc *SpikeCurrent) Reset() {}

//////////////////////////////////////////////////////////////////////////////////////
//  ExpDecay

// ExpDecay is the exponentially-decaying transformer: internal current
// state Cur charges by Amplitude on each spike, and otherwise decays by
// Cur/Tau per step (explicit Euler).  Per element, with s = 0 or 1:
//
//	Cur += (-Cur * Dt) * (1 - s) + Amplitude * s
//
// The updated state is both the new internal state and the returned
// current.  State shape is fixed by the first Forward call and constant
// thereafter; Reset zeroes it for the next episode.
type ExpDecay struct {
	Amplitude float32          `def:"1" desc:"current injected per spike, in current units -- must be finite"`
	Tau       float32          `def:"5" min:"0" desc:"decay time constant in steps -- state loses 1/Tau of its value per spike-free step -- must be > 0"`
	Dt        float32          `inactive:"+" view:"-" json:"-" xml:"-" desc:"rate = 1 / Tau"`
	Cur       *etensor.Float32 `view:"-" desc:"internal current state -- allocated zero on first Forward, exclusively owned by this instance"`
}

// NewExpDecay returns a new exponentially-decaying transformer with
// given time constant and amplitude.
func NewExpDecay(tau, amplitude float32) (*ExpDecay, error) {
	ed := &ExpDecay{Amplitude: amplitude, Tau: tau}
	ed.Update()
	if err := ed.Validate(); err != nil {
		return nil, err
	}
	return ed, nil
}

func (ed *ExpDecay) Defaults() {
	ed.Amplitude = 1
	ed.Tau = 5
	ed.Update()
}

// Update must be called after any changes to parameters.
func (ed *ExpDecay) Update() {
	if ed.Tau > 0 {
		ed.Dt = 1 / ed.Tau
	}
}

// Validate checks construction parameters, returning a *sig.ConfigError
// if invalid.
func (ed *ExpDecay) Validate() error {
	if math32.IsNaN(ed.Tau) || ed.Tau <= 0 {
		return sig.Configf("tfcur.ExpDecay", "tau must be > 0, got: %v", ed.Tau)
	}
	if math32.IsInf(ed.Tau, 0) {
		return sig.Configf("tfcur.ExpDecay", "tau must be finite, got: %v", ed.Tau)
	}
	if math32.IsNaN(ed.Amplitude) || math32.IsInf(ed.Amplitude, 0) {
		return sig.Configf("tfcur.ExpDecay", "amplitude must be finite, got: %v", ed.Amplitude)
	}
	return nil
}

func (ed *ExpDecay) Forward(spikes etensor.Tensor) (*etensor.Float32, error) {
	if ed.Cur == nil {
		ed.Cur = etensor.NewFloat32(spikes.Shapes(), nil, nil)
	} else if !sig.ShapesEqual(ed.Cur.Shapes(), spikes.Shapes()) {
		return nil, sig.Shapef("tfcur.ExpDecay", spikes.Shapes(), ed.Cur.Shapes())
	}
	cur := etensor.NewFloat32(spikes.Shapes(), nil, nil)
	for i := range ed.Cur.Values {
		iv := ed.Cur.Values[i]
		if spikes.FloatVal1D(i) != 0 {
			iv += ed.Amplitude
		} else {
			iv -= iv * ed.Dt
		}
		ed.Cur.Values[i] = iv
		cur.Values[i] = iv
	}
	return cur, nil
}

// Reset zeroes the internal current state, discarding all memory of the
// episode.  The state tensor keeps its established shape.
func (ed *ExpDecay) Reset() {
	if ed.Cur != nil {
		ed.Cur.SetZeros()
	}
}

// MemSize returns the bytes of internal state held by this transformer.
func (ed *ExpDecay) MemSize() int {
	if ed.Cur == nil {
		return 0
	}
	return 4 * ed.Cur.Len()
}
