// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package conn provides synaptic connections: weighted linear maps from an
input current tensor to an output current tensor, modeling the fixed (or
externally learned) synaptic weights between two neuron populations.

Linear is the baseline dense connection: Forward computes the input
current against the transpose of its [out][in] weight matrix,
broadcasting over all leading (batch) dimensions.  The weight matrix is
externally owned -- a learning process may mutate it between Forward
calls, and the connection reads the current values on every call without
caching.  The connection itself never mutates its weights during
Forward, and performs no locking (callers must not mutate weights
concurrently with an in-flight call).
*/
package conn

import (
	"github.com/chewxy/math32"
	"github.com/emer/emergent/v2/erand"
	"github.com/emer/etable/v2/etensor"
	"github.com/sfgo/spikeflow/sig"
)

// Connection is the common capability set for synaptic connections:
// a deterministic Forward mapping input current of shape [..., in] to
// output current of shape [..., out], and a Reset for any internal
// state (a no-op for stateless variants).
type Connection interface {
	// Forward applies the weighted map to the input current tensor for
	// the current time step.  The returned tensor is freshly allocated.
	Forward(x etensor.Tensor) (*etensor.Float32, error)

	// Reset restores internal state to its initial value at episode
	// boundaries.  Weights are not state: they survive Reset.
	Reset()
}

//////////////////////////////////////////////////////////////////////////////////////
//  WtInitParams

// WtInitParams are initial random weight distribution parameters.
// Defaults produce uniform weights in [0, 1].
type WtInitParams struct {
	erand.RndParams
}

func (wp *WtInitParams) Defaults() {
	wp.Mean = 0.5
	wp.Var = 0.5
	wp.Dist = erand.Uniform
}

//////////////////////////////////////////////////////////////////////////////////////
//  Linear

// Linear is a dense, stateless connection from In input neurons to Out
// output neurons: Forward(x)[..., o] = sum_i x[..., i] * Wts[o][i],
// broadcasting over all leading dimensions of x.
type Linear struct {
	In     int              `min:"1" desc:"number of input neurons -- trailing dimension of Forward input"`
	Out    int              `min:"1" desc:"number of output neurons -- trailing dimension of Forward output"`
	WtInit WtInitParams     `view:"inline" desc:"initial random weight distribution, used by InitWts"`
	Wts    *etensor.Float32 `desc:"weight matrix, shape [Out][In] -- externally owned: may be mutated by a learning process between Forward calls, read fresh on each call"`
}

// NewLinear returns a new dense connection with weights drawn from the
// default initial distribution (uniform in [0, 1]).
func NewLinear(in, out int) (*Linear, error) {
	ln := &Linear{In: in, Out: out}
	ln.WtInit.Defaults()
	if err := ln.Validate(); err != nil {
		return nil, err
	}
	ln.Wts = etensor.NewFloat32([]int{out, in}, nil, []string{"Out", "In"})
	ln.InitWts()
	return ln, nil
}

// NewLinearWts returns a new dense connection using the externally
// supplied weight tensor, which must have shape exactly [out][in].
// The tensor is shared, not copied: later external mutations are seen
// by subsequent Forward calls.
func NewLinearWts(in, out int, wts *etensor.Float32) (*Linear, error) {
	ln := &Linear{In: in, Out: out}
	ln.WtInit.Defaults()
	if err := ln.Validate(); err != nil {
		return nil, err
	}
	if wts == nil {
		return nil, sig.Configf("conn.Linear", "weights tensor is nil")
	}
	if !sig.ShapesEqual(wts.Shapes(), []int{out, in}) {
		return nil, sig.Configf("conn.Linear", "weights shape %v does not match [out][in] = [%d][%d]", wts.Shapes(), out, in)
	}
	ln.Wts = wts
	return ln, nil
}

// Validate checks construction parameters, returning a *sig.ConfigError
// if invalid.
func (ln *Linear) Validate() error {
	if ln.In <= 0 || ln.Out <= 0 {
		return sig.Configf("conn.Linear", "in, out must be positive, got: %d, %d", ln.In, ln.Out)
	}
	return nil
}

// InitWts initializes weight values from the WtInit random distribution.
// Can be called between episodes to start learning over.
func (ln *Linear) InitWts() {
	for i := range ln.Wts.Values {
		ln.Wts.Values[i] = float32(ln.WtInit.Gen(-1))
	}
}

func (ln *Linear) Forward(x etensor.Tensor) (*etensor.Float32, error) {
	xsh := x.Shapes()
	nd := len(xsh)
	if nd < 1 || xsh[nd-1] != ln.In {
		return nil, sig.Shapef("conn.Linear", xsh, []int{ln.In})
	}
	osh := make([]int, nd)
	copy(osh, xsh)
	osh[nd-1] = ln.Out
	out := etensor.NewFloat32(osh, nil, nil)

	rows := x.Len() / ln.In
	wts := ln.Wts.Values
	for r := 0; r < rows; r++ {
		xi := r * ln.In
		oi := r * ln.Out
		for o := 0; o < ln.Out; o++ {
			wr := wts[o*ln.In : (o+1)*ln.In]
			sum := float32(0)
			for i, w := range wr {
				sum += float32(x.FloatVal1D(xi+i)) * w
			}
			out.Values[oi+o] = sum
		}
	}
	return out, nil
}

// Reset is a no-op: Linear has no internal state, and weights
// deliberately survive episode boundaries.
func (ln *Linear) Reset() {}

// MemSize returns the bytes held by the weight matrix.
func (ln *Linear) MemSize() int {
	if ln.Wts == nil {
		return 0
	}
	return 4 * ln.Wts.Len()
}

// WtMaxAbs returns the maximum absolute weight value, e.g. for
// monitoring an external learning process.
func (ln *Linear) WtMaxAbs() float32 {
	mx := float32(0)
	for _, w := range ln.Wts.Values {
		mx = math32.Max(mx, math32.Abs(w))
	}
	return mx
}
