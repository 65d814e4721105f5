// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package sig defines the signal conventions shared by the spike-to-current
transformers (tfcur) and synaptic connections (conn), along with the
error taxonomy used by both.

A spike signal is a boolean-like tensor: any nonzero element counts as a
spike event at the current time step.  etensor.Bits is the canonical
spike tensor.  A current signal is always an etensor.Float32.  Coercion
from spikes to current values (true -> 1, false -> 0) is silent and
cannot fail for well-formed input.
*/
package sig

import (
	"github.com/emer/etable/v2/etensor"
)

// SpikesToFloat returns a new float32 tensor of the same shape as the
// given spike tensor, with 1 where a spike occurred and 0 elsewhere.
func SpikesToFloat(spikes etensor.Tensor) *etensor.Float32 {
	cur := etensor.NewFloat32(spikes.Shapes(), nil, nil)
	for i, n := 0, spikes.Len(); i < n; i++ {
		if spikes.FloatVal1D(i) != 0 {
			cur.Values[i] = 1
		}
	}
	return cur
}

// ShapesEqual reports whether two tensor shapes are identical in both
// number and size of dimensions.
func ShapesEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
