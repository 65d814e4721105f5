// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package conn

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/etable/v2/etensor"
	"github.com/sfgo/spikeflow/sig"
)

// difTol is the numerical difference tolerance for comparing vs. target values
const difTol = float32(1.0e-8)

func wts(out, in int, vals ...float32) *etensor.Float32 {
	w := etensor.NewFloat32([]int{out, in}, nil, []string{"Out", "In"})
	copy(w.Values, vals)
	return w
}

func cur(shape []int, vals ...float32) *etensor.Float32 {
	x := etensor.NewFloat32(shape, nil, nil)
	copy(x.Values, vals)
	return x
}

func TestLinearForward(t *testing.T) {
	ln, err := NewLinearWts(2, 1, wts(1, 2, 1, -1))
	if err != nil {
		t.Fatal(err)
	}
	y, err := ln.Forward(cur([]int{1, 2}, 3, 1))
	if err != nil {
		t.Fatal(err)
	}
	dif := math32.Abs(y.Values[0] - 2)
	if dif > difTol {
		t.Errorf("y: %v, cor: 2, dif: %v\n", y.Values[0], dif)
	}
}

func TestLinearBatch(t *testing.T) {
	// x: [2][2][3] batches over W: [2][3]
	w := wts(2, 3,
		1, 0, -1,
		0.5, 2, 0)
	ln, err := NewLinearWts(3, 2, w)
	if err != nil {
		t.Fatal(err)
	}
	x := cur([]int{2, 2, 3},
		1, 2, 3,
		0, 1, 0,
		-1, 0, 1,
		2, 2, 2)
	y, err := ln.Forward(x)
	if err != nil {
		t.Fatal(err)
	}
	if !sig.ShapesEqual(y.Shapes(), []int{2, 2, 2}) {
		t.Fatalf("output shape: %v, expected [2 2 2]", y.Shapes())
	}
	// y[b][o] = sum_i x[b][i] * w[o][i]
	cor := []float32{
		1*1 + 2*0 + 3*-1, 1*0.5 + 2*2 + 3*0,
		0, 2,
		-2, -0.5,
		0, 5,
	}
	for i := range cor {
		dif := math32.Abs(y.Values[i] - cor[i])
		if dif > difTol {
			t.Errorf("idx: %v, y: %v, cor: %v, dif: %v\n", i, y.Values[i], cor[i], dif)
		}
	}
}

func TestLinearWtsExternal(t *testing.T) {
	// weights are read fresh on every call, never cached
	w := wts(1, 1, 1)
	ln, err := NewLinearWts(1, 1, w)
	if err != nil {
		t.Fatal(err)
	}
	x := cur([]int{1, 1}, 3)
	y, _ := ln.Forward(x)
	if math32.Abs(y.Values[0]-3) > difTol {
		t.Errorf("y: %v, cor: 3\n", y.Values[0])
	}
	w.Values[0] = -2 // external learning update between calls
	y, _ = ln.Forward(x)
	if math32.Abs(y.Values[0]+6) > difTol {
		t.Errorf("y after wt update: %v, cor: -6\n", y.Values[0])
	}
}

func TestLinearShapeMismatch(t *testing.T) {
	ln, err := NewLinear(10, 4)
	if err != nil {
		t.Fatal(err)
	}
	var shp *sig.ShapeError
	_, err = ln.Forward(cur([]int{2, 8}))
	if !errors.As(err, &shp) {
		t.Errorf("trailing dim 8 vs in 10: expected ShapeError, got: %v", err)
	}
}

func TestLinearConfig(t *testing.T) {
	var cfg *sig.ConfigError
	_, err := NewLinearWts(2, 1, wts(2, 2))
	if !errors.As(err, &cfg) {
		t.Errorf("mismatched weight shape: expected ConfigError, got: %v", err)
	}
	_, err = NewLinearWts(2, 1, nil)
	if !errors.As(err, &cfg) {
		t.Errorf("nil weights: expected ConfigError, got: %v", err)
	}
	_, err = NewLinear(0, 1)
	if !errors.As(err, &cfg) {
		t.Errorf("in = 0: expected ConfigError, got: %v", err)
	}
	_, err = NewLinear(1, -1)
	if !errors.As(err, &cfg) {
		t.Errorf("out = -1: expected ConfigError, got: %v", err)
	}
}

func TestLinearInitWts(t *testing.T) {
	ln, err := NewLinear(8, 8)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range ln.Wts.Values {
		if w < 0 || w > 1 {
			t.Errorf("idx: %v, default init weight out of [0,1]: %v\n", i, w)
		}
	}
	if ln.WtMaxAbs() > 1 {
		t.Errorf("WtMaxAbs: %v, expected <= 1\n", ln.WtMaxAbs())
	}
}
