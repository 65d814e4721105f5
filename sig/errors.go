// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sig

import "fmt"

// ConfigError reports invalid construction parameters (non-positive
// time constant, non-finite amplitude, mismatched weight shape, etc).
// It is returned at construction time and aborts instance creation --
// components never recover from it internally.
type ConfigError struct {
	Comp string // component, e.g. "tfcur.ExpDecay"
	Msg  string
}

func (e *ConfigError) Error() string {
	return e.Comp + ": " + e.Msg
}

// Configf returns a ConfigError for given component with a formatted message.
func Configf(comp, format string, args ...any) *ConfigError {
	return &ConfigError{Comp: comp, Msg: fmt.Sprintf(format, args...)}
}

// ShapeError reports a Forward call whose input tensor shape is
// incompatible with the component's fixed dimensionality or established
// state shape.  The failed call leaves component state unchanged.
type ShapeError struct {
	Comp string // component, e.g. "conn.Linear"
	In   []int  // offending input shape
	Want []int  // expected shape (or trailing dims) -- informational
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: input shape %v incompatible with expected %v", e.Comp, e.In, e.Want)
}

// Shapef returns a ShapeError for given component, input shape, and
// expected shape.  Both shape slices are copied.
func Shapef(comp string, in, want []int) *ShapeError {
	ic := make([]int, len(in))
	copy(ic, in)
	wc := make([]int, len(want))
	copy(wc, want)
	return &ShapeError{Comp: comp, In: ic, Want: wc}
}
