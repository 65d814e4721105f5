// Copyright (c) 2026, The SpikeFlow Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package spikeflow simulates information transfer between spiking neurons:
converting discrete binary spike events into continuous-valued input
current, and propagating current through weighted synaptic connections.

This top-level of the repository has no functional code -- everything is
organized into the following sub-packages:

* sig: signal conventions shared by all components -- spike (boolean)
vs. current (float32) tensors, and the error taxonomy (ConfigError for
invalid construction parameters, ShapeError for per-call shape
mismatches).

* tfcur: the spike-to-current transformer family, which models how a
receiving neuron's membrane integrates incoming spikes over time.
SpikeCurrent is the direct stateless transformer; ExpDecay holds an
internal current state that charges on spikes and decays exponentially
otherwise.

* conn: the synaptic connection family, which applies a weighted linear
map from one current tensor to another. Linear is the baseline dense
connection with an externally mutable weight matrix.

* sim: the sequential discrete-time driver that steps a pipeline of
transformers and connections once per simulated time step, strictly in
order, with episode-boundary Reset.

* examples: runnable programs -- examples/expcur tabulates the discrete
Euler decay against the closed-form exponential, and examples/pipeline
runs a small end-to-end episode.
*/
package spikeflow
