// SPDX-License-Identifier: MIT

package flow

import (
	"errors"
	"math"
)

// Sentinel errors.
var (
	// ErrViewNil indicates a nil view.
	ErrViewNil = errors.New("flow: view is nil")

	// ErrVertexOutOfRange indicates a source or sink index outside [0, N).
	ErrVertexOutOfRange = errors.New("flow: vertex index out of range")

	// ErrSameEndpoints indicates source == sink.
	ErrSameEndpoints = errors.New("flow: source equals sink")

	// ErrNegativeCapacity indicates a tie value below zero used as capacity.
	ErrNegativeCapacity = errors.New("flow: negative capacity")
)

// DefaultEpsilon is the residual capacity treated as exhausted.
const DefaultEpsilon = 1e-9

// Options configures MaxFlow.
type Options struct {
	capacities bool
	eps        float64
}

// Option mutates Options.
type Option func(*Options)

// WithCapacities reads tie values as capacities instead of 1 per tie.
func WithCapacities() Option {
	return func(o *Options) { o.capacities = true }
}

// WithEpsilon overrides the exhaustion threshold; eps must be finite and ≥ 0.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("flow: WithEpsilon(eps) requires a finite eps >= 0")
	}
	return func(o *Options) { o.eps = eps }
}

// Result is the outcome of one max-flow run.
type Result struct {
	// Value is the maximum flow from source to sink.
	Value float64

	// Augmentations counts the augmenting paths used.
	Augmentations int

	// SourceSide marks the vertices reachable from the source in the final
	// residual network; arcs leaving this set form a minimum cut.
	SourceSide []bool
}
