// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrViewNil is returned if a nil view pointer is passed.
	ErrViewNil = errors.New("bfs: view is nil")

	// ErrSourceOutOfRange is returned when the source index is not in [0, N).
	ErrSourceOutOfRange = errors.New("bfs: source index out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Search.
type Option func(*Options)

// Options holds parameters that customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with a background context and no depth limit.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops the search at depth d (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a single-source search over dense indices.
type Result struct {
	// Source is the index the search started from.
	Source int

	// Dist[i] is the hop count to i, or math.Inf(1) when i is unreachable.
	Dist []float64

	// Sigma[i] is the number of distinct shortest paths from Source to i.
	// Stored as float64: counts grow exponentially on dense graphs.
	Sigma []float64

	// Pred[i] lists the predecessors of i on shortest paths, in visit order.
	Pred [][]int

	// Order lists reached indices in non-decreasing Dist.
	Order []int
}

// Reachable reports whether i was reached from Source.
func (r *Result) Reachable(i int) bool {
	return r.Sigma[i] > 0
}
