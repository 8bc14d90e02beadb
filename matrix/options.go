// SPDX-License-Identifier: MIT
// Package matrix: functional options for the long-running operations
// (Inverse, TotalWalks) and the numeric policy they share.
//
// Option constructors panic on nonsensical values (programmer error);
// algorithms themselves never panic.

package matrix

import (
	"log/slog"
	"math"
)

// DefaultSingularEps is the pivot magnitude under which elimination reports ErrSingular.
const DefaultSingularEps = 1e-12

// LargeWalkThreshold is the largest n TotalWalks runs without WithLargeAllowed.
const LargeWalkThreshold = 50

// Option configures Inverse, LUP and TotalWalks.
type Option func(*Options)

// Options is the resolved configuration; fields are read by the kernels only.
type Options struct {
	singularEps  float64
	progress     func(done, total int)
	largeAllowed bool
	logger       *slog.Logger
}

func gatherOptions(opts ...Option) Options {
	o := Options{
		singularEps: DefaultSingularEps,
		progress:    func(int, int) {},
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithSingularEps overrides the singular pivot threshold; eps must be finite and ≥ 0.
func WithSingularEps(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("matrix: WithSingularEps(eps) requires a finite eps >= 0")
	}
	return func(o *Options) { o.singularEps = eps }
}

// WithProgress registers a coarse progress callback (ticks, not cancellation points).
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("matrix: WithProgress(nil)")
	}
	return func(o *Options) { o.progress = fn }
}

// WithLargeAllowed confirms that the caller accepts TotalWalks on n > LargeWalkThreshold.
func WithLargeAllowed() Option {
	return func(o *Options) { o.largeAllowed = true }
}

// WithLogger routes slow-operation warnings to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("matrix: WithLogger(nil)")
	}
	return func(o *Options) { o.logger = l }
}
