// SPDX-License-Identifier: MIT

package dijkstra

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/sna/bfs"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrViewNil indicates that a nil *core.View was passed.
	ErrViewNil = errors.New("dijkstra: view is nil")

	// ErrSourceOutOfRange indicates the source index is not in [0, N).
	ErrSourceOutOfRange = errors.New("dijkstra: source index out of range")

	// ErrNegativeWeight indicates that a negative tie value was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrDegenerateWeight indicates a zero tie value under weight inversion.
	ErrDegenerateWeight = errors.New("dijkstra: zero weight cannot be inverted")

	// ErrOptionViolation indicates an option was given an invalid argument.
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")
)

// DefaultEpsilon is the relative tolerance under which two path lengths tie.
const DefaultEpsilon = 1e-9

// Result is the single-source outcome; identical in shape to a BFS result.
type Result = bfs.Result

// Options configures the behavior of Search.
type Options struct {
	Ctx           context.Context
	InvertWeights bool    // arc length = 1/w
	Epsilon       float64 // relative tie tolerance
	MaxDistance   float64 // exploration cap; +Inf means none

	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns Options with a background context, no inversion,
// DefaultEpsilon and no distance cap.
func DefaultOptions() Options {
	return Options{
		Ctx:         context.Background(),
		Epsilon:     DefaultEpsilon,
		MaxDistance: math.Inf(1),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithInvertWeights reads each tie value w as the length 1/w.
func WithInvertWeights() Option {
	return func(o *Options) { o.InvertWeights = true }
}

// WithEpsilon sets the relative tie tolerance; eps must be in [0, 1).
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if eps < 0 || eps >= 1 || math.IsNaN(eps) {
			o.err = fmt.Errorf("%w: epsilon %g not in [0,1)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxDistance leaves vertices farther than max unreached; max must be ≥ 0.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance %g must be non-negative", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}
