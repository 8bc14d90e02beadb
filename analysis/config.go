// SPDX-License-Identifier: MIT
// File: config.go
// Role: per-call policy record and session options.

package analysis

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/sna/distance"
)

// Config is the policy passed on every call.
type Config struct {
	// ConsiderWeights reads tie values instead of counting ties.
	ConsiderWeights bool
	// InvertWeights reads tie values as strengths (length = 1/w).
	InvertWeights bool
	// DropIsolates leaves isolated vertices out of the computation.
	DropIsolates bool
}

// distanceOptions maps the policy onto the distance engine.
func (c Config) distanceOptions() distance.Options {
	return distance.Options{
		ConsiderWeights: c.ConsiderWeights,
		InvertWeights:   c.InvertWeights,
		DropIsolates:    c.DropIsolates,
	}
}

// String renders the policy for logs and span attributes.
func (c Config) String() string { return c.distanceOptions().String() }

// Option configures a Session.
type Option func(*Session)

// WithLogger routes request logs to l.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("analysis: WithLogger(nil)")
	}
	return func(s *Session) { s.logger = l }
}

// WithTracerProvider uses tp instead of the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	if tp == nil {
		panic("analysis: WithTracerProvider(nil)")
	}
	return func(s *Session) { s.tracer = tp.Tracer(instrumentationName) }
}

// WithProgress forwards coarse progress ticks of long operations.
func WithProgress(fn func(done, total int)) Option {
	if fn == nil {
		panic("analysis: WithProgress(nil)")
	}
	return func(s *Session) { s.progress = fn }
}

// WithIteration overrides the convergence threshold and iteration cap of
// eigenvector centrality and PageRank.
func WithIteration(epsilon float64, maxIterations int) Option {
	if !(epsilon > 0) || maxIterations < 1 {
		panic("analysis: WithIteration requires epsilon > 0 and maxIterations ≥ 1")
	}
	return func(s *Session) { s.epsilon, s.maxIterations = epsilon, maxIterations }
}

// WithDamping overrides the PageRank damping factor.
func WithDamping(d float64) Option {
	if !(d > 0 && d < 1) {
		panic("analysis: WithDamping requires 0 < d < 1")
	}
	return func(s *Session) { s.damping = d }
}

// WithLargeAllowed confirms that total walks may run on large graphs.
func WithLargeAllowed() Option {
	return func(s *Session) { s.largeAllowed = true }
}
