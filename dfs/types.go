// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
)

var (
	// ErrViewNil is returned when a nil *core.View is passed.
	ErrViewNil = errors.New("dfs: view is nil")

	// ErrSourceOutOfRange indicates the start index is not in [0, N).
	ErrSourceOutOfRange = errors.New("dfs: start index out of range")
)

// Option configures optional behavior of Reach.
type Option func(*Options)

// Options holds configurable parameters for traversal.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// Undirected, if true, follows arcs in both directions.
	Undirected bool
}

// DefaultOptions returns Options with a background context following arcs forward.
func DefaultOptions() Options {
	return Options{Ctx: context.Background()}
}

// WithContext sets a cancellation context.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithUndirected makes the traversal ignore arc direction.
func WithUndirected() Option {
	return func(o *Options) { o.Undirected = true }
}
