// SPDX-License-Identifier: MIT
// Package: sna/builder
//
// api.go - public entry-point and shared plumbing.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sna/core"
)

// ErrTooFewVertices indicates that n is smaller than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a nil constructor or a core rejection mid-build.
var ErrConstructFailed = errors.New("builder: construction failed")

// CenterLabel is the label of the hub vertex in Star and Wheel.
const CenterLabel = "Center"

// Constructor applies a deterministic graph mutation using the resolved config.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// addVertices appends n vertices labelled by cfg and returns their identifiers.
func addVertices(g *core.Graph, cfg builderConfig, n int) []core.VertexID {
	ids := make([]core.VertexID, n)
	for i := range ids {
		ids[i] = g.AddVertex(cfg.labelFn(i))
	}

	return ids
}

// tie emits u–v (or u→v, plus v→u when symmetric arcs are requested on a digraph).
func tie(g *core.Graph, cfg builderConfig, method string, k int, u, v core.VertexID, symmetric bool) error {
	w := cfg.weightFn(k)
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, u, v, w, err)
	}
	if symmetric && g.Directed() {
		if err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%d→%d, w=%g): %w", method, v, u, w, err)
		}
	}

	return nil
}
