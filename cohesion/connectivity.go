// SPDX-License-Identifier: MIT
// File: connectivity.go
// Role: line connectivity from repeated max-flow runs.

package cohesion

import (
	"context"
	"fmt"

	"github.com/katalvlaran/sna/core"
	"github.com/katalvlaran/sna/distance"
	"github.com/katalvlaran/sna/flow"
	"github.com/katalvlaran/sna/matrix"
)

// LineConnectivity runs one max-flow per pair (per unordered pair when
// undirected). Ties count 1 each unless opts.ConsiderWeights, in which case
// tie values are capacities; InvertWeights does not apply.
//
// Errors: flow.ErrNegativeCapacity, ctx.Err() (wrapped).
// Complexity: O(V²·V·E²).
func LineConnectivity(ctx context.Context, g *core.Graph, opts distance.Options) (*Connectivity, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	v := g.View(opts.DropIsolates)
	n := v.N()
	pw, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("LineConnectivity: %w", err)
	}
	var fopts []flow.Option
	if opts.ConsiderWeights {
		fopts = append(fopts, flow.WithCapacities())
	}

	out := &Connectivity{Vertices: append([]core.VertexID(nil), v.IDs()...), Pairwise: pw}
	first := true
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || (!v.Directed() && j < i) {
				continue
			}
			res, err := flow.MaxFlow(ctx, v, i, j, fopts...)
			if err != nil {
				return nil, fmt.Errorf("LineConnectivity: %w", err)
			}
			_ = pw.Set(i, j, res.Value)
			if !v.Directed() {
				_ = pw.Set(j, i, res.Value)
			}

			pair := [2]core.VertexID{v.ID(i), v.ID(j)}
			switch {
			case first || res.Value < out.Graph:
				out.Graph, out.Weakest, first = res.Value, [][2]core.VertexID{pair}, false
			case res.Value == out.Graph:
				out.Weakest = append(out.Weakest, pair)
			}
		}
	}

	return out, nil
}
