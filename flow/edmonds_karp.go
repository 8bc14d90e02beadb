// SPDX-License-Identifier: MIT

package flow

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/sna/core"
)

// MaxFlow computes the maximum flow from src to sink over v.
//
// Stages:
//  1. Validate the view, endpoints and options.
//  2. Build the dense residual table (unit or tie-value capacities).
//  3. Repeatedly find a shortest augmenting path by BFS and push its
//     bottleneck, until the sink is unreachable.
//  4. Mark the source side of the final residual network.
//
// Complexity: O(V·E²) time, O(V²) memory.
func MaxFlow(ctx context.Context, v *core.View, src, sink int, opts ...Option) (*Result, error) {
	// 1) Validate
	if v == nil {
		return nil, ErrViewNil
	}
	n := v.N()
	if src < 0 || src >= n || sink < 0 || sink >= n {
		return nil, fmt.Errorf("MaxFlow(%d→%d): %w", src, sink, ErrVertexOutOfRange)
	}
	if src == sink {
		return nil, fmt.Errorf("MaxFlow(%d→%d): %w", src, sink, ErrSameEndpoints)
	}
	o := Options{eps: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 2) Residual capacities
	residual, err := buildResidual(v, o.capacities)
	if err != nil {
		return nil, fmt.Errorf("MaxFlow: %w", err)
	}

	// 3) Augment along shortest paths
	res := &Result{}
	parent := make([]int, n)
	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("MaxFlow: %w", err)
		}
		bottle := augmentingPath(residual, src, sink, o.eps, parent)
		if bottle <= o.eps {
			break
		}
		for cur := sink; cur != src; cur = parent[cur] {
			p := parent[cur]
			residual[p][cur] -= bottle
			residual[cur][p] += bottle
		}
		res.Value += bottle
		res.Augmentations++
	}

	// 4) Source side of the minimum cut
	res.SourceSide = reachable(residual, src, o.eps)

	return res, nil
}

// buildResidual copies capacities into an n×n table; loops are skipped.
func buildResidual(v *core.View, capacities bool) ([][]float64, error) {
	n := v.N()
	residual := make([][]float64, n)
	for i := range residual {
		residual[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for _, a := range v.Out(i) {
			if a.To == i {
				continue
			}
			c := 1.0
			if capacities {
				c = a.Weight
			}
			if c < 0 {
				return nil, fmt.Errorf("%w: arc %d→%d capacity=%g", ErrNegativeCapacity, v.ID(i), v.ID(a.To), c)
			}
			residual[i][a.To] += c
		}
	}

	return residual, nil
}

// augmentingPath runs BFS from src over arcs with residual capacity above
// eps, fills parent, and returns the bottleneck (0 when sink is unreachable).
func augmentingPath(residual [][]float64, src, sink int, eps float64, parent []int) float64 {
	n := len(residual)
	for i := range parent {
		parent[i] = -1
	}
	parent[src] = src
	bottle := make([]float64, n)
	bottle[src] = math.Inf(1)

	queue := []int{src}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for w := 0; w < n; w++ {
			if parent[w] >= 0 || residual[u][w] <= eps {
				continue
			}
			parent[w] = u
			bottle[w] = math.Min(bottle[u], residual[u][w])
			if w == sink {
				return bottle[w]
			}
			queue = append(queue, w)
		}
	}

	return 0
}

// reachable marks vertices reachable from src in the residual network.
func reachable(residual [][]float64, src int, eps float64) []bool {
	seen := make([]bool, len(residual))
	seen[src] = true
	stack := []int{src}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for w, c := range residual[u] {
			if !seen[w] && c > eps {
				seen[w] = true
				stack = append(stack, w)
			}
		}
	}

	return seen
}
