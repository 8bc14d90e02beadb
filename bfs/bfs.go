// SPDX-License-Identifier: MIT

package bfs

import (
	"fmt"
	"math"

	"github.com/katalvlaran/sna/core"
)

// Search runs breadth-first search from dense index src over v.
//
// Implementation:
//   - Stage 1: Validate view, source and options.
//   - Stage 2: Seed Dist/Sigma with the source.
//   - Stage 3: Pop the queue; for each arc u→w either discover w at depth+1
//     or, if w already sits exactly one level below u, add σ(u) to σ(w).
//
// Self-loops never alter distances or counts.
//
// Complexity: O(V + E) time, O(V + E) memory.
func Search(v *core.View, src int, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if v == nil {
		return nil, ErrViewNil
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	n := v.N()
	if src < 0 || src >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, src, n)
	}

	// 2) Initialize state
	res := &Result{
		Source: src,
		Dist:   make([]float64, n),
		Sigma:  make([]float64, n),
		Pred:   make([][]int, n),
		Order:  make([]int, 0, n),
	}
	for i := range res.Dist {
		res.Dist[i] = math.Inf(1)
	}
	res.Dist[src] = 0
	res.Sigma[src] = 1

	// 3) Frontier expansion
	queue := make([]int, 0, n)
	queue = append(queue, src)
	for head := 0; head < len(queue); head++ {
		if err := cfg.Ctx.Err(); err != nil {
			return nil, fmt.Errorf("bfs: %w", err)
		}
		u := queue[head]
		res.Order = append(res.Order, u)
		du := res.Dist[u]
		if cfg.MaxDepth > 0 && int(du) >= cfg.MaxDepth {
			continue
		}
		for _, a := range v.Out(u) {
			w := a.To
			if w == u {
				continue
			}
			switch {
			case math.IsInf(res.Dist[w], 1):
				res.Dist[w] = du + 1
				queue = append(queue, w)
				fallthrough
			case res.Dist[w] == du+1:
				res.Sigma[w] += res.Sigma[u]
				res.Pred[w] = append(res.Pred[w], u)
			}
		}
	}

	return res, nil
}
