// SPDX-License-Identifier: MIT
// Package: sna/builder
//
// impl_sequential.go - Path(n) and Cycle(n).
//
// Contract:
//   - Path: n ≥ 2, ties i→i+1 in index order.
//   - Cycle: n ≥ 3, Path plus the closing tie (n-1)→0.
//   - Digraphs get forward arcs only unless WithSymmetricArcs is set.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sna/core"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds a simple path on n vertices.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i+1 < n; i++ {
			if err := tie(g, cfg, methodPath, i, ids[i], ids[i+1], cfg.symmetric); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle returns a Constructor that builds a simple cycle on n vertices.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		for i := 0; i < n; i++ {
			if err := tie(g, cfg, methodCycle, i, ids[i], ids[(i+1)%n], cfg.symmetric); err != nil {
				return err
			}
		}

		return nil
	}
}
