// SPDX-License-Identifier: MIT
// Package: sna/builder
//
// impl_hub.go - Star(n), Wheel(n) and Complete(n).
//
// Contract:
//   - Star: n ≥ 2; hub labelled CenterLabel is added first, then n-1 leaves.
//   - Wheel: n ≥ 4; ring Cycle(n-1) first, then the hub and its spokes.
//   - Complete: n ≥ 1; every pair tied once (both arcs on digraphs).
//   - Spokes are always reciprocal on digraphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/sna/core"
)

const (
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"
	minStarNodes   = 2
	minWheelNodes  = 4 // outer ring needs n-1 ≥ 3
)

// Star returns a Constructor that builds a star: one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		hub := g.AddVertex(CenterLabel)
		leaves := addVertices(g, cfg, n-1)
		for i, leaf := range leaves {
			if err := tie(g, cfg, methodStar, i, hub, leaf, true); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel returns a Constructor that builds Wₙ = Cₙ₋₁ + hub.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		ring := addVertices(g, cfg, n-1)
		for i := range ring {
			if err := tie(g, cfg, methodWheel, i, ring[i], ring[(i+1)%len(ring)], cfg.symmetric); err != nil {
				return err
			}
		}
		hub := g.AddVertex(CenterLabel)
		for i, v := range ring {
			if err := tie(g, cfg, methodWheel, len(ring)+i, hub, v, true); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete returns a Constructor that builds the complete graph Kₙ.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 1 {
			return fmt.Errorf("%s: n=%d < min=1: %w", methodComplete, n, ErrTooFewVertices)
		}
		ids := addVertices(g, cfg, n)
		k := 0
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := tie(g, cfg, methodComplete, k, ids[i], ids[j], true); err != nil {
					return err
				}
				k++
			}
		}

		return nil
	}
}
