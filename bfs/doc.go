// Package bfs provides breadth-first search over a core.View, returning
// hop-count distances together with the geodesic bookkeeping that
// betweenness-style indices need.
//
// What
//
//   - Explore vertices in non-decreasing hop distance from a source index.
//   - Returns a Result containing:
//   - Dist:  hop count per index, math.Inf(1) when unreachable
//   - Sigma: number of distinct shortest paths from the source
//   - Pred:  shortest-path predecessors per index
//   - Order: visit sequence (non-decreasing Dist)
//   - Honors MaxDepth (d>0) and context cancellation.
//
// Why
//
//	Geodesic counts are accumulated while the frontier expands: when a vertex
//	w is first reached at depth d+1 from v, σ(w) starts at σ(v); every further
//	v' at depth d that also links to w adds σ(v'). Reversing Order then lets
//	callers fold dependencies back toward the source in one pass (Brandes).
//
// Determinism
//
//	core.View adjacency is sorted by dense index, so Order and Pred are
//	fully reproducible.
//
// Complexity (V = View.N(), E = arcs)
//
//   - Time:   O(V + E)
//   - Memory: O(V + E) (predecessor lists can hold every arc in the worst case)
//
// Errors
//
//   - ErrViewNil          - nil view.
//   - ErrSourceOutOfRange - source index outside [0, N).
//   - ErrOptionViolation  - invalid option (e.g. negative MaxDepth).
//   - ctx.Err()           - wrapped, when the context is cancelled mid-search.
package bfs
