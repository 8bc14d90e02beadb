// Package core provides the thread-safe, multi-relational in-memory Graph that
// every analysis package in this module reads from.
//
// The Graph G = (V, R) holds one vertex set and one or more relations (edge sets):
//
//   - Integer VertexIDs assigned from a monotonic counter, never reused.
//   - Directed vs. undirected ties (WithDirected).
//   - Self-loops (WithLoops).
//   - Float weights, DefaultWeight (1.0) for ordinary ties.
//   - Several named relations; exactly one is active and all queries read it
//     (AddRelation, SetActiveRelation).
//   - Separate sync.RWMutex for vertices (muVert) and relations+adjacency
//     (muEdgeAdj). Lock order is always muVert → muEdgeAdj.
//
// Analysis code never walks the Graph directly. It takes a View, an immutable
// snapshot of the active relation over dense indices 0..N-1 (ascending
// VertexID order), optionally without isolated vertices:
//
//	v := g.View(true) // drop isolates
//	for i := 0; i < v.N(); i++ {
//		for _, a := range v.Out(i) {
//			_ = a.To     // dense neighbor index
//			_ = a.Weight // tie value
//		}
//	}
//
// Version() increases on every mutation that can change an analysis result,
// so request-scoped caches can tell when a View went stale.
//
// Errors:
//
//	ErrInvalidVertex      - identifier is not currently in use.
//	ErrDuplicateVertex    - AddVertexWithID with an identifier already in use.
//	ErrEdgeNotFound       - requested edge does not exist in the active relation.
//	ErrBadWeight          - NaN or ±Inf weight.
//	ErrLoopNotAllowed     - self-loop when loops are disabled.
//	ErrRelationNotFound   - relation index out of range.
//
// Determinism: Vertices(), Edges(), Neighbors() and View indices are sorted.
package core
