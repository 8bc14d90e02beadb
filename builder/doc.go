// Package builder provides deterministic fixture topologies for tests,
// examples and CLI demos, composed the functional-options way.
//
// The package offers:
//
//   - BuildGraph(gopts, bopts, cons...): one orchestrator that creates a
//     core.Graph and applies constructors in order. Each constructor adds
//     its own fresh vertices, so composing Complete(4), Complete(4) yields
//     two disjoint cliques.
//   - Constructors: Path, Cycle, Star, Wheel, Complete.
//   - Options: WithLabelScheme (index → vertex label), WithWeightFn
//     (tie index → weight), WithSymmetricArcs (emit both arcs on digraphs).
//
// Vertex identifiers follow core's monotonic counter, so on a fresh graph
// the first constructor's vertices are 1..n in construction order.
//
// Guarantees:
//
//   - Same inputs ⇒ identical graphs (no randomness anywhere).
//   - Constructors never panic; they return sentinel errors wrapped with
//     the constructor name. Option constructors panic on nil functions.
//
// Complexity: O(n) for Path/Cycle/Star/Wheel, O(n²) for Complete.
package builder
