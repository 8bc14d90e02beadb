// Package distance computes geodesic distances, geodesic counts and the
// graph-level distance summaries every prominence and cohesion index builds on.
//
// Policy is passed explicitly on every call through Options:
//
//   - ConsiderWeights: run Dijkstra when the active relation carries non-unit
//     weights; otherwise (or when false) run BFS and count hops. Under this
//     policy a tie valued 0 is no tie, as in the valued adjacency matrix.
//   - InvertWeights:   read tie values as strengths, so length = 1/w. A zero
//     value anywhere in the view fails with dijkstra.ErrDegenerateWeight
//     before any search starts.
//   - DropIsolates:    leave isolated vertices out of sources and targets.
//
// A Result holds one single-source row per retained vertex together with the
// core.View the rows index into, so downstream code never has to re-derive
// the index space. Results are immutable once built and may be shared
// between centrality and cohesion computations of one request.
//
// Summaries:
//
//   - Diameter:        maximum finite distance over ordered pairs u≠v.
//   - AverageDistance: mean over reachable ordered pairs only. A disconnected
//     graph therefore reports the average of what is actually reachable.
//   - Eccentricity:    maximum finite distance from a vertex (0 if it reaches nobody).
//   - Radius:          minimum eccentricity over vertices that reach someone.
//   - Connectedness:   one of the Class values.
//
// Summaries with no finite pair to speak of fail with ErrUndefined.
//
// Complexity: AllPairs is O(V·(V+E)) unweighted and O(V·E log V) weighted.
package distance
