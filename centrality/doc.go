// Package centrality computes the twelve prominence indices of a social
// network, nine centrality and three prestige indices, together with the
// graph-level centralization of each.
//
// Every index is selected through the closed Index enumeration and computed
// by a single entry point:
//
//	set, err := centrality.Compute(ctx, g, centrality.BetweennessCentrality, centrality.Options{})
//
// Policy travels in Options on every call; nothing is remembered between
// calls. Options.Distances lets a caller share one distance.Result between
// several indices of the same request.
//
// Indices and the engine they consume:
//
//   - DegreeCentrality, DegreePrestige:   adjacency (out/in ties).
//   - ClosenessCentrality:                distances; connected graphs only.
//   - InfluenceRangeCloseness:            distances; any graph.
//   - BetweennessCentrality, StressCentrality: distances with geodesic counts (Brandes).
//   - EccentricityCentrality, PowerCentrality: distances.
//   - InformationCentrality:              matrix inverse (Stephenson–Zelen), isolates always dropped.
//   - EigenvectorCentrality:              power iteration on A+I.
//   - PageRankPrestige:                   damped power iteration.
//   - ProximityPrestige:                  distances; directed graphs only.
//
// Each ScoreSet carries raw scores, standardized scores in [0,1], summary
// statistics over the standardized scores and the centralization index.
//
// Errors:
//
//   - ErrRequiresConnectedGraph: closeness on a disconnected active set.
//   - ErrNoConvergence:          an iterative index hit Options.MaxIterations.
//   - ErrUndefinedMetric:        proximity prestige on an undirected graph, or
//     eigenvector centrality on a digraph without directed cycles.
//   - core.ErrInvalidVertex, dijkstra.ErrDegenerateWeight and
//     matrix.ErrSingular propagate wrapped.
//
// Complexity: distance-based indices are O(V·(V+E)) unweighted and
// O(V·E log V) weighted; information centrality is O(V³); the iterative
// indices are O(k·V²) for k iterations.
package centrality
