// Package dijkstra implements Dijkstra's shortest-path search over a core.View
// with non-negative tie values, counting geodesics the way package bfs does.
//
// Dijkstra computes the minimum-cost distance from a source index to every
// reachable index. It processes vertices in order of increasing distance
// using a min-heap priority queue, relaxing arcs as it goes. Two candidate
// distances that agree within a relative epsilon are treated as a tie, so
// the geodesic count σ and the predecessor list grow instead of resetting.
// An arc whose value is 0 is not a tie: it is skipped, matching the valued
// adjacency matrix, where 0 marks an absent tie.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once.
//   - Each relaxation may push a new heap entry (lazy decrease-key).
//   - Space: O(V + E)
//
// Options:
//
//   - WithContext(ctx):     cancellation, checked once per finalized vertex.
//   - WithInvertWeights():  use 1/w as the arc length (strengths become distances).
//   - WithEpsilon(eps):     relative tolerance for tie detection (default 1e-9).
//   - WithMaxDistance(x):   vertices farther than x are left unreached.
//
// Errors (sentinel):
//
//   - ErrViewNil           if the view pointer is nil.
//   - ErrSourceOutOfRange  if the source index is not in [0, N).
//   - ErrNegativeWeight    if any arc carries a negative value.
//   - ErrDegenerateWeight  if inversion is requested and an arc carries 0.
//   - ErrOptionViolation   if an option received an invalid argument.
//
// The result type is shared with package bfs, so downstream code (distance,
// centrality) handles hop-count and weighted searches uniformly.
//
// Example usage:
//
//	res, err := dijkstra.Search(g.View(false), 0, dijkstra.WithInvertWeights())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Dist[3], res.Sigma[3])
package dijkstra
