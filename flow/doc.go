// Package flow computes maximum flows over a core.View with the
// Edmonds–Karp method (breadth-first shortest augmenting paths).
//
// In a social network the maximum flow between two actors under unit
// capacities is their line connectivity: the number of tie-disjoint paths
// joining them, i.e. how many ties must be cut before they lose contact.
// With WithCapacities the tie values become capacities instead.
//
// Undirected ties carry their capacity in both directions. Self-loops are
// ignored. Capacities are read once into a dense residual table, so memory
// is O(V²) and each run costs O(V·E²) time.
//
// Errors:
//
//	ErrViewNil            - the view is nil.
//	ErrVertexOutOfRange   - source or sink outside [0, N).
//	ErrSameEndpoints      - source equals sink.
//	ErrNegativeCapacity   - a capacity below zero (wrapped with the arc).
//	context.Canceled / context.DeadlineExceeded - checked once per augmentation.
package flow
