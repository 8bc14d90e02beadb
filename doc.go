// Package sna is an in-memory social network analysis engine: build a graph
// of actors and ties, then ask who is prominent, how cohesive the network
// is, and which actors occupy equivalent positions.
//
// 🚀 What is in the box?
//
//	• Graph model: directed or undirected, valued ties, several relations
//	  over one actor set, stable identifiers, version counter
//	• Distances: geodesic lengths and counts (BFS / Dijkstra), diameter,
//	  average distance, eccentricity, connectedness classes
//	• Prominence: twelve centrality and prestige indices, standardized,
//	  with group centralization
//	• Cohesion: clustering, maximal cliques, triad census, reciprocity,
//	  line connectivity, spanning backbone, walk counts
//	• Equivalence: Pearson correlation, matching coefficients, tie-profile
//	  distances, hierarchical clustering
//	• Matrices: adjacency, degree, Laplacian, cocitation, reachability,
//	  LUP inverse
//
// ✨ How is it organized?
//
//	core/         — Graph, Vertex, Edge, relations, immutable View snapshots
//	bfs/ dijkstra/ dfs/ distance/ — single-source searches and all-pairs results
//	matrix/       — dense matrices and graph-derived matrices
//	flow/         — Edmonds–Karp maximum flow
//	centrality/ cohesion/ equivalence/ — the analysis engines
//	analysis/     — the facade: one Session per graph, typed failures,
//	                distance memo, tracing, metrics and logging
//	snapshot/     — YAML and TOML graph snapshots
//	config/       — snagraph settings from file, environment and flags
//	builder/      — path, star, cycle, complete and wheel fixtures
//	cmd/snagraph  — command-line reports
//
// Quick example:
//
//	g, _ := snapshot.Load("examples/kite.yaml")
//	s := analysis.NewSession(g)
//	bc, _ := s.Prominence(ctx, analysis.Config{}, centrality.BetweennessCentrality)
//	fmt.Println(bc.MaxVertices) // [8]: Heather brokers the kite's tail
//
// or from a shell:
//
//	go run ./cmd/snagraph prominence examples/kite.yaml --index BC,CC
package sna
