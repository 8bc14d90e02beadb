// Package cohesion measures how tightly knit a network is.
//
// Local structure:
//
//   - ClusteringCoefficient: share of possible ties among each vertex's
//     neighbors; vertices with fewer than two neighbors are excluded, not
//     counted as zero, and the network value is the mean over the rest.
//   - Cliques: maximal complete subgraphs (Bron–Kerbosch with pivoting) over
//     symmetric ties, or mutual arcs on digraphs, with per-vertex membership
//     counts and a co-membership matrix.
//   - TriadCensus: every unordered triple classified into one of the 16 MAN
//     classes (Mutual, Asymmetric, Null dyad counts).
//   - Reciprocity: arc and dyad reciprocity; trivially 1 on undirected graphs.
//   - Symmetric: whether the adjacency matrix equals its transpose.
//
// Global structure reuses the distance and matrix packages so that every
// figure agrees with the prominence indices computed from the same graph:
//
//   - Distances:    diameter, average distance, radius, eccentricities and
//     the connectedness class from one all-pairs computation.
//   - Walks:        walks of length k (k-th power of the 0/1 adjacency matrix).
//   - TotalWalks:   Σ_{k=1}^{n−1} Aᵏ; gated for n > matrix.LargeWalkThreshold.
//   - Reachability: 0/1 matrix derived from the distance result.
//
// Every function takes a distance.Options policy record; only DropIsolates
// (and ConsiderWeights where tie values matter) are read by the local measures.
package cohesion
