// Package equivalence compares actors by their tie profiles and groups them
// by agglomerative hierarchical clustering.
//
// A profile is a vertex's row of the adjacency matrix (outbound ties), its
// column (inbound ties), or both concatenated, chosen by Location. Profiles
// are binary unless Options.ConsiderWeights is set. With IncludeDiagonal
// unset, positions i and j are skipped when comparing i with j, so a
// vertex's relation to itself or to its partner never counts.
//
// Pairwise tables, all n×n over ascending vertex ids:
//
//   - Pearson:       product-moment correlation (constant profiles give 0).
//   - Similarity:    MatchExact (agreement ratio), MatchJaccard, MatchHamming
//     (agreeing positions), MatchCosine, MatchEuclidean (1/(1+d)).
//   - Dissimilarity: DistEuclidean, DistManhattan, DistJaccard (1−Jaccard),
//     DistHamming (differing positions).
//
// Cluster merges the closest pair of clusters until one remains, updating
// distances with the Lance–Williams formula for Single, Complete or Average
// linkage. A lazy heap keeps the whole run at O(n² log n). Similarity tables
// are accepted through WithSimilarity, in which case the most similar pair
// merges first and heights are similarities.
//
// The package depends on core and matrix only; it never computes distances.
package equivalence
