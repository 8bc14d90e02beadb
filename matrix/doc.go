// Package matrix provides the dense linear algebra the analysis engines need:
// a row-major Dense type behind the Matrix interface, elementwise and product
// kernels, Gaussian elimination with partial pivoting (LUP) and inversion,
// matrices derived from a core.View, and walk counting by matrix powers.
//
// What:
//
//   - Dense storage: NewDense, NewIdentity, At/Set with bounds checks, Clone.
//   - Kernels: Add, Sub, Mul, Transpose, Scale, MatVec, RowSums, ColSums, AllClose.
//   - Factorization: LUP (PA = LU) and Inverse. A pivot whose magnitude falls
//     below the singular epsilon fails with ErrSingular instead of producing
//     garbage.
//   - Graph-derived: Adjacency, Degree, Laplacian, Cocitation (A·Aᵀ),
//     Reachability (from a distance.Result, never recomputed), AdjacencyInverse.
//   - Walks: Power (k−1 multiplications), Walks on the 0/1 adjacency,
//     TotalWalks summing A¹..Aⁿ⁻¹.
//
// Why:
//
//	Every index that is easier to state in matrix form (information
//	centrality, cocitation, walk counts) goes through this one package, so
//	numeric policy (epsilon, NaN rejection, singularity detection) lives in
//	a single place.
//
// Long-running operations:
//
//	Inverse ticks WithProgress once per solved column. TotalWalks ticks once per
//	power, checks its context between multiplications only (an in-flight O(n³)
//	product is not interrupted) and refuses n > LargeWalkThreshold unless
//	WithLargeAllowed() is passed.
//
// Errors:
//
//	ErrInvalidDimensions, ErrOutOfRange, ErrDimensionMismatch, ErrNonSquare,
//	ErrNilMatrix, ErrNaNInf, ErrSingular, ErrTooExpensive, ErrBadPower.
//	Kernels wrap them as "<Op>: <sentinel>" via matrixErrorf; match with errors.Is.
//
// Complexity:
//
//	Mul, LUP, Inverse O(n³); Power O(k·n³); TotalWalks O(n⁴).
package matrix
