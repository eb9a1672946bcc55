// Package matrix provides the dense numeric storage used by quadratic
// objective evaluators.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 matrix with bounds-checked At/Set.
//   - Upper-triangular ingestion (FillUpper) for coefficient matrices given
//     as "row i, columns j ≥ i" streams.
//   - BindQuadForm, a quadratic form xᵀAx bound to a caller-owned vector
//     buffer and computed through gonum's mat.Inner without copying the
//     backing data.
//
// Storage is not required to be symmetric: a coefficient matrix read from an
// instance file keeps its lower triangle at zero and callers that need pair
// coefficients take a_ij + a_ji themselves.
//
// Errors are package sentinels (see errors.go) matched with errors.Is.
package matrix
