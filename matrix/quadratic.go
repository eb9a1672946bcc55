// Package matrix - quadratic-form helpers for QBF-style objectives.
//
// Conventions:
//   - A coefficient matrix may be stored upper-triangular (lower triangle 0).
//   - QuadraticForm computes Σ_i Σ_j x_i·a_ij·x_j, i.e. xᵀAx with the matrix
//     used as stored (no symmetrization needed: xᵀAx == xᵀAᵀx).
//
// Complexity:
//   - FillUpper: O(n²).
//   - QuadraticForm.Eval: O(n²) via gonum mat.Inner (no copy of A or x).
package matrix

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// FillUpper writes values into the upper triangle (diagonal included) of a
// square matrix in row-major order: row i receives n−i values for j ≥ i.
// The lower triangle is set to zero.
//
// Contracts:
//   - m is square n×n.
//   - len(values) == n(n+1)/2.
//   - values are finite (ErrNaNInf otherwise).
func FillUpper(m *Dense, values []float64) error {
	if err := ValidateSquareNonNil(m); err != nil {
		return err
	}
	var n = m.r
	if len(values) != n*(n+1)/2 {
		return ErrDimensionMismatch
	}

	var (
		i, j int
		k    int // cursor into values
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j < i {
				m.data[i*n+j] = 0
				continue
			}
			v = values[k]
			k++
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return ErrNaNInf
			}
			m.data[i*n+j] = v
		}
	}

	return nil
}

// QuadraticForm evaluates xᵀAx repeatedly for a fixed matrix and a fixed,
// caller-owned vector buffer. Callers rewrite the buffer in place between
// calls; both gonum views alias the original storage.
type QuadraticForm struct {
	a *mat.Dense
	x *mat.VecDense
}

// BindQuadForm binds m and the buffer x (len(x) must equal m's order).
func (m *Dense) BindQuadForm(x []float64) (*QuadraticForm, error) {
	if err := ValidateSquareNonNil(m); err != nil {
		return nil, err
	}
	if err := ValidateVecLen(x, m.r); err != nil {
		return nil, err
	}

	return &QuadraticForm{
		a: mat.NewDense(m.r, m.c, m.data),
		x: mat.NewVecDense(len(x), x),
	}, nil
}

// Eval returns xᵀAx for the current content of the bound buffer.
// Complexity: O(n²).
func (q *QuadraticForm) Eval() float64 {
	return mat.Inner(q.x, q.a, q.x)
}
