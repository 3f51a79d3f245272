package sparse

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotPositiveDefinite indicates a Cholesky factorization broke down
// because the matrix is not symmetric positive-definite.
var ErrNotPositiveDefinite = errors.New("sparse: matrix is not positive definite")

// Cholesky holds the lower-triangular factor L of a symmetric
// positive-definite matrix A = L*L^T.
type Cholesky struct {
	L *Matrix
}

// NewCholesky computes the Cholesky factorization of A.  A is not
// modified.
func NewCholesky(A *Matrix) (*Cholesky, error) {
	size, _ := A.Dims()
	L := A.Clone()

	for k := 0; k < size; k++ {
		akk := L.At(k, k)
		if akk <= 0 || math.IsNaN(akk) {
			return nil, fmt.Errorf("%w: bad pivot %v at dof %v", ErrNotPositiveDefinite, akk, k)
		}
		akk = math.Sqrt(akk)
		L.Set(k, k, akk)

		// scale column k below the diagonal
		below := map[int]float64{}
		for i, aik := range snapshot(L.NonzeroRows(k)) {
			if i > k {
				below[i] = aik / akk
				L.Set(i, k, below[i])
			}
		}

		// submatrix update: A[i][j] -= L[i][k]*L[j][k]
		for j, ajk := range below {
			for i, aik := range below {
				if i >= j {
					L.Set(i, j, L.At(i, j)-aik*ajk)
				}
			}
		}
	}

	// drop entries above the diagonal (the untouched upper triangle of A)
	for i := 0; i < size; i++ {
		for j := range snapshot(L.NonzeroCols(i)) {
			if j > i {
				L.Set(i, j, 0)
			}
		}
	}
	return &Cholesky{L: L}, nil
}

// Solve computes x in L*L^T*x = b via forward then backward substitution.
func (c *Cholesky) Solve(b []float64) ([]float64, error) {
	// solve L*y = b
	y := make([]float64, len(b))
	for i := 0; i < len(b); i++ {
		tot := 0.0
		for j, lij := range c.L.NonzeroCols(i) {
			if j != i {
				tot += y[j] * lij
			}
		}
		y[i] = (b[i] - tot) / c.L.At(i, i)
	}

	// solve L^T*x = y; sweeping column i of L stands in for row i of L^T
	x := make([]float64, len(b))
	for i := len(b) - 1; i >= 0; i-- {
		tot := 0.0
		for r, lri := range c.L.NonzeroRows(i) {
			if r != i {
				tot += x[r] * lri
			}
		}
		x[i] = (y[i] - tot) / c.L.At(i, i)
	}
	return x, nil
}
