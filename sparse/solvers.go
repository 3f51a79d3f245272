package sparse

import (
	"fmt"
	"math"
)

// Solver solves the linear system A*x = b.  Implementations must leave
// A and b unmodified.
type Solver interface {
	Solve(A *Matrix, b []float64) (x []float64, err error)
	Status() string
}

// CholeskySolver is a direct solver for symmetric positive-definite
// systems via sparse Cholesky factorization.
type CholeskySolver struct{}

func (CholeskySolver) Status() string { return "" }

func (CholeskySolver) Solve(A *Matrix, b []float64) ([]float64, error) {
	chol, err := NewCholesky(A)
	if err != nil {
		return nil, err
	}
	return chol.Solve(b)
}

// CG implements a linear conjugate gradient solver (see
// http://wikipedia.org/wiki/Conjugate_gradient_method)
type CG struct {
	MaxIter int
	Tol     float64
	niter   int
}

func (cg *CG) Status() string { return fmt.Sprintf("converged in %v iterations", cg.niter) }

func (cg *CG) Solve(A *Matrix, b []float64) ([]float64, error) {
	size := len(b)

	x := make([]float64, size)
	r := make([]float64, size)
	p := make([]float64, size)
	rnext := make([]float64, size)

	vecSub(r, b, A.Mul(x))
	copy(p, r)

	for cg.niter = 1; cg.niter <= cg.MaxIter; cg.niter++ {
		alpha := dot(r, r) / dot(p, A.Mul(p))
		vecAdd(x, x, vecMult(p, alpha))            // xnext = x+alpha*p
		vecSub(rnext, r, vecMult(A.Mul(p), alpha)) // rnext = r-alpha*A*p
		if math.Sqrt(dot(rnext, rnext)) < cg.Tol {
			break
		}
		beta := dot(rnext, rnext) / dot(r, r)
		vecAdd(p, rnext, vecMult(p, beta)) // pnext = rnext + beta*p
		r, rnext = rnext, r
	}

	return x, nil
}

// GaussJordan performs Gauss-Jordan elimination on an augmented matrix
// [A|b] to solve the system A*x = b.
type GaussJordan struct{}

func (GaussJordan) Status() string { return "" }

func (GaussJordan) Solve(A *Matrix, b []float64) ([]float64, error) {
	size, _ := A.Dims()
	A = A.Clone()
	b = append([]float64{}, b...)

	// Using pivot rows (usually along the diagonal), eliminate all entries
	// below the pivot - doing this choosing a pivot row to eliminate
	// nonzeros in each column.  We only eliminate below the diagonal on the
	// first pass to reduce fill-in.  If we do only one pass total,
	// eliminating entries above the diagonal converts many zero entries
	// into nonzero entries which slows the algorithm down immensely.  The
	// second pass walks the pivot rows in reverse eliminating nonzeros
	// above the pivots (i.e. above the diagonal).

	donerows := make(map[int]bool, size)
	pivots := make([]int, size)

	// first pass
	for j := 0; j < size; j++ {
		// find a first row with a nonzero entry in column j on or below the
		// diagonal to use as the pivot row.
		piv := -1
		for i := 0; i < size; i++ {
			if A.At(i, j) != 0 && !donerows[i] {
				piv = i
				break
			}
		}
		if piv < 0 {
			return nil, fmt.Errorf("sparse: no pivot available for column %v", j)
		}
		pivots[j] = piv
		donerows[piv] = true

		applyPivot(A, b, j, pivots[j], -1)
	}

	// second pass
	for j := size - 1; j >= 0; j-- {
		applyPivot(A, b, j, pivots[j], 1)
	}

	// renormalize each row so that leading nonzeros are ones (row echelon
	// to reduced row echelon)
	for j, i := range pivots {
		mult := 1 / A.At(i, j)
		RowMult(A, i, mult)
		b[i] *= mult
	}

	// re-sequence solution based on pivot row indices/order
	x := make([]float64, size)
	for i := range pivots {
		x[i] = b[pivots[i]]
	}
	return x, nil
}

// GaussJordanSym runs Gauss-Jordan elimination after a reverse
// Cuthill-McKee permutation of the matrix indices/DOF to shrink the
// bandwidth.
type GaussJordanSym struct{}

func (GaussJordanSym) Status() string { return "" }

func (GaussJordanSym) Solve(A *Matrix, b []float64) ([]float64, error) {
	size, _ := A.Dims()

	mapping := RCM(A)
	AA := A.Permute(mapping)
	bb := make([]float64, size)
	for i, inew := range mapping {
		bb[inew] = b[i]
	}

	x, err := GaussJordan{}.Solve(AA, bb)
	if err != nil {
		return nil, err
	}

	// re-sequence solution based on RCM permutation/reordering
	xx := make([]float64, size)
	for i, inew := range mapping {
		xx[i] = x[inew]
	}
	return xx, nil
}

// applyPivot uses the given pivot row to multiply and add to all other
// rows in A either above or below the pivot (dir = -1 for below pivot
// and 1 for above pivot) in order to zero out the given column.  The
// matching operations are performed on b to keep it in sync.
func applyPivot(A *Matrix, b []float64, col int, piv int, dir int) {
	pval := A.At(piv, col)
	bval := b[piv]
	for i, aij := range snapshot(A.NonzeroRows(col)) {
		cond := (dir < 0 && i > piv) || (dir > 0 && i < piv)
		if i != piv && cond {
			mult := -aij / pval
			RowCombination(A, piv, i, mult)
			b[i] += bval * mult
		}
	}
}

func vecAdd(result, a, b []float64) {
	if len(a) != len(b) {
		panic("inconsistent lengths for vector addition")
	}
	for i := range a {
		result[i] = a[i] + b[i]
	}
}

func vecSub(result, a, b []float64) {
	if len(a) != len(b) {
		panic("inconsistent lengths for vector subtraction")
	}
	for i := range a {
		result[i] = a[i] - b[i]
	}
}

// dot performs a vector*vector dot product.
func dot(a, b []float64) float64 {
	if len(a) != len(b) {
		panic("inconsistent lengths for dot product")
	}
	v := 0.0
	for i := range a {
		v += a[i] * b[i]
	}
	return v
}

func vecMult(v []float64, mult float64) []float64 {
	result := make([]float64, len(v))
	for i := range v {
		result[i] = mult * v[i]
	}
	return result
}
