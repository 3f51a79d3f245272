package fem

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/NicolaPerin/fem/sparse"
)

// Solver solves an assembled, boundary-conditioned linear system for
// the nodal solution values.  Implementations leave the system
// unmodified, so solving the same system twice gives identical results.
type Solver interface {
	Solve(sys *LinearSystem) ([]float64, error)
	Status() string
}

// Solve solves the system directly with DenseCholesky.
func Solve(sys *LinearSystem) ([]float64, error) {
	return DenseCholesky{}.Solve(sys)
}

// DenseCholesky is a direct solver using gonum's dense Cholesky
// factorization.  The system must be symmetric positive-definite, which
// holds for the diffusion weak form after Dirichlet elimination.
type DenseCholesky struct{}

func (DenseCholesky) Status() string { return "" }

func (DenseCholesky) Solve(sys *LinearSystem) ([]float64, error) {
	n := len(sys.B)
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j, v := range sys.A.NonzeroCols(i) {
			if j >= i {
				sym.SetSym(i, j, v)
			}
		}
	}

	var chol mat.Cholesky
	if ok := chol.Factorize(sym); !ok {
		return nil, fmt.Errorf("%w: cholesky factorization failed", ErrSingularSystem)
	}
	var x mat.VecDense
	if err := chol.SolveVecTo(&x, mat.NewVecDense(n, append([]float64{}, sys.B...))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	return x.RawVector().Data, nil
}

// DenseLU is a direct solver using gonum's dense LU factorization.  It
// does not require positive-definiteness.
type DenseLU struct{}

func (DenseLU) Status() string { return "" }

func (DenseLU) Solve(sys *LinearSystem) ([]float64, error) {
	var x mat.VecDense
	if err := x.SolveVec(sys.A, mat.NewVecDense(len(sys.B), append([]float64{}, sys.B...))); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
	}
	return x.RawVector().Data, nil
}

// SparseSolver adapts any sparse.Solver (sparse Cholesky, CG,
// Gauss-Jordan) to the Solver interface.
type SparseSolver struct {
	S sparse.Solver
}

func (s SparseSolver) Status() string { return s.S.Status() }

func (s SparseSolver) Solve(sys *LinearSystem) ([]float64, error) {
	x, err := s.S.Solve(sys.A, sys.B)
	if err != nil {
		if errors.Is(err, sparse.ErrNotPositiveDefinite) {
			return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		return nil, err
	}
	return x, nil
}
