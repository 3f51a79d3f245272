package fem

import (
	"fmt"
	"math"
)

// bcValTol is the tolerance for treating two prescribed values on the
// same DoF as identical.
const bcValTol = 1e-12

// DirichletBC prescribes the solution value at a single degree of
// freedom.
type DirichletBC struct {
	Dof int
	Val float64
}

// DirichletAt builds boundary conditions fixing val at every vertex DoF
// whose node coordinate satisfies pred.  It fails if no node matches.
func DirichletAt(space *FunctionSpace, pred func(x float64) bool, val float64) ([]DirichletBC, error) {
	ids := space.Mesh().NodesWhere(pred)
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: no mesh node matches the boundary predicate", ErrInvalidArgument)
	}
	bcs := make([]DirichletBC, len(ids))
	for i, id := range ids {
		bcs[i] = DirichletBC{Dof: space.VertexDof(id), Val: val}
	}
	return bcs, nil
}

// ApplyDirichlet eliminates the given boundary conditions from the
// system in place.  For each condition (d, v) the row and column d are
// zeroed except for a unit diagonal, the load entry d becomes v, and
// every other row r with a nonzero entry A[r][d] gets A[r][d]*v
// subtracted from its load entry first.  This keeps the reduced system
// symmetric and equivalent to the constrained problem.
//
// Two conditions targeting the same DoF with conflicting values fail
// with ErrInvalidArgument and leave the system unmodified.
func ApplyDirichlet(sys *LinearSystem, bcs []DirichletBC) error {
	vals := make(map[int]float64, len(bcs))
	for _, bc := range bcs {
		if bc.Dof < 0 || bc.Dof >= len(sys.B) {
			return fmt.Errorf("%w: boundary condition dof %v out of range [0,%v)", ErrInvalidArgument, bc.Dof, len(sys.B))
		}
		if prev, ok := vals[bc.Dof]; ok && math.Abs(prev-bc.Val) > bcValTol {
			return fmt.Errorf("%w: conflicting boundary values %v and %v at dof %v", ErrInvalidArgument, prev, bc.Val, bc.Dof)
		}
		vals[bc.Dof] = bc.Val
	}

	for d, v := range vals {
		// move the known column contribution to the right hand side
		for r, ard := range copyEntries(sys.A.NonzeroRows(d)) {
			if r == d {
				continue
			}
			if _, constrained := vals[r]; !constrained {
				sys.B[r] -= ard * v
			}
			sys.A.Set(r, d, 0)
		}
		// identity row
		for c := range copyEntries(sys.A.NonzeroCols(d)) {
			sys.A.Set(d, c, 0)
		}
		sys.A.Set(d, d, 1)
		sys.B[d] = v
	}
	return nil
}

func copyEntries(entries map[int]float64) map[int]float64 {
	cp := make(map[int]float64, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return cp
}
