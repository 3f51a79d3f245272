package fem

import (
	"gonum.org/v1/gonum/integrate/quad"

	"github.com/NicolaPerin/fem/sparse"
)

// nQuadAssemble is the Gauss-Legendre point count used for assembly.
// Three points integrate polynomials through degree 5 exactly; the P2
// stiffness integrand is degree 2, so assembly of polynomial
// coefficient/source problems carries no quadrature error.
const nQuadAssemble = 3

// LinearSystem is the assembled discrete system A*u = b.  It is mutable
// during assembly and boundary condition application and is left
// untouched by solvers.
type LinearSystem struct {
	A *sparse.Matrix
	B []float64
}

func (s *LinearSystem) Clone() *LinearSystem {
	return &LinearSystem{A: s.A.Clone(), B: append([]float64{}, s.B...)}
}

// gaussRule returns the locations and weights of the n-point
// Gauss-Legendre rule on [-1,1].
func gaussRule(n int) (xs, ws []float64) {
	xs = make([]float64, n)
	ws = make([]float64, n)
	quad.Legendre{}.FixedLocations(xs, ws, -1, 1)
	return xs, ws
}

// Assemble integrates the weak form represented by k over every element
// of the space's mesh and scatters the local stiffness matrices and
// load vectors into a global linear system.  No boundary conditions are
// applied; the returned stiffness matrix is symmetric and singular
// (constant functions are in its kernel).
func Assemble(space *FunctionSpace, k Kernel) *LinearSystem {
	mesh := space.Mesh()
	n := space.NumDofs()
	sys := &LinearSystem{A: sparse.New(n), B: make([]float64, n)}

	xs, ws := gaussRule(nQuadAssemble)

	// tabulate the reference basis at the quadrature points
	var vals, ders [nodesPerElem][]float64
	for l, fn := range p2Basis {
		vals[l] = make([]float64, len(xs))
		ders[l] = make([]float64, len(xs))
		for q, xi := range xs {
			vals[l][q] = fn.Value(xi)
			ders[l][q] = fn.Deriv(xi)
		}
	}

	for e := 0; e < mesh.NumCells(); e++ {
		dofs := space.ElemDofs(e)
		x1, x2 := mesh.NodeX(e), mesh.NodeX(e+1)
		jac := (x2 - x1) / 2

		for q := range xs {
			// affine map from the reference element to [x1,x2]
			x := (x1*(1-xs[q]) + x2*(1+xs[q])) / 2
			wq := ws[q] * jac

			for i := 0; i < nodesPerElem; i++ {
				pars := &KernelParams{X: x, W: vals[i][q], GradW: ders[i][q] / jac}
				a := dofs[i]
				sys.B[a] += wq * k.VolInt(pars)

				for j := i; j < nodesPerElem; j++ {
					pars.U = vals[j][q]
					pars.GradU = ders[j][q] / jac
					v := wq * k.VolIntU(pars)

					b := dofs[j]
					sys.A.Set(a, b, sys.A.At(a, b)+v)
					if a != b {
						sys.A.Set(b, a, sys.A.At(b, a)+v)
					}
				}
			}
		}
	}
	return sys
}
