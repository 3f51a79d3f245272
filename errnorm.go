package fem

// nQuadError is the Gauss-Legendre point count used for error norms.
// Five points integrate polynomials through degree 9 exactly;
// (exact-uh)^2 is degree 4 when the exact solution is quadratic, so the
// computed norms are exact up to round-off for such problems.
const nQuadError = 5

// L2SquaredError returns the squared L2 norm of the difference between
// the finite element function with nodal values u and the exact
// solution, accumulated element by element via Gauss quadrature.
func L2SquaredError(space *FunctionSpace, u []float64, exact func(x float64) float64) float64 {
	return quadError(space, u, exact, false)
}

// H1SeminormSquaredError returns the squared H1 seminorm of the error -
// the squared L2 norm of the difference between the finite element
// function's derivative and exactDeriv.
func H1SeminormSquaredError(space *FunctionSpace, u []float64, exactDeriv func(x float64) float64) float64 {
	return quadError(space, u, exactDeriv, true)
}

func quadError(space *FunctionSpace, u []float64, exact func(x float64) float64, deriv bool) float64 {
	mesh := space.Mesh()
	xs, ws := gaussRule(nQuadError)

	tot := 0.0
	for e := 0; e < mesh.NumCells(); e++ {
		dofs := space.ElemDofs(e)
		x1, x2 := mesh.NodeX(e), mesh.NodeX(e+1)
		jac := (x2 - x1) / 2

		for q, xi := range xs {
			x := (x1*(1-xi) + x2*(1+xi)) / 2

			uh := 0.0
			for l, fn := range p2Basis {
				if deriv {
					uh += u[dofs[l]] * fn.Deriv(xi) / jac
				} else {
					uh += u[dofs[l]] * fn.Value(xi)
				}
			}

			diff := exact(x) - uh
			tot += ws[q] * jac * diff * diff
		}
	}
	return tot
}
