// Package fem solves 1D elliptic boundary-value problems with degree-2
// Lagrange finite elements.  The pipeline is:
//
//	mesh := fem.NewUniformInterval(12)
//	space := fem.NewFunctionSpace(mesh, 2)
//	sys := fem.Assemble(space, &fem.Diffusion{K: fem.ConstVal(1), S: fem.ConstVal(2)})
//	fem.ApplyDirichlet(sys, bcs)
//	u, err := fem.Solve(sys)
//
// Mesh and FunctionSpace are read-only once built.  The LinearSystem is
// mutated by assembly and boundary condition elimination and left alone
// by solvers, and the error-norm functions compare a solution vector
// against a known exact solution element by element.
package fem
