// Command poisson solves the 1D Poisson boundary-value problem
//
//	-u''(x) = s  on [0,1],  u(0) = left,  u(1) = right
//
// with degree-2 Lagrange finite elements and prints the degree-of-freedom
// table, the solution values, and the L2/H1-seminorm errors against the
// closed-form solution.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/NicolaPerin/fem"
	"github.com/NicolaPerin/fem/sparse"
)

const boundaryTol = 1e-9

func main() {
	log.SetFlags(0)

	cells := flag.Int("cells", 12, "number of mesh cells (positive)")
	left := flag.Float64("left", 0, "Dirichlet value at x=0")
	right := flag.Float64("right", 1, "Dirichlet value at x=1")
	source := flag.Float64("source", 2, "constant source term s")
	solver := flag.String("solver", "cholesky", "linear solver: cholesky, lu, sparse, cg, gj")
	flag.Parse()

	mesh, err := fem.NewUniformInterval(*cells)
	if err != nil {
		log.Fatal(err)
	}
	space, err := fem.NewFunctionSpace(mesh, 2)
	if err != nil {
		log.Fatal(err)
	}

	sys := fem.Assemble(space, &fem.Diffusion{K: fem.ConstVal(1), S: fem.ConstVal(*source)})

	lbc, err := fem.DirichletAt(space, fem.Near(0, boundaryTol), *left)
	if err != nil {
		log.Fatal(err)
	}
	rbc, err := fem.DirichletAt(space, fem.Near(1, boundaryTol), *right)
	if err != nil {
		log.Fatal(err)
	}
	if err := fem.ApplyDirichlet(sys, append(lbc, rbc...)); err != nil {
		log.Fatal(err)
	}

	s, err := pickSolver(*solver)
	if err != nil {
		log.Fatal(err)
	}
	u, err := s.Solve(sys)
	if err != nil {
		log.Fatal(err)
	}

	printSolution(space, u)
	if status := s.Status(); status != "" {
		fmt.Println(status)
	}

	// closed form for a constant source on [0,1]:
	// u(x) = left + (right-left)*x + s/2*x*(1-x)
	a, b, src := *left, *right, *source
	exact := func(x float64) float64 { return a + (b-a)*x + src/2*x*(1-x) }
	exactDeriv := func(x float64) float64 { return (b - a) + src/2*(1-2*x) }

	fmt.Printf("L2 squared error:          %.3e\n", fem.L2SquaredError(space, u, exact))
	fmt.Printf("H1 seminorm squared error: %.3e\n", fem.H1SeminormSquaredError(space, u, exactDeriv))
}

func pickSolver(name string) (fem.Solver, error) {
	switch name {
	case "cholesky":
		return fem.DenseCholesky{}, nil
	case "lu":
		return fem.DenseLU{}, nil
	case "sparse":
		return fem.SparseSolver{S: sparse.CholeskySolver{}}, nil
	case "cg":
		return fem.SparseSolver{S: &sparse.CG{MaxIter: 1000, Tol: 1e-12}}, nil
	case "gj":
		return fem.SparseSolver{S: sparse.GaussJordanSym{}}, nil
	}
	return nil, fmt.Errorf("unknown solver %q", name)
}

func printSolution(space *fem.FunctionSpace, u []float64) {
	type row struct {
		dof int
		x   float64
	}
	rows := make([]row, space.NumDofs())
	for d := range rows {
		rows[d] = row{dof: d, x: space.DofX(d)}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].x < rows[j].x })

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "dof\tx\tu\t")
	for _, r := range rows {
		fmt.Fprintf(tw, "%v\t%.6f\t%.8f\t\n", r.dof, r.x, u[r.dof])
	}
	tw.Flush()
}
