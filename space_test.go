package fem

import (
	"errors"
	"math"
	"testing"
)

func newP2Space(t testing.TB, cells int) *FunctionSpace {
	t.Helper()
	mesh, err := NewUniformInterval(cells)
	if err != nil {
		t.Fatal(err)
	}
	space, err := NewFunctionSpace(mesh, 2)
	if err != nil {
		t.Fatal(err)
	}
	return space
}

func TestFunctionSpace_Degree(t *testing.T) {
	mesh, err := NewUniformInterval(4)
	if err != nil {
		t.Fatal(err)
	}
	for _, degree := range []int{0, 1, 3} {
		if _, err := NewFunctionSpace(mesh, degree); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("degree %v: err=%v, want ErrInvalidArgument", degree, err)
		}
	}
}

func TestFunctionSpace_Dofs(t *testing.T) {
	tests := []struct {
		Cells int
		Dofs  int
	}{
		{Cells: 1, Dofs: 3},
		{Cells: 2, Dofs: 5},
		{Cells: 12, Dofs: 25},
	}

	for i, test := range tests {
		space := newP2Space(t, test.Cells)
		if space.NumDofs() != test.Dofs {
			t.Errorf("FAIL case %v (cells=%v): %v dofs, want %v", i+1, test.Cells, space.NumDofs(), test.Dofs)
		}

		seen := map[int]int{}
		for e := 0; e < test.Cells; e++ {
			dofs := space.ElemDofs(e)
			if dofs[0] == dofs[1] || dofs[0] == dofs[2] || dofs[1] == dofs[2] {
				t.Errorf("FAIL case %v: element %v has repeated dofs %v", i+1, e, dofs)
			}
			for _, d := range dofs {
				if d < 0 || d >= space.NumDofs() {
					t.Errorf("FAIL case %v: element %v dof %v out of range", i+1, e, d)
				}
				seen[d]++
			}
		}

		// adjacent elements share exactly the common-vertex dof
		for e := 0; e < test.Cells-1; e++ {
			a, b := space.ElemDofs(e), space.ElemDofs(e+1)
			shared := 0
			for _, da := range a {
				for _, db := range b {
					if da == db {
						shared++
					}
				}
			}
			if shared != 1 {
				t.Errorf("FAIL case %v: elements %v,%v share %v dofs, want 1", i+1, e, e+1, shared)
			}
			if a[1] != b[0] {
				t.Errorf("FAIL case %v: right dof of elem %v (%v) != left dof of elem %v (%v)", i+1, e, a[1], e+1, b[0])
			}
		}

		// every dof belongs to at least one element
		if len(seen) != space.NumDofs() {
			t.Errorf("FAIL case %v: %v dofs referenced by elements, want %v", i+1, len(seen), space.NumDofs())
		}
	}
}

func TestFunctionSpace_DofX(t *testing.T) {
	space := newP2Space(t, 4)
	mesh := space.Mesh()

	for n := 0; n < mesh.NumNodes(); n++ {
		if x := space.DofX(space.VertexDof(n)); x != mesh.NodeX(n) {
			t.Errorf("vertex dof %v at x=%v, want %v", n, x, mesh.NodeX(n))
		}
	}
	for e := 0; e < mesh.NumCells(); e++ {
		mid := space.ElemDofs(e)[2]
		want := mesh.ElemMid(e)
		if x := space.DofX(mid); math.Abs(x-want) > tol {
			t.Errorf("midpoint dof of element %v at x=%v, want %v", e, x, want)
		}
	}
}

func TestFunctionSpace_Interpolate(t *testing.T) {
	space := newP2Space(t, 5)

	// nodal interpolant of a quadratic is reproduced exactly everywhere
	f := func(x float64) float64 { return 3*x*x - 2*x + 1 }
	df := func(x float64) float64 { return 6*x - 2 }
	u := make([]float64, space.NumDofs())
	for d := range u {
		u[d] = f(space.DofX(d))
	}

	for _, x := range []float64{0, 0.05, 0.1, 0.37, 0.5, 0.93, 1} {
		v, err := space.Interpolate(u, x)
		if err != nil {
			t.Fatalf("interpolate at x=%v: %v", x, err)
		}
		if math.Abs(v-f(x)) > 1e-10 {
			t.Errorf("FAIL at x=%v: interpolated %v, want %v", x, v, f(x))
		}

		dv, err := space.Deriv(u, x)
		if err != nil {
			t.Fatalf("deriv at x=%v: %v", x, err)
		}
		if math.Abs(dv-df(x)) > 1e-9 {
			t.Errorf("FAIL at x=%v: derivative %v, want %v", x, dv, df(x))
		}
	}

	if _, err := space.Interpolate(u, 1.5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("out-of-mesh point: err=%v, want ErrInvalidArgument", err)
	}
}
