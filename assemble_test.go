package fem

import (
	"math"
	"testing"
)

func TestAssemble_SingleElement(t *testing.T) {
	space := newP2Space(t, 1)
	sys := Assemble(space, &Diffusion{K: ConstVal(1), S: ConstVal(2)})

	// exact P2 stiffness on a unit element, dof order (left, right, mid)
	wantA := [3][3]float64{
		{7.0 / 3, 1.0 / 3, -8.0 / 3},
		{1.0 / 3, 7.0 / 3, -8.0 / 3},
		{-8.0 / 3, -8.0 / 3, 16.0 / 3},
	}
	// exact load for s=2: 2*h/6*(1,1,4)
	wantB := [3]float64{1.0 / 3, 1.0 / 3, 4.0 / 3}

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if got := sys.A.At(i, j); math.Abs(got-wantA[i][j]) > 1e-12 {
				t.Errorf("A[%v][%v]=%v, want %v", i, j, got, wantA[i][j])
			}
		}
		if math.Abs(sys.B[i]-wantB[i]) > 1e-12 {
			t.Errorf("b[%v]=%v, want %v", i, sys.B[i], wantB[i])
		}
	}
}

func TestAssemble_SymmetricZeroRowSums(t *testing.T) {
	for _, cells := range []int{1, 2, 12, 31} {
		space := newP2Space(t, cells)
		sys := Assemble(space, &Diffusion{K: ConstVal(1), S: ConstVal(2)})
		n := space.NumDofs()

		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < n; j++ {
				sum += sys.A.At(i, j)
				if d := sys.A.At(i, j) - sys.A.At(j, i); math.Abs(d) > 1e-12 {
					t.Errorf("cells=%v: A[%v][%v]-A[%v][%v]=%v, want symmetric", cells, i, j, j, i, d)
				}
			}
			// constants are in the kernel of the weak laplacian
			if math.Abs(sum) > 1e-10 {
				t.Errorf("cells=%v: row %v sums to %v, want 0", cells, i, sum)
			}
		}
	}
}

func TestAssemble_VariableCoefficient(t *testing.T) {
	// -(K u')' with K(x)=1+x on one unit element; entry (mid,mid) is
	// ∫ (1+x)*(dmid/dx)^2 dx with dmid/dx = 4-8x on [0,1]:
	// ∫ (1+x)(4-8x)^2 dx = 16/3 + 8 = 8
	space := newP2Space(t, 1)
	sys := Assemble(space, &Diffusion{K: FuncVal(func(x float64) float64 { return 1 + x }), S: ConstVal(0)})

	if got := sys.A.At(2, 2); math.Abs(got-8) > 1e-12 {
		t.Errorf("A[mid][mid]=%v, want 8", got)
	}
	for i := range sys.B {
		if sys.B[i] != 0 {
			t.Errorf("b[%v]=%v, want 0 for zero source", i, sys.B[i])
		}
	}
}
