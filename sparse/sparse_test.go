package sparse

import (
	"math"
	"testing"
)

func TestMatrix_SetAt(t *testing.T) {
	m := New(3)
	m.Set(0, 1, 2.5)
	m.Set(1, 0, -1)
	m.Set(2, 2, 4)

	if v := m.At(0, 1); v != 2.5 {
		t.Errorf("At(0,1)=%v, want 2.5", v)
	}
	if v := m.At(0, 2); v != 0 {
		t.Errorf("At(0,2)=%v, want 0", v)
	}

	// zeroing removes the entry from both sweep directions
	m.Set(0, 1, 0)
	if len(m.NonzeroCols(0)) != 0 {
		t.Errorf("row 0 has %v nonzeros after zeroing, want 0", len(m.NonzeroCols(0)))
	}
	if len(m.NonzeroRows(1)) != 0 {
		t.Errorf("col 1 has %v nonzeros after zeroing, want 0", len(m.NonzeroRows(1)))
	}

	// row and column sweeps agree
	if v, ok := m.NonzeroRows(0)[1]; !ok || v != -1 {
		t.Errorf("NonzeroRows(0)[1]=%v,%v, want -1,true", v, ok)
	}
}

func TestMatrix_Mul(t *testing.T) {
	// [[2,1,0],[1,3,0],[0,0,5]] * [1,2,3] = [4,7,15]
	m := New(3)
	m.Set(0, 0, 2)
	m.Set(0, 1, 1)
	m.Set(1, 0, 1)
	m.Set(1, 1, 3)
	m.Set(2, 2, 5)

	got := m.Mul([]float64{1, 2, 3})
	want := []float64{4, 7, 15}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Mul[%v]=%v, want %v", i, got[i], want[i])
		}
	}
}

func TestMatrix_Permute(t *testing.T) {
	m := New(2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 1, 3)

	p := m.Permute([]int{1, 0})
	if p.At(1, 1) != 1 || p.At(1, 0) != 2 || p.At(0, 0) != 3 {
		t.Errorf("permuted matrix wrong: [[%v,%v],[%v,%v]]", p.At(0, 0), p.At(0, 1), p.At(1, 0), p.At(1, 1))
	}
	// original untouched
	if m.At(0, 0) != 1 || m.At(0, 1) != 2 {
		t.Errorf("Permute modified the original matrix")
	}
}

func TestRCM_IsPermutation(t *testing.T) {
	m := tridiag(9, -1, 2, -1)
	mapping := RCM(m)

	seen := make([]bool, len(mapping))
	for _, to := range mapping {
		if to < 0 || to >= len(mapping) || seen[to] {
			t.Fatalf("RCM mapping %v is not a permutation", mapping)
		}
		seen[to] = true
	}

	// permuting must preserve the solution up to reordering
	b := make([]float64, 9)
	for i := range b {
		b[i] = float64(i + 1)
	}
	x, err := GaussJordanSym{}.Solve(m, b)
	if err != nil {
		t.Fatal(err)
	}
	res := m.Mul(x)
	for i := range res {
		if math.Abs(res[i]-b[i]) > 1e-10 {
			t.Errorf("residual[%v]=%v, want 0", i, res[i]-b[i])
		}
	}
}

// tridiag builds the n x n matrix with constant sub/main/super diagonals.
func tridiag(n int, lo, mid, up float64) *Matrix {
	m := New(n)
	for i := 0; i < n; i++ {
		m.Set(i, i, mid)
		if i > 0 {
			m.Set(i, i-1, lo)
		}
		if i < n-1 {
			m.Set(i, i+1, up)
		}
	}
	return m
}
