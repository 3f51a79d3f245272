// Package sparse provides a map-backed sparse matrix and a few solvers
// for the symmetric systems produced by finite element assembly.
package sparse

import (
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a square sparse matrix indexed by both row and column so
// that sweeps along either are cheap.  It implements gonum's mat.Matrix.
type Matrix struct {
	// nonzeroCol[row] maps column index to value
	nonzeroCol []map[int]float64
	// nonzeroRow[col] maps row index to value
	nonzeroRow []map[int]float64
	size       int
}

// New creates a size x size matrix of zeros.
func New(size int) *Matrix {
	return &Matrix{
		nonzeroCol: make([]map[int]float64, size),
		nonzeroRow: make([]map[int]float64, size),
		size:       size,
	}
}

func (m *Matrix) Clone() *Matrix {
	clone := New(m.size)
	for i, cols := range m.nonzeroCol {
		for j, v := range cols {
			clone.Set(i, j, v)
		}
	}
	return clone
}

func (m *Matrix) Dims() (int, int)    { return m.size, m.size }
func (m *Matrix) At(i, j int) float64 { return m.nonzeroCol[i][j] }
func (m *Matrix) T() mat.Matrix       { return mat.Transpose{Matrix: m} }

// Set stores v at entry (i,j).  Setting an entry to exactly zero
// removes it from the sparsity pattern.
func (m *Matrix) Set(i, j int, v float64) {
	if v == 0 {
		delete(m.nonzeroCol[i], j)
		delete(m.nonzeroRow[j], i)
		return
	}
	if m.nonzeroCol[i] == nil {
		m.nonzeroCol[i] = make(map[int]float64)
	}
	if m.nonzeroRow[j] == nil {
		m.nonzeroRow[j] = make(map[int]float64)
	}
	m.nonzeroCol[i][j] = v
	m.nonzeroRow[j][i] = v
}

// NonzeroCols returns the nonzero entries of row i keyed by column.
// The returned map must not be modified while iterating the matrix.
func (m *Matrix) NonzeroCols(row int) map[int]float64 { return m.nonzeroCol[row] }

// NonzeroRows returns the nonzero entries of column j keyed by row.
func (m *Matrix) NonzeroRows(col int) map[int]float64 { return m.nonzeroRow[col] }

// Mul computes the matrix-vector product m*b.
func (m *Matrix) Mul(b []float64) []float64 {
	result := make([]float64, len(b))
	for i := 0; i < m.size; i++ {
		tot := 0.0
		for j, val := range m.nonzeroCol[i] {
			tot += b[j] * val
		}
		result[i] = tot
	}
	return result
}

// Permute maps i and j indices to new values given by mapping: values
// stored at m.At(i,j) land at new.At(mapping[i], mapping[j]).  The
// permuted matrix is returned and the original remains unmodified.
func (m *Matrix) Permute(mapping []int) *Matrix {
	clone := New(m.size)
	for i := 0; i < m.size; i++ {
		for j, val := range m.NonzeroCols(i) {
			clone.Set(mapping[i], mapping[j], val)
		}
	}
	return clone
}

// RowCombination adds mult times the pivot row to the destination row.
func RowCombination(m *Matrix, pivrow, dstrow int, mult float64) {
	for col, aij := range snapshot(m.NonzeroCols(pivrow)) {
		m.Set(dstrow, col, m.At(dstrow, col)+aij*mult)
	}
}

// RowMult scales every entry of the given row by mult.
func RowMult(m *Matrix, row int, mult float64) {
	for col, val := range snapshot(m.NonzeroCols(row)) {
		m.Set(row, col, val*mult)
	}
}

// snapshot copies a nonzero map so the caller can mutate the matrix
// while ranging over entries.
func snapshot(entries map[int]float64) map[int]float64 {
	cp := make(map[int]float64, len(entries))
	for k, v := range entries {
		cp[k] = v
	}
	return cp
}

// RCM computes a reverse Cuthill-McKee degree-of-freedom reordering of
// the assembled matrix that gives better bandwidth properties for
// elimination-based solvers.
func RCM(A *Matrix) []int {
	size, _ := A.Dims()
	mapping := make(map[int]int, size)

	degreemap := make([]int, size)
	for i := range degreemap {
		degreemap[i] = i
	}
	sort.SliceStable(degreemap, func(i, j int) bool {
		return len(A.NonzeroCols(degreemap[i])) < len(A.NonzeroCols(degreemap[j]))
	})

	// breadth-first search across adjacency/connections between dofs
	nextlevel := []int{degreemap[0]}
	for n := 0; n < size; n++ {
		if len(nextlevel) == 0 {
			// matrix must not represent a fully connected graph - pick an
			// unmapped dof to restart from
			for _, k := range degreemap {
				if _, ok := mapping[k]; !ok {
					nextlevel = []int{k}
					break
				}
			}
		}

		for _, i := range nextlevel {
			if _, ok := mapping[i]; !ok {
				mapping[i] = len(mapping)
			}
		}
		if len(mapping) >= size {
			break
		}
		nextlevel = nextRCMLevel(A, mapping, nextlevel)
	}

	reverse := make([]int, size)
	for i := range reverse {
		reverse[i] = size - 1 - i
	}

	slice := make([]int, size)
	for from, to := range mapping {
		slice[from] = reverse[to]
	}
	return slice
}

func nextRCMLevel(A *Matrix, mapping map[int]int, ii []int) []int {
	var nextlevel []int
	for _, i := range ii {
		for j := range A.NonzeroCols(i) {
			if _, ok := mapping[j]; !ok {
				nextlevel = append(nextlevel, j)
			}
		}
	}
	return nextlevel
}
