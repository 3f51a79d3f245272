package fem

import "fmt"

// Mesh partitions a closed interval [x0,x1] into contiguous 1D elements
// with nodes in non-decreasing coordinate order.  Element i connects node
// i and node i+1.  A mesh is immutable once built.
type Mesh struct {
	nodes []float64
}

// NewUniformInterval creates a mesh of numCells evenly sized elements on
// [0,1] with numCells+1 nodes.
func NewUniformInterval(numCells int) (*Mesh, error) {
	return NewInterval(0, 1, numCells)
}

// NewInterval creates a mesh of numCells evenly sized elements on [x0,x1].
func NewInterval(x0, x1 float64, numCells int) (*Mesh, error) {
	if numCells < 1 {
		return nil, fmt.Errorf("%w: mesh needs at least 1 cell, got %v", ErrInvalidArgument, numCells)
	}
	if x1 <= x0 {
		return nil, fmt.Errorf("%w: degenerate interval [%v,%v]", ErrInvalidArgument, x0, x1)
	}

	m := &Mesh{nodes: make([]float64, numCells+1)}
	for i := range m.nodes {
		m.nodes[i] = x0 + (x1-x0)*float64(i)/float64(numCells)
	}
	// avoid round-off on the right endpoint
	m.nodes[numCells] = x1
	return m, nil
}

func (m *Mesh) NumNodes() int { return len(m.nodes) }
func (m *Mesh) NumCells() int { return len(m.nodes) - 1 }

// NodeX returns the coordinate of node i.
func (m *Mesh) NodeX(i int) float64 { return m.nodes[i] }

// ElemNodes returns the ids of the left and right endpoint nodes of
// element e.
func (m *Mesh) ElemNodes(e int) (left, right int) { return e, e + 1 }

// ElemLen returns the length of element e.
func (m *Mesh) ElemLen(e int) float64 { return m.nodes[e+1] - m.nodes[e] }

// ElemMid returns the midpoint coordinate of element e.
func (m *Mesh) ElemMid(e int) float64 { return (m.nodes[e] + m.nodes[e+1]) / 2 }

// NodesWhere returns the ids of all nodes whose coordinate satisfies
// pred, in increasing id order.
func (m *Mesh) NodesWhere(pred func(x float64) bool) []int {
	var ids []int
	for i, x := range m.nodes {
		if pred(x) {
			ids = append(ids, i)
		}
	}
	return ids
}

// Near returns a predicate matching coordinates within tol of x0.  Use
// it with NodesWhere to locate boundary nodes - exact float comparison
// against computed node positions is unreliable.
func Near(x0, tol float64) func(x float64) bool {
	return func(x float64) bool {
		d := x - x0
		return -tol <= d && d <= tol
	}
}
