package fem

import "fmt"

// nodesPerElem is the number of local DoFs a quadratic 1D element
// carries: two shared vertices plus one interior midpoint.
const nodesPerElem = 3

// FunctionSpace maps mesh elements to degree-2 Lagrange basis functions
// and assigns global degree-of-freedom indices.  Vertex DoFs take
// indices 0..NumNodes-1 in coordinate order; each element's interior
// midpoint DoF follows at NumNodes+e.  Adjacent elements share exactly
// the DoF at their common vertex.  A space is immutable once built.
type FunctionSpace struct {
	mesh   *Mesh
	degree int
}

// NewFunctionSpace builds a Lagrange function space of the given
// polynomial degree over mesh.  Only degree 2 is supported.
func NewFunctionSpace(mesh *Mesh, degree int) (*FunctionSpace, error) {
	if degree != 2 {
		return nil, fmt.Errorf("%w: unsupported element degree %v (only 2)", ErrInvalidArgument, degree)
	}
	return &FunctionSpace{mesh: mesh, degree: degree}, nil
}

// Mesh returns the mesh the space was built over.
func (s *FunctionSpace) Mesh() *Mesh { return s.mesh }

// NumDofs returns the total number of degrees of freedom: one per mesh
// node plus one per element interior.
func (s *FunctionSpace) NumDofs() int { return s.mesh.NumNodes() + s.mesh.NumCells() }

// ElemDofs returns the global DoF ids of element e in local order: left
// vertex, right vertex, midpoint.
func (s *FunctionSpace) ElemDofs(e int) [nodesPerElem]int {
	left, right := s.mesh.ElemNodes(e)
	return [nodesPerElem]int{left, right, s.mesh.NumNodes() + e}
}

// VertexDof returns the global DoF id associated with mesh node i.
func (s *FunctionSpace) VertexDof(i int) int { return i }

// DofX returns the physical coordinate of global DoF d.
func (s *FunctionSpace) DofX(d int) float64 {
	if d < s.mesh.NumNodes() {
		return s.mesh.NodeX(d)
	}
	return s.mesh.ElemMid(d - s.mesh.NumNodes())
}

// Interpolate evaluates the finite element function with nodal values u
// at position x.  Solution vectors from Solver.Solve are laid out in
// this space's DoF order.
func (s *FunctionSpace) Interpolate(u []float64, x float64) (float64, error) {
	e, xi, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	dofs := s.ElemDofs(e)
	v := 0.0
	for l, fn := range p2Basis {
		v += u[dofs[l]] * fn.Value(xi)
	}
	return v, nil
}

// Deriv evaluates the derivative of the finite element function with
// nodal values u at position x.
func (s *FunctionSpace) Deriv(u []float64, x float64) (float64, error) {
	e, xi, err := s.locate(x)
	if err != nil {
		return 0, err
	}
	dofs := s.ElemDofs(e)
	jac := s.mesh.ElemLen(e) / 2
	v := 0.0
	for l, fn := range p2Basis {
		v += u[dofs[l]] * fn.Deriv(xi) / jac
	}
	return v, nil
}

// locate finds the element containing x and maps x to the element's
// reference coordinate in [-1,1].
func (s *FunctionSpace) locate(x float64) (elem int, xi float64, err error) {
	m := s.mesh
	if x < m.NodeX(0) || x > m.NodeX(m.NumCells()) {
		return 0, 0, fmt.Errorf("%w: point %v is outside the mesh", ErrInvalidArgument, x)
	}
	for e := 0; e < m.NumCells(); e++ {
		if x <= m.NodeX(e+1) || e == m.NumCells()-1 {
			x1, x2 := m.NodeX(e), m.NodeX(e+1)
			return e, (2*x - x1 - x2) / (x2 - x1), nil
		}
	}
	panic("unreachable")
}
