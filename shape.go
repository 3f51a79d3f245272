package fem

// Lagrange1D is a 1D Lagrange shape function on the reference element
// [-1,1] with Order+1 evenly spaced interpolation points.  The shape
// function equals 1 at point Index and 0 at every other point.
type Lagrange1D struct {
	// Index identifies the interpolation point where the shape function
	// is equal to 1.0.
	Index int
	// Order is the polynomial order of the shape function.
	Order int
}

// Value returns the shape function value at reference coordinate xi.
func (fn Lagrange1D) Value(xi float64) float64 {
	u := 1.0
	xindex := -1 + float64(fn.Index)*2/float64(fn.Order)
	for i := 0; i < fn.Order+1; i++ {
		if i == fn.Index {
			continue
		}
		x0 := -1 + float64(i)*2/float64(fn.Order)
		u *= (xi - x0) / (xindex - x0)
	}
	return u
}

// Deriv returns the shape function derivative with respect to the
// reference coordinate at xi.
func (fn Lagrange1D) Deriv(xi float64) float64 {
	u := 1.0
	dudx := 0.0
	xindex := -1 + float64(fn.Index)*2/float64(fn.Order)
	for i := 0; i < fn.Order+1; i++ {
		if i == fn.Index {
			continue
		}
		x0 := -1 + float64(i)*2/float64(fn.Order)
		dudx = 1/(xindex-x0)*u + (xi-x0)/(xindex-x0)*dudx
		u *= (xi - x0) / (xindex - x0)
	}
	return dudx
}

// p2Basis holds the quadratic basis in element-local DoF order: left
// vertex (xi=-1), right vertex (xi=+1), midpoint (xi=0).
var p2Basis = [3]Lagrange1D{
	{Index: 0, Order: 2},
	{Index: 2, Order: 2},
	{Index: 1, Order: 2},
}
