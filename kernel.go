package fem

// KernelParams carries the values a kernel needs to evaluate the weak
// form integrand at a single quadrature point.
type KernelParams struct {
	// X is the physical position the kernel is being evaluated at.
	X float64
	// U is the value of the solution shape function.
	U float64
	// GradU is the derivative of the solution shape function.
	GradU float64
	// W is the value of the weight/test function.
	W float64
	// GradW is the derivative of the weight/test function.
	GradW float64
}

// Kernel represents the physics of a differential equation via the
// integrands of its weak form.
type Kernel interface {
	// VolIntU returns the integrand of the weak form terms that
	// include/depend on u(x) - the entries of the stiffness matrix.
	VolIntU(p *KernelParams) float64
	// VolInt returns the integrand of the weak form terms that do *not*
	// depend on u(x) - the entries of the load vector.
	VolInt(p *KernelParams) float64
}

// Valer is a scalar coefficient function over the problem domain.
type Valer interface {
	Val(x float64) float64
}

// ConstVal is a Valer with the same value everywhere.
type ConstVal float64

func (v ConstVal) Val(x float64) float64 { return float64(v) }

// FuncVal adapts an ordinary function to a Valer.
type FuncVal func(x float64) float64

func (f FuncVal) Val(x float64) float64 { return f(x) }

// Diffusion implements the weak form of the 1D diffusion/Poisson
// equation -(K*u')' = S, i.e. the integrands of
//
//	∫ K(x)*u'(x)*v'(x) dx = ∫ S(x)*v(x) dx
//
// The notebook problem -u'' = 2 is Diffusion{K: ConstVal(1), S: ConstVal(2)}.
type Diffusion struct {
	// K is the diffusion/conductivity coefficient.
	K Valer
	// S is the source strength.
	S Valer
}

func (d *Diffusion) VolIntU(p *KernelParams) float64 { return p.GradW * p.GradU * d.K.Val(p.X) }
func (d *Diffusion) VolInt(p *KernelParams) float64  { return p.W * d.S.Val(p.X) }
