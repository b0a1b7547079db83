package spline

// Basis is the capability interface for a family of univariate basis
// functions over a shared grid. Implementations are selected at
// construction time; the rest of the system only sees this interface.
//
// Eval and EvalWithDeriv fill caller-provided slices of length Count().
// Implementations may keep internal scratch buffers, so a Basis value must
// not be shared across goroutines.
type Basis interface {
	// Count returns the number of basis functions in the family.
	Count() int

	// Domain returns the span [lo, hi] on which the family is a partition
	// of unity. Points outside are handled by the implementation's fixed
	// extrapolation policy.
	Domain() (lo, hi float64)

	// Eval writes the value of every basis function at x into out.
	Eval(x float64, out []float64)

	// EvalWithDeriv writes the value and first derivative of every basis
	// function at x into out and deriv.
	EvalWithDeriv(x float64, out, deriv []float64)
}
