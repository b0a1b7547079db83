package nn

import (
	"math"

	"github.com/kan-ml/kan/internal/spline"
)

// Edge is the learnable univariate activation owned by one network edge:
//
//	y = scale * sum_i( coeffs[i] * basis_i(x) ) [+ silu(x) if base enabled]
//
// The optional base term is a fixed, non-learnable SiLU residual path that
// carries signal while the spline coefficients are still near their
// initialization.
//
// The coefficient vector and gradient buffer are exclusively owned by the
// edge; no other edge aliases them. An Edge is not safe for concurrent use
// (it carries evaluation scratch), which is why the layer parallelizes
// across disjoint edge sets only.
type Edge struct {
	basis  spline.Basis
	coeffs []float64
	grad   []float64
	scale  float64
	base   bool

	lo, hi     float64
	outOfRange uint64

	// Scratch for basis evaluation, len = basis.Count().
	vals   []float64
	derivs []float64
}

// NewEdge builds an edge activation over the given basis. The coefficient
// vector length must match the basis function count; a mismatch is a
// ConfigError here and can never surface at evaluation time.
func NewEdge(basis spline.Basis, coeffs []float64, scale float64, base bool) (*Edge, error) {
	if basis == nil {
		return nil, configf("edge needs a basis")
	}
	n := basis.Count()
	if len(coeffs) != n {
		return nil, configf("edge has %d coefficients for a basis of %d functions", len(coeffs), n)
	}
	lo, hi := basis.Domain()
	return &Edge{
		basis:  basis,
		coeffs: coeffs,
		grad:   make([]float64, n),
		scale:  scale,
		base:   base,
		lo:     lo,
		hi:     hi,
		vals:   make([]float64, n),
		derivs: make([]float64, n),
	}, nil
}

// NumCoeffs returns the length of the coefficient vector.
func (e *Edge) NumCoeffs() int { return len(e.coeffs) }

// OutOfRangeCount returns how many evaluations landed outside the grid
// domain and were clamped. A steadily growing count is the signal that the
// edge's grid needs extension.
func (e *Edge) OutOfRangeCount() uint64 { return e.outOfRange }

// Eval computes the edge activation at x.
func (e *Edge) Eval(x float64) float64 {
	e.noteRange(x)
	e.basis.Eval(x, e.vals)
	y := e.scale * dot(e.coeffs, e.vals)
	if e.base {
		y += silu(x)
	}
	return y
}

// EvalWithDeriv computes the edge activation and its derivative with
// respect to the input, from the analytic basis derivatives.
func (e *Edge) EvalWithDeriv(x float64) (y, dydx float64) {
	e.noteRange(x)
	e.basis.EvalWithDeriv(x, e.vals, e.derivs)
	y = e.scale * dot(e.coeffs, e.vals)
	dydx = e.scale * dot(e.coeffs, e.derivs)
	if e.base {
		y += silu(x)
		dydx += siluDeriv(x)
	}
	return y, dydx
}

// backward performs the edge's share of a backward pass: it accumulates
// upstream * scale * basis_i(x) into the gradient buffer for every
// coefficient, and returns upstream * dy/dx for propagation to the
// previous layer. This per-coefficient fan-out is what distinguishes a KAN
// edge from a scalar weight, whose analogous gradient is a single product.
func (e *Edge) backward(x, upstream float64) float64 {
	e.noteRange(x)
	e.basis.EvalWithDeriv(x, e.vals, e.derivs)
	var dydx float64
	for i := range e.coeffs {
		e.grad[i] += upstream * e.scale * e.vals[i]
		dydx += e.coeffs[i] * e.derivs[i]
	}
	dydx *= e.scale
	if e.base {
		dydx += siluDeriv(x)
	}
	return upstream * dydx
}

// Refit rebuilds the edge on a uniform grid of `intervals` spans over
// [min, max] with the same degree, re-fitting coefficients by least squares
// so the learned function is preserved. The gradient buffer is reallocated
// and zeroed; parameters enumerated before a refit are stale.
func (e *Edge) Refit(min, max float64, intervals int) error {
	bs, ok := e.basis.(*spline.BSpline)
	if !ok {
		return configf("refit is only supported for B-spline edges")
	}
	grid, err := spline.NewGrid(min, max, intervals, bs.Grid().Degree())
	if err != nil {
		return wrapConfig(err, "refit")
	}
	next := spline.NewBSpline(grid)
	coeffs, err := spline.Refit(e.basis, e.coeffs, next)
	if err != nil {
		return err
	}
	n := next.Count()
	e.basis = next
	e.coeffs = coeffs
	e.grad = make([]float64, n)
	e.vals = make([]float64, n)
	e.derivs = make([]float64, n)
	e.lo, e.hi = next.Domain()
	return nil
}

// Domain returns the edge grid's interior span.
func (e *Edge) Domain() (lo, hi float64) { return e.lo, e.hi }

func (e *Edge) noteRange(x float64) {
	if x < e.lo || x > e.hi {
		e.outOfRange++
	}
}

func (e *Edge) zeroGrad() {
	for i := range e.grad {
		e.grad[i] = 0
	}
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}
	return s
}

// silu is the fixed residual nonlinearity: x * sigmoid(x).
func silu(x float64) float64 {
	return x / (1 + math.Exp(-x))
}

func siluDeriv(x float64) float64 {
	s := 1 / (1 + math.Exp(-x))
	return s * (1 + x*(1-s))
}
