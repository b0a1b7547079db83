package spline

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Refit projects the function represented by (old, oldCoeffs) onto a new
// basis by least squares: the old function is sampled across the new
// basis' domain and new coefficients are solved for so the new function
// matches the samples as closely as possible. This is the coefficient
// re-fitting step behind grid extension, where the learned function must
// be preserved while resolution or range changes.
//
// The sample count is several points per new basis function, enough to
// make the design matrix tall and the solve well-posed.
func Refit(old Basis, oldCoeffs []float64, newBasis Basis) ([]float64, error) {
	if len(oldCoeffs) != old.Count() {
		return nil, errors.Errorf("spline: %d coefficients for a basis of %d functions",
			len(oldCoeffs), old.Count())
	}

	n := newBasis.Count()
	samples := 4*n + 8
	lo, hi := newBasis.Domain()
	step := (hi - lo) / float64(samples-1)

	// Design matrix and target vector from the old function's samples.
	a := mat.NewDense(samples, n, nil)
	y := mat.NewVecDense(samples, nil)
	oldVals := make([]float64, old.Count())
	rowVals := make([]float64, n)
	for s := 0; s < samples; s++ {
		x := lo + float64(s)*step
		old.Eval(x, oldVals)
		var f float64
		for i, c := range oldCoeffs {
			f += c * oldVals[i]
		}
		y.SetVec(s, f)
		newBasis.Eval(x, rowVals)
		a.SetRow(s, rowVals)
	}

	out := mat.NewVecDense(n, nil)
	if err := out.SolveVec(a, y); err != nil {
		return nil, errors.Wrap(err, "spline: least-squares refit")
	}
	coeffs := make([]float64, n)
	copy(coeffs, out.RawVector().Data)
	return coeffs, nil
}
