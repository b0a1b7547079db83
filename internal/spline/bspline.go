package spline

// BSpline evaluates the B-spline basis family over a Grid using the
// Cox-de Boor construction: degree-0 bases are indicator functions on knot
// intervals, and each higher degree is a convex recombination of two bases
// one degree lower, weighted by reciprocal knot spans. The table is built
// bottom-up per evaluation point, one sweep per degree, never by naive
// recursion.
//
// Out-of-range policy: evaluation points outside Domain() are clamped to
// the nearest boundary, so the spline extrapolates as a constant and its
// derivative outside the domain is zero. Callers that care about how often
// this happens count it themselves (see the edge activation's diagnostic
// counter).
//
// A BSpline carries scratch buffers and must not be shared across
// goroutines.
type BSpline struct {
	grid *Grid

	// Scratch rows for the Cox-de Boor table, len(knots)-1 each.
	row  []float64
	prev []float64
}

// NewBSpline builds the B-spline basis for the given grid.
func NewBSpline(grid *Grid) *BSpline {
	n := len(grid.knots) - 1
	return &BSpline{
		grid: grid,
		row:  make([]float64, n),
		prev: make([]float64, n),
	}
}

// Grid returns the knot grid the basis is built on.
func (b *BSpline) Grid() *Grid { return b.grid }

// Count returns the number of basis functions.
func (b *BSpline) Count() int { return b.grid.NumBases() }

// Domain returns the partition-of-unity span of the grid.
func (b *BSpline) Domain() (lo, hi float64) { return b.grid.Domain() }

// clamp applies the constant-extrapolation policy.
func (b *BSpline) clamp(x float64) (clamped float64, outside bool) {
	lo, hi := b.grid.Domain()
	if x < lo {
		return lo, true
	}
	if x > hi {
		return hi, true
	}
	return x, false
}

// tabulate fills b.row with the degree-`upTo` basis values at x.
// x must already be clamped to the domain.
func (b *BSpline) tabulate(x float64, upTo int) {
	t := b.grid.knots
	for i := range b.row {
		b.row[i] = 0
	}
	b.row[b.grid.span(x)] = 1

	for k := 1; k <= upTo; k++ {
		for i := 0; i < len(t)-1-k; i++ {
			var v float64
			// A zero knot span contributes zero rather than dividing.
			if d := t[i+k] - t[i]; d > 0 && b.row[i] != 0 {
				v += (x - t[i]) / d * b.row[i]
			}
			if d := t[i+k+1] - t[i+1]; d > 0 && b.row[i+1] != 0 {
				v += (t[i+k+1] - x) / d * b.row[i+1]
			}
			b.row[i] = v
		}
	}
}

// Eval writes the value of every basis function at x into out.
func (b *BSpline) Eval(x float64, out []float64) {
	x, _ = b.clamp(x)
	b.tabulate(x, b.grid.degree)
	copy(out, b.row[:b.Count()])
}

// EvalWithDeriv writes values and first derivatives of every basis function
// at x into out and deriv. Derivatives use the standard identity
//
//	B'_{i,k}(x) = k * ( B_{i,k-1}(x)/(t_{i+k}-t_i) - B_{i+1,k-1}(x)/(t_{i+k+1}-t_{i+1}) )
//
// with zero-span terms contributing zero. Outside the domain the derivative
// is zero (constant extrapolation).
func (b *BSpline) EvalWithDeriv(x float64, out, deriv []float64) {
	x, outside := b.clamp(x)
	k := b.grid.degree
	n := b.Count()
	t := b.grid.knots

	if k == 0 {
		b.tabulate(x, 0)
		copy(out, b.row[:n])
		for i := 0; i < n; i++ {
			deriv[i] = 0
		}
		return
	}

	// One tabulation up to degree k-1, kept in prev, then the final sweep
	// into row. The derivative row comes from prev.
	b.tabulate(x, k-1)
	copy(b.prev, b.row)
	for i := 0; i < len(t)-1-k; i++ {
		var v float64
		if d := t[i+k] - t[i]; d > 0 && b.row[i] != 0 {
			v += (x - t[i]) / d * b.row[i]
		}
		if d := t[i+k+1] - t[i+1]; d > 0 && b.row[i+1] != 0 {
			v += (t[i+k+1] - x) / d * b.row[i+1]
		}
		b.row[i] = v
	}
	copy(out, b.row[:n])

	for i := 0; i < n; i++ {
		if outside {
			deriv[i] = 0
			continue
		}
		var v float64
		if d := t[i+k] - t[i]; d > 0 {
			v += b.prev[i] / d
		}
		if d := t[i+k+1] - t[i+1]; d > 0 {
			v -= b.prev[i+1] / d
		}
		deriv[i] = float64(k) * v
	}
}
