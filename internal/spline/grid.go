// Package spline implements univariate basis functions over knot grids.
//
// This package provides the numeric core for KAN edge activations:
//   - Grid: ordered knot sequence partitioning an input domain
//   - Basis: capability interface for a family of basis functions
//   - BSpline: Cox-de Boor B-spline basis with analytic derivatives
//   - Refit: least-squares re-projection of coefficients onto a new basis
//
// All evaluation is plain float64 CPU arithmetic. Nothing in this package is
// safe for concurrent use on the same value; callers own their instances.
package spline

import (
	"github.com/pkg/errors"
)

// Grid is an ordered sequence of knot positions defining the domain
// partition for basis functions on one edge.
//
// Knots are strictly increasing. The interior domain, returned by Domain,
// is the span on which a degree-d basis forms a partition of unity: it
// excludes the d extension knots on each side.
//
// A Grid is immutable after construction. Changing resolution or range is
// done by building a new Grid and re-fitting coefficients (see Refit).
type Grid struct {
	knots  []float64
	degree int
}

// NewGrid builds a uniform grid of `intervals` spans over [min, max] for a
// basis of the given degree. The knot sequence is extended `degree` knots
// past each boundary at the same spacing, so the basis count over the grid
// is intervals + degree.
func NewGrid(min, max float64, intervals, degree int) (*Grid, error) {
	if degree < 0 {
		return nil, errors.Errorf("spline: degree must be >= 0, got %d", degree)
	}
	if intervals < 1 {
		return nil, errors.Errorf("spline: grid needs at least 1 interval, got %d", intervals)
	}
	if !(max > min) {
		return nil, errors.Errorf("spline: grid range [%v, %v] is empty", min, max)
	}

	h := (max - min) / float64(intervals)
	knots := make([]float64, intervals+1+2*degree)
	for i := range knots {
		knots[i] = min + float64(i-degree)*h
	}
	return &Grid{knots: knots, degree: degree}, nil
}

// NewGridFromKnots builds a grid from an explicit knot sequence.
// The sequence must be strictly increasing and long enough to carry at
// least one basis function of the given degree (len >= degree + 2).
func NewGridFromKnots(knots []float64, degree int) (*Grid, error) {
	if degree < 0 {
		return nil, errors.Errorf("spline: degree must be >= 0, got %d", degree)
	}
	if len(knots) < degree+2 {
		return nil, errors.Errorf("spline: need at least %d knots for degree %d, got %d",
			degree+2, degree, len(knots))
	}
	for i := 1; i < len(knots); i++ {
		if !(knots[i] > knots[i-1]) {
			return nil, errors.Errorf("spline: knots must be strictly increasing, knot[%d]=%v, knot[%d]=%v",
				i-1, knots[i-1], i, knots[i])
		}
	}
	c := make([]float64, len(knots))
	copy(c, knots)
	return &Grid{knots: c, degree: degree}, nil
}

// Degree returns the basis degree the grid was built for.
func (g *Grid) Degree() int { return g.degree }

// NumBases returns the number of basis functions carried by the grid.
func (g *Grid) NumBases() int { return len(g.knots) - g.degree - 1 }

// Domain returns the interior span [lo, hi] on which the basis is a
// partition of unity. Evaluation points are clamped to this span.
func (g *Grid) Domain() (lo, hi float64) {
	return g.knots[g.degree], g.knots[len(g.knots)-1-g.degree]
}

// Knots returns a copy of the knot sequence.
func (g *Grid) Knots() []float64 {
	c := make([]float64, len(g.knots))
	copy(c, g.knots)
	return c
}

// span returns the index i of the knot interval [knots[i], knots[i+1])
// containing x, clamped so the interval always lies inside the interior
// domain. This makes evaluation at the right boundary (and beyond either
// boundary, after clamping x) land on a valid interval.
func (g *Grid) span(x float64) int {
	lo := g.degree
	hi := len(g.knots) - 2 - g.degree
	for i := lo; i <= hi; i++ {
		if x < g.knots[i+1] {
			return i
		}
	}
	return hi
}
