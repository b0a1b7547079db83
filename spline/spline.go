// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package spline

import (
	"github.com/kan-ml/kan/internal/spline"
)

// Grid is an ordered knot sequence defining a basis function's domain
// partition.
type Grid = spline.Grid

// NewGrid builds a uniform grid of `intervals` spans over [min, max] for a
// basis of the given degree.
func NewGrid(min, max float64, intervals, degree int) (*Grid, error) {
	return spline.NewGrid(min, max, intervals, degree)
}

// NewGridFromKnots builds a grid from an explicit strictly increasing knot
// sequence.
func NewGridFromKnots(knots []float64, degree int) (*Grid, error) {
	return spline.NewGridFromKnots(knots, degree)
}

// Basis is the capability interface for a family of univariate basis
// functions.
type Basis = spline.Basis

// BSpline is the Cox-de Boor B-spline basis over a Grid, with constant
// extrapolation outside the grid domain.
type BSpline = spline.BSpline

// NewBSpline builds the B-spline basis for the given grid.
func NewBSpline(grid *Grid) *BSpline {
	return spline.NewBSpline(grid)
}

// Refit projects a function from one basis onto another by least squares,
// preserving the represented function as closely as possible.
func Refit(old Basis, oldCoeffs []float64, newBasis Basis) ([]float64, error) {
	return spline.Refit(old, oldCoeffs, newBasis)
}
