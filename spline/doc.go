// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package spline provides the public API for univariate basis functions.
//
// # Overview
//
// This package contains:
//   - Grid: ordered knot sequence partitioning an input domain
//   - Basis: capability interface over a basis family
//   - BSpline: Cox-de Boor B-spline basis with analytic derivatives
//   - Refit: least-squares coefficient re-projection for grid extension
//
// # Basic Usage
//
//	import "github.com/kan-ml/kan/spline"
//
//	grid, err := spline.NewGrid(-1, 1, 5, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	basis := spline.NewBSpline(grid)
//
//	vals := make([]float64, basis.Count())
//	basis.Eval(0.5, vals)
package spline
