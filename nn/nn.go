// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/kan-ml/kan/internal/nn"
	"github.com/kan-ml/kan/internal/parallel"
	"github.com/kan-ml/kan/spline"
)

// Edge is the learnable univariate activation owned by one network edge.
type Edge = nn.Edge

// NewEdge builds an edge activation over the given basis.
func NewEdge(basis spline.Basis, coeffs []float64, scale float64, base bool) (*Edge, error) {
	return nn.NewEdge(basis, coeffs, scale, base)
}

// Layer is a dense bipartite set of edge activations with node summation.
type Layer = nn.Layer

// LayerConfig controls how a layer's edges are built.
type LayerConfig = nn.LayerConfig

// NewLayer builds an nIn x nOut KAN layer.
//
// Example:
//
//	layer, err := nn.NewLayer(2, 5, nn.LayerConfig{Degree: 3})
func NewLayer(nIn, nOut int, cfg LayerConfig) (*Layer, error) {
	return nn.NewLayer(nIn, nOut, cfg)
}

// Network is an ordered feed-forward composition of KAN layers.
type Network = nn.Network

// NewNetwork builds a network from a sequence of layer widths.
//
// Example:
//
//	net, err := nn.NewNetwork([]int{2, 5, 1}, nn.LayerConfig{Degree: 3})
func NewNetwork(widths []int, cfg LayerConfig) (*Network, error) {
	return nn.NewNetwork(widths, cfg)
}

// NewNetworkFromLayers assembles a network from pre-built layers.
func NewNetworkFromLayers(layers ...*Layer) (*Network, error) {
	return nn.NewNetworkFromLayers(layers...)
}

// Parameter is one edge's coefficient vector and gradient buffer as seen
// by an external optimizer.
type Parameter = nn.Parameter

// Initialization policies

// Initializer fills a freshly allocated coefficient vector.
type Initializer = nn.Initializer

// Zeros initializes every coefficient to zero.
func Zeros() Initializer { return nn.Zeros() }

// Constant initializes every coefficient to c.
func Constant(c float64) Initializer { return nn.Constant(c) }

// Normal initializes coefficients from N(0, stddev²).
func Normal(stddev float64) Initializer { return nn.Normal(stddev) }

// ScaledNormal initializes coefficients from N(0, 1/fanIn), the default
// policy.
func ScaledNormal() Initializer { return nn.ScaledNormal() }

// Errors

// ConfigError reports an invalid construction parameter.
type ConfigError = nn.ConfigError

// DimensionError reports a vector-length mismatch at a forward/backward
// boundary.
type DimensionError = nn.DimensionError

// ErrNoTrace is returned by Backward when no forward pass is pending.
var ErrNoTrace = nn.ErrNoTrace

// Losses

// MSE computes the mean squared error and its gradient with respect to the
// predictions.
func MSE(pred, target []float64) (loss float64, grad []float64, err error) {
	return nn.MSE(pred, target)
}

// Parallelism

// ParallelConfig controls the optional data-parallel execution strategy
// across independent edges within a layer.
type ParallelConfig = parallel.Config

// DefaultParallelConfig returns sensible defaults based on CPU count.
func DefaultParallelConfig() ParallelConfig { return parallel.DefaultConfig() }
