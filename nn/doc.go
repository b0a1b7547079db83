// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides Kolmogorov-Arnold Networks: networks whose edges
// carry learnable univariate spline functions and whose nodes sum their
// incoming edge activations.
//
// # Overview
//
// This package contains:
//   - Edge: one learnable univariate activation per network edge
//   - Layer: a dense bipartite edge matrix with node summation
//   - Network: a feed-forward composition of layers
//   - Parameter: per-edge coefficient vector plus gradient buffer
//   - Initialization policies: Zeros, Constant, Normal, ScaledNormal
//   - MSE loss helper for training-loop collaborators
//
// # Basic Usage
//
//	import (
//	    "github.com/kan-ml/kan/nn"
//	    "github.com/kan-ml/kan/optim"
//	)
//
//	net, err := nn.NewNetwork([]int{2, 5, 1}, nn.LayerConfig{
//	    Degree:         3,
//	    GridSize:       5,
//	    BaseActivation: true,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	opt := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
//	for epoch := 0; epoch < epochs; epoch++ {
//	    out, _ := net.Forward(x)
//	    _, grad, _ := nn.MSE(out, y)
//	    net.Backward(grad)
//	    opt.Step()
//	    opt.ZeroGrad()
//	}
//
// The network only guarantees correct gradient accumulation; driving the
// loop, computing losses, and applying updates belong to collaborators.
package nn
