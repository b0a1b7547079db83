// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimizers for training Kolmogorov-Arnold
// Networks.
//
// # Overview
//
// This package contains:
//   - Optimizer interface: Step, ZeroGrad, GetLR
//   - SGD: stochastic gradient descent with optional momentum
//   - Adam: adaptive moment estimation
//
// Optimizers iterate the (coefficient, gradient) pairs enumerated by
// Network.Parameters and update coefficients in place. All optimizer
// state (velocities, moment estimates) lives here, outside the network
// core.
//
// # Basic Usage
//
//	opt := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
//
//	for epoch := 0; epoch < epochs; epoch++ {
//	    out, _ := net.Forward(x)
//	    _, grad, _ := nn.MSE(out, y)
//	    net.Backward(grad)
//	    opt.Step()
//	    opt.ZeroGrad()
//	}
package optim
