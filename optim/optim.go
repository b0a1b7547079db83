// Copyright 2025 The kan-ml Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/kan-ml/kan/internal/nn"
	"github.com/kan-ml/kan/internal/optim"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer = optim.Optimizer

// SGD is stochastic gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	opt := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.01})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}

// Adam is the Adam (Adaptive Moment Estimation) optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer over the given parameters.
//
// Example:
//
//	opt := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	return optim.NewAdam(params, config)
}
