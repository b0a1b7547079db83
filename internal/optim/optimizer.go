// Package optim implements the external optimizer collaborators that drive
// KAN training.
//
// The network core only guarantees that gradients are fully accumulated in
// each parameter's buffer when Backward returns; applying an update rule is
// entirely the optimizer's job, including any state it keeps (momentum,
// moment estimates, schedules).
//
// Example usage:
//
//	opt := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 0.01})
//
//	for epoch := range epochs {
//	    out, _ := net.Forward(x)
//	    _, grad, _ := nn.MSE(out, target)
//	    net.Backward(grad)
//	    opt.Step()
//	    opt.ZeroGrad()
//	}
package optim

import (
	"github.com/kan-ml/kan/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply accumulated gradients to parameters
//   - ZeroGrad: Clear gradient buffers before the next batch
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies the update rule to every parameter in place, reading
	// each parameter's gradient buffer as accumulated by Backward.
	Step()

	// ZeroGrad clears all parameter gradient buffers. Call it between
	// batches; Backward accumulates additively.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

func zeroAll(params []*nn.Parameter) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
