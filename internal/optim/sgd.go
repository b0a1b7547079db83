package optim

import (
	"github.com/kan-ml/kan/internal/nn"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	coeff = coeff - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	coeff = coeff - lr * velocity
//
// Example:
//
//	opt := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params     []*nn.Parameter
	lr         float64
	momentum   float64
	velocities map[*nn.Parameter][]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*nn.Parameter][]float64),
	}
}

// Step applies one gradient descent update to every parameter in place.
func (s *SGD) Step() {
	for _, p := range s.params {
		coeffs, grad := p.Coeffs(), p.Grad()
		if s.momentum == 0 {
			for i := range coeffs {
				coeffs[i] -= s.lr * grad[i]
			}
			continue
		}
		v, ok := s.velocities[p]
		if !ok {
			v = make([]float64, len(coeffs))
			s.velocities[p] = v
		}
		for i := range coeffs {
			v[i] = s.momentum*v[i] + grad[i]
			coeffs[i] -= s.lr * v[i]
		}
	}
}

// ZeroGrad clears the gradient buffers of all parameters.
func (s *SGD) ZeroGrad() {
	zeroAll(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate, for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
