package optim

import (
	"math"

	"github.com/kan-ml/kan/internal/nn"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	coeff = coeff - lr * m_hat / (sqrt(v_hat) + eps)
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
//
// Example:
//
//	opt := optim.NewAdam(net.Parameters(), optim.AdamConfig{LR: 0.001})
type Adam struct {
	params []*nn.Parameter
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int // Timestep for bias correction
	m      map[*nn.Parameter][]float64
	v      map[*nn.Parameter][]float64
}

// AdamConfig holds configuration for the Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Running-average coefficients (default: [0.9, 0.999])
	Eps   float64    // Numerical stability term (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given parameters, with
// default hyperparameters where the config leaves them zero.
func NewAdam(params []*nn.Parameter, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*nn.Parameter][]float64),
		v:      make(map[*nn.Parameter][]float64),
	}
}

// Step performs a single Adam update over all parameters in place.
func (a *Adam) Step() {
	a.t++
	bc1 := 1 - math.Pow(a.beta1, float64(a.t))
	bc2 := 1 - math.Pow(a.beta2, float64(a.t))

	for _, p := range a.params {
		coeffs, grad := p.Coeffs(), p.Grad()
		m, ok := a.m[p]
		if !ok {
			m = make([]float64, len(coeffs))
			a.m[p] = m
		}
		v, ok := a.v[p]
		if !ok {
			v = make([]float64, len(coeffs))
			a.v[p] = v
		}
		for i := range coeffs {
			g := grad[i]
			m[i] = a.beta1*m[i] + (1-a.beta1)*g
			v[i] = a.beta2*v[i] + (1-a.beta2)*g*g
			mHat := m[i] / bc1
			vHat := v[i] / bc2
			coeffs[i] -= a.lr * mHat / (math.Sqrt(vHat) + a.eps)
		}
	}
}

// ZeroGrad clears the gradient buffers of all parameters.
func (a *Adam) ZeroGrad() {
	zeroAll(a.params)
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}
