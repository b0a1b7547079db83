package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kan-ml/kan/internal/nn"
)

func buildNet(t *testing.T, seed int64) *nn.Network {
	t.Helper()
	net, err := nn.NewNetwork([]int{1, 4, 1}, nn.LayerConfig{
		Degree:         2,
		GridSize:       5,
		BaseActivation: true,
		Init:           nn.Normal(0.3),
		Seed:           seed,
	})
	require.NoError(t, err)
	return net
}

// trainStep runs one forward/backward/update cycle on the quadratic
// y = x^2 and returns the batch loss.
func trainStep(t *testing.T, net *nn.Network, opt Optimizer) float64 {
	t.Helper()
	xs := []float64{-0.8, -0.4, 0.0, 0.4, 0.8}
	var total float64
	for _, x := range xs {
		out, err := net.Forward([]float64{x})
		require.NoError(t, err)
		loss, grad, err := nn.MSE(out, []float64{x * x})
		require.NoError(t, err)
		total += loss
		_, err = net.Backward(grad)
		require.NoError(t, err)
	}
	opt.Step()
	opt.ZeroGrad()
	return total / float64(len(xs))
}

func TestSGD_ReducesLoss(t *testing.T) {
	net := buildNet(t, 1)
	opt := NewSGD(net.Parameters(), SGDConfig{LR: 0.02})
	assert.Equal(t, 0.02, opt.GetLR())

	first := trainStep(t, net, opt)
	var last float64
	for i := 0; i < 200; i++ {
		last = trainStep(t, net, opt)
	}
	assert.Less(t, last, first, "loss should shrink under SGD")
}

func TestSGD_Momentum(t *testing.T) {
	net := buildNet(t, 2)
	opt := NewSGD(net.Parameters(), SGDConfig{LR: 0.005, Momentum: 0.9})

	first := trainStep(t, net, opt)
	var last float64
	for i := 0; i < 200; i++ {
		last = trainStep(t, net, opt)
	}
	assert.Less(t, last, first, "loss should shrink under SGD with momentum")
}

func TestSGD_Defaults(t *testing.T) {
	opt := NewSGD(nil, SGDConfig{})
	assert.Equal(t, 0.01, opt.GetLR())

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
}

func TestAdam_ReducesLoss(t *testing.T) {
	net := buildNet(t, 3)
	opt := NewAdam(net.Parameters(), AdamConfig{LR: 0.01})
	assert.Equal(t, 0.01, opt.GetLR())

	first := trainStep(t, net, opt)
	var last float64
	for i := 0; i < 300; i++ {
		last = trainStep(t, net, opt)
	}
	assert.Less(t, last, first, "loss should shrink under Adam")
}

func TestZeroGrad_ClearsBuffers(t *testing.T) {
	net := buildNet(t, 4)
	opt := NewSGD(net.Parameters(), SGDConfig{LR: 0.01})

	out, err := net.Forward([]float64{0.3})
	require.NoError(t, err)
	_, grad, err := nn.MSE(out, []float64{1})
	require.NoError(t, err)
	_, err = net.Backward(grad)
	require.NoError(t, err)

	var nonZero bool
	for _, p := range net.Parameters() {
		for _, g := range p.Grad() {
			if g != 0 {
				nonZero = true
			}
		}
	}
	require.True(t, nonZero, "backward should have filled some gradients")

	opt.ZeroGrad()
	for _, p := range net.Parameters() {
		for _, g := range p.Grad() {
			assert.Zero(t, g)
		}
	}
}
