package nn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kan-ml/kan/internal/parallel"
)

func TestNewLayer_Invalid(t *testing.T) {
	var cfgErr *ConfigError

	_, err := NewLayer(0, 3, LayerConfig{Degree: 2})
	require.Error(t, err)
	assert.ErrorAs(t, err, &cfgErr)

	_, err = NewLayer(3, 0, LayerConfig{Degree: 2})
	assert.Error(t, err)

	_, err = NewLayer(2, 2, LayerConfig{Degree: -1})
	assert.Error(t, err)
}

func TestLayerForward_DimensionError(t *testing.T) {
	l, err := NewLayer(3, 2, LayerConfig{Degree: 2})
	require.NoError(t, err)

	_, err = l.Forward([]float64{1, 2})
	require.Error(t, err)

	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Want)
	assert.Equal(t, 2, dimErr.Got)
}

func TestLayerBackward_RequiresTrace(t *testing.T) {
	l, err := NewLayer(2, 2, LayerConfig{Degree: 2})
	require.NoError(t, err)

	_, err = l.Backward([]float64{1, 1})
	assert.ErrorIs(t, err, ErrNoTrace)

	// A forward arms exactly one backward.
	_, err = l.Forward([]float64{0.1, 0.2})
	require.NoError(t, err)
	_, err = l.Backward([]float64{1, 1})
	require.NoError(t, err)
	_, err = l.Backward([]float64{1, 1})
	assert.ErrorIs(t, err, ErrNoTrace)
}

func TestLayerBackward_DimensionErrorKeepsTrace(t *testing.T) {
	l, err := NewLayer(2, 3, LayerConfig{Degree: 2})
	require.NoError(t, err)

	_, err = l.Forward([]float64{0.1, 0.2})
	require.NoError(t, err)

	// A mis-shaped backward aborts without consuming the trace or touching
	// gradient buffers.
	_, err = l.Backward([]float64{1})
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			for _, g := range l.Edge(i, j).grad {
				assert.Zero(t, g)
			}
		}
	}

	_, err = l.Backward([]float64{1, 0, 0})
	assert.NoError(t, err)
}

// TestLayerForward_SumsEdges verifies the node summation wiring against
// per-edge evaluation.
func TestLayerForward_SumsEdges(t *testing.T) {
	l, err := NewLayer(3, 2, LayerConfig{
		Degree: 3,
		Init:   Normal(0.5),
		Seed:   7,
	})
	require.NoError(t, err)

	input := []float64{0.3, -0.6, 0.9}
	out, err := l.Forward(input)
	require.NoError(t, err)
	require.Len(t, out, 2)

	for j := 0; j < 2; j++ {
		var want float64
		for i := 0; i < 3; i++ {
			want += l.Edge(i, j).Eval(input[i])
		}
		assert.InDeltaf(t, want, out[j], 1e-12, "output node %d", j)
	}
}

// TestLayerBackward_InputGradient checks the propagated input gradient
// against a finite difference of the layer output.
func TestLayerBackward_InputGradient(t *testing.T) {
	const h = 1e-6
	l, err := NewLayer(2, 3, LayerConfig{
		Degree:         2,
		BaseActivation: true,
		Init:           Normal(0.8),
		Seed:           11,
	})
	require.NoError(t, err)

	input := []float64{0.25, -0.4}
	upstream := []float64{1.0, -0.5, 2.0}

	_, err = l.Forward(input)
	require.NoError(t, err)
	down, err := l.Backward(upstream)
	require.NoError(t, err)
	require.Len(t, down, 2)

	// d(sum_j g_j * out_j)/d input_i by central difference.
	for i := range input {
		perturb := func(delta float64) float64 {
			shifted := append([]float64(nil), input...)
			shifted[i] += delta
			out, err := l.Forward(shifted)
			require.NoError(t, err)
			var s float64
			for j := range out {
				s += upstream[j] * out[j]
			}
			return s
		}
		fd := (perturb(h) - perturb(-h)) / (2 * h)
		assert.InDeltaf(t, fd, down[i], 1e-5, "input %d", i)
	}
}

// TestLayerParallel_MatchesSequential runs the same pass with and without
// the parallel execution strategy; results agree up to floating-point
// summation order.
func TestLayerParallel_MatchesSequential(t *testing.T) {
	mk := func() *Layer {
		l, err := NewLayer(16, 16, LayerConfig{
			Degree:         2,
			BaseActivation: true,
			Init:           Normal(0.3),
			Seed:           5,
		})
		require.NoError(t, err)
		return l
	}
	seq := mk()
	par := mk()
	par.SetParallelism(parallel.Config{Enabled: true, NumWorkers: 4, MinChunkSize: 1})

	input := make([]float64, 16)
	upstream := make([]float64, 16)
	for i := range input {
		input[i] = float64(i)/8 - 1
		upstream[i] = float64(16-i) / 16
	}

	outSeq, err := seq.Forward(input)
	require.NoError(t, err)
	outPar, err := par.Forward(input)
	require.NoError(t, err)
	for j := range outSeq {
		assert.InDelta(t, outSeq[j], outPar[j], 1e-12)
	}

	downSeq, err := seq.Backward(upstream)
	require.NoError(t, err)
	downPar, err := par.Backward(upstream)
	require.NoError(t, err)
	for i := range downSeq {
		assert.InDelta(t, downSeq[i], downPar[i], 1e-12)
	}
	for i := 0; i < 16; i++ {
		for j := 0; j < 16; j++ {
			gs, gp := seq.Edge(i, j).grad, par.Edge(i, j).grad
			for k := range gs {
				assert.InDelta(t, gs[k], gp[k], 1e-12)
			}
		}
	}
}

func TestLayerRefit_BlockedByPendingTrace(t *testing.T) {
	l, err := NewLayer(2, 2, LayerConfig{Degree: 2})
	require.NoError(t, err)

	_, err = l.Forward([]float64{0.1, 0.2})
	require.NoError(t, err)

	assert.Error(t, l.Refit(10))

	_, err = l.Backward([]float64{1, 1})
	require.NoError(t, err)
	assert.NoError(t, l.Refit(10))
}
