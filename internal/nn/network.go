package nn

import (
	"fmt"

	"github.com/kan-ml/kan/internal/parallel"
	"k8s.io/klog/v2"
)

// Network is an ordered feed-forward composition of KAN layers. Adjacent
// layers chain: layer[i]'s output width is layer[i+1]'s input width, which
// is checked at construction and never changes during training. Training
// mutates coefficients in place; the only structural mutation is the
// explicit Refit maintenance path.
//
// The network never drives a training loop itself. The expected driver is:
//
//	out, _ := net.Forward(x)
//	loss, grad, _ := MSE(out, target)
//	net.Backward(grad)
//	opt.Step()        // external optimizer over net.Parameters()
//	net.ZeroGrad()    // between batches
type Network struct {
	layers []*Layer
}

// NewNetwork builds a network from a sequence of layer widths
// [n_0, n_1, ..., n_L], applying the same layer configuration throughout.
// At least two widths are required and every width must be positive.
func NewNetwork(widths []int, cfg LayerConfig) (*Network, error) {
	if len(widths) < 2 {
		return nil, configf("need at least two widths, got %v", widths)
	}
	layers := make([]*Layer, len(widths)-1)
	for i := range layers {
		layer, err := NewLayer(widths[i], widths[i+1], cfg)
		if err != nil {
			return nil, err
		}
		cfg.Seed++ // distinct coefficients per layer
		layers[i] = layer
	}
	net := &Network{layers: layers}
	if klog.V(2).Enabled() {
		klog.Infof("kan: built network %v: %d layers, %d parameters", widths, len(layers), net.NumCoeffs())
	}
	return net, nil
}

// NewNetworkFromLayers assembles a network from pre-built layers, checking
// that adjacent widths chain.
func NewNetworkFromLayers(layers ...*Layer) (*Network, error) {
	if len(layers) == 0 {
		return nil, configf("need at least one layer")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i-1].OutputSize() != layers[i].InputSize() {
			return nil, configf("layer %d outputs %d values but layer %d expects %d",
				i-1, layers[i-1].OutputSize(), i, layers[i].InputSize())
		}
	}
	return &Network{layers: layers}, nil
}

// NumLayers returns the number of layers.
func (n *Network) NumLayers() int { return len(n.layers) }

// Layer returns the i-th layer.
func (n *Network) Layer(i int) *Layer { return n.layers[i] }

// InputSize returns the width of the network's input vector.
func (n *Network) InputSize() int { return n.layers[0].InputSize() }

// OutputSize returns the width of the network's output vector.
func (n *Network) OutputSize() int { return n.layers[len(n.layers)-1].OutputSize() }

// NumCoeffs returns the total number of trainable coefficients.
func (n *Network) NumCoeffs() int {
	var total int
	for _, l := range n.layers {
		for _, e := range l.edges {
			total += len(e.coeffs)
		}
	}
	return total
}

// SetParallelism applies a parallel execution strategy to every layer.
func (n *Network) SetParallelism(cfg parallel.Config) {
	for _, l := range n.layers {
		l.SetParallelism(cfg)
	}
}

// Forward threads the input through every layer in order, retaining each
// layer's activation trace for the paired Backward call.
func (n *Network) Forward(input []float64) ([]float64, error) {
	if len(input) != n.InputSize() {
		return nil, &DimensionError{Op: "forward", Want: n.InputSize(), Got: len(input)}
	}
	x := input
	for _, l := range n.layers {
		var err error
		if x, err = l.Forward(x); err != nil {
			return nil, err
		}
	}
	return x, nil
}

// Backward applies every layer's backward in reverse order, threading each
// returned input gradient into the preceding layer. lossGrad is the
// gradient of the loss with respect to the network output. The returned
// slice is the gradient with respect to the network input; most callers
// discard it.
//
// Coefficient gradients from this call add into each edge's buffer, so
// repeated Backward calls without ZeroGrad accumulate across a batch.
func (n *Network) Backward(lossGrad []float64) ([]float64, error) {
	if len(lossGrad) != n.OutputSize() {
		return nil, &DimensionError{Op: "backward", Want: n.OutputSize(), Got: len(lossGrad)}
	}
	g := lossGrad
	for i := len(n.layers) - 1; i >= 0; i-- {
		var err error
		if g, err = n.layers[i].Backward(g); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// ZeroGrad resets every edge's gradient buffer. Call it between batches.
func (n *Network) ZeroGrad() {
	for _, l := range n.layers {
		l.zeroGrad()
	}
}

// Parameters enumerates all (name, coefficients, gradient buffer) triples
// in a stable order: layer-major, then input node, then output node. The
// slices alias edge storage, so optimizers update the network in place.
// A Refit invalidates previously enumerated parameters; enumerate again.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for li, l := range n.layers {
		for i := 0; i < l.nIn; i++ {
			for j := 0; j < l.nOut; j++ {
				e := l.edges[i*l.nOut+j]
				params = append(params, &Parameter{
					name:   fmt.Sprintf("layers.%d.edge.%d.%d", li, i, j),
					coeffs: e.coeffs,
					grad:   e.grad,
				})
			}
		}
	}
	return params
}

// Refit extends every edge's grid to the given number of intervals over its
// current range, least-squares re-fitting coefficients so every learned
// function is preserved. This is an infrequent maintenance path, not part
// of the training hot loop; it fails if any layer has a pending trace.
func (n *Network) Refit(intervals int) error {
	for li, l := range n.layers {
		if err := l.Refit(intervals); err != nil {
			return err
		}
		if klog.V(2).Enabled() {
			klog.Infof("kan: layer %d refit to %d grid intervals", li, intervals)
		}
	}
	return nil
}

// OutOfRangeCount sums the out-of-range diagnostic counters of every edge.
// A large count relative to the number of evaluations signals the grids
// need extension (see Refit).
func (n *Network) OutOfRangeCount() uint64 {
	var total uint64
	for _, l := range n.layers {
		total += l.OutOfRangeCount()
	}
	return total
}
