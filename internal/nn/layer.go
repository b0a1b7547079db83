package nn

import (
	"math/rand"

	"github.com/kan-ml/kan/internal/parallel"
	"github.com/kan-ml/kan/internal/spline"
)

// LayerConfig controls how a layer's edges are built.
//
// Zero values get defaults where a zero is not itself meaningful: grid
// range defaults to [-1, 1], grid size to 5 intervals, scale to 1. Degree
// has no default because 0 is a valid degree (piecewise-constant edges).
type LayerConfig struct {
	Degree         int     // B-spline degree of every edge in the layer.
	GridMin        float64 // Lower bound of each edge's grid range.
	GridMax        float64 // Upper bound of each edge's grid range.
	GridSize       int     // Number of grid intervals per edge.
	BaseActivation bool    // Enable the fixed SiLU residual term.
	Scale          float64 // Multiplier on the spline sum.
	Init           Initializer
	Seed           int64 // Seed for the initializer's RNG.
}

func (cfg LayerConfig) withDefaults() LayerConfig {
	if cfg.GridMin == 0 && cfg.GridMax == 0 {
		cfg.GridMin, cfg.GridMax = -1, 1
	}
	if cfg.GridSize == 0 {
		cfg.GridSize = 5
	}
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Init == nil {
		cfg.Init = ScaledNormal()
	}
	return cfg
}

// Layer is a dense bipartite set of edge activations connecting nIn input
// nodes to nOut output nodes. Output node j sums the activations of its
// nIn incoming edges; there are no per-node weights or biases.
//
// A layer records the input vector of each forward pass (the activation
// trace) so the paired backward pass can replay every edge at the point it
// was evaluated. Exactly one trace is live at a time: a forward overwrites
// it, the matching backward consumes it.
type Layer struct {
	nIn, nOut int
	degree    int
	edges     []*Edge // dense, indexed [i*nOut + j]

	input  []float64 // activation trace
	traced bool

	par parallel.Config
}

// NewLayer builds an nIn x nOut layer. Every edge gets its own grid and
// coefficient vector; all edges share the configured degree.
func NewLayer(nIn, nOut int, cfg LayerConfig) (*Layer, error) {
	if nIn < 1 || nOut < 1 {
		return nil, configf("layer widths must be positive, got %d x %d", nIn, nOut)
	}
	if cfg.Degree < 0 {
		return nil, configf("degree must be >= 0, got %d", cfg.Degree)
	}
	cfg = cfg.withDefaults()

	rng := rand.New(rand.NewSource(cfg.Seed))
	edges := make([]*Edge, nIn*nOut)
	for i := 0; i < nIn; i++ {
		for j := 0; j < nOut; j++ {
			grid, err := spline.NewGrid(cfg.GridMin, cfg.GridMax, cfg.GridSize, cfg.Degree)
			if err != nil {
				return nil, wrapConfig(err, "layer grid")
			}
			basis := spline.NewBSpline(grid)
			coeffs := make([]float64, basis.Count())
			cfg.Init(rng, nIn, coeffs)
			edge, err := NewEdge(basis, coeffs, cfg.Scale, cfg.BaseActivation)
			if err != nil {
				return nil, err
			}
			edges[i*nOut+j] = edge
		}
	}
	return &Layer{
		nIn:    nIn,
		nOut:   nOut,
		degree: cfg.Degree,
		edges:  edges,
		input:  make([]float64, nIn),
	}, nil
}

// InputSize returns the layer's input width.
func (l *Layer) InputSize() int { return l.nIn }

// OutputSize returns the layer's output width.
func (l *Layer) OutputSize() int { return l.nOut }

// Edge returns the edge from input node i to output node j.
func (l *Layer) Edge(i, j int) *Edge { return l.edges[i*l.nOut+j] }

// SetParallelism opts the layer into data-parallel evaluation across
// independent per-node work. Correctness never depends on it: every edge's
// state is touched by exactly one worker, only floating-point summation
// order may vary.
func (l *Layer) SetParallelism(cfg parallel.Config) { l.par = cfg }

// Forward evaluates the layer: output[j] = sum_i edge(i,j).Eval(input[i]).
// The input vector is recorded as the activation trace for the paired
// Backward call. Dimension checks happen before any state is touched.
func (l *Layer) Forward(input []float64) ([]float64, error) {
	if len(input) != l.nIn {
		return nil, &DimensionError{Op: "forward", Want: l.nIn, Got: len(input)}
	}
	copy(l.input, input)
	l.traced = true

	out := make([]float64, l.nOut)
	parallel.For(l.nOut, func(j int) {
		var sum float64
		for i := 0; i < l.nIn; i++ {
			sum += l.edges[i*l.nOut+j].Eval(l.input[i])
		}
		out[j] = sum
	}, l.par)
	return out, nil
}

// Backward consumes the activation trace of the preceding Forward call.
// For each output j the upstream gradient g_j is distributed to every
// contributing edge: the edge accumulates its coefficient gradient at
// (x=input[i], g_j) and contributes g_j * d edge(i,j)/dx to the returned
// gradient for input node i, summed over all j the node fans out to.
//
// Coefficient gradients add into each edge's buffer; see Parameter for the
// batch-accumulation contract.
func (l *Layer) Backward(upstream []float64) ([]float64, error) {
	if !l.traced {
		return nil, ErrNoTrace
	}
	if len(upstream) != l.nOut {
		return nil, &DimensionError{Op: "backward", Want: l.nOut, Got: len(upstream)}
	}
	l.traced = false

	downstream := make([]float64, l.nIn)
	parallel.For(l.nIn, func(i int) {
		x := l.input[i]
		var sum float64
		for j := 0; j < l.nOut; j++ {
			sum += l.edges[i*l.nOut+j].backward(x, upstream[j])
		}
		downstream[i] = sum
	}, l.par)
	return downstream, nil
}

// Refit rebuilds every edge's grid with the given number of intervals over
// the edge's current range, preserving each learned function. It is a
// maintenance operation: it cannot run while a forward trace is pending.
func (l *Layer) Refit(intervals int) error {
	if l.traced {
		return configf("refit with a pending forward trace")
	}
	errs := make([]error, len(l.edges))
	parallel.ForEdges(l.nIn, l.nOut, func(i, j int) {
		e := l.edges[i*l.nOut+j]
		lo, hi := e.Domain()
		errs[i*l.nOut+j] = e.Refit(lo, hi, intervals)
	}, l.par)
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// OutOfRangeCount sums the diagnostic counters of all edges in the layer.
func (l *Layer) OutOfRangeCount() uint64 {
	var n uint64
	for _, e := range l.edges {
		n += e.outOfRange
	}
	return n
}

func (l *Layer) zeroGrad() {
	for _, e := range l.edges {
		e.zeroGrad()
	}
}
