package nn

// Parameter is one edge's trainable state as seen by an external optimizer:
// the coefficient vector and its paired gradient buffer.
//
// Both slices alias the edge's own storage. The optimizer mutates
// Coeffs in place; the network fills Grad during backward passes. Gradients
// accumulate additively across backward calls until ZeroGrad, which is what
// makes mini-batch gradient averaging work, and also what makes forgetting
// ZeroGrad between batches a silent correctness bug. Call ZeroGrad (or
// Network.ZeroGrad) between batches.
//
// Example:
//
//	for _, p := range net.Parameters() {
//	    coeffs, grad := p.Coeffs(), p.Grad()
//	    for i := range coeffs {
//	        coeffs[i] -= lr * grad[i]
//	    }
//	}
//	net.ZeroGrad()
type Parameter struct {
	name   string
	coeffs []float64
	grad   []float64
}

// Name returns the parameter's stable identifier, e.g. "layers.0.edge.1.2"
// for the edge from input node 1 to output node 2 of the first layer.
func (p *Parameter) Name() string { return p.name }

// Coeffs returns the mutable coefficient vector.
func (p *Parameter) Coeffs() []float64 { return p.coeffs }

// Grad returns the gradient buffer paired with Coeffs, same length.
func (p *Parameter) Grad() []float64 { return p.grad }

// ZeroGrad resets the gradient buffer to zero.
func (p *Parameter) ZeroGrad() {
	for i := range p.grad {
		p.grad[i] = 0
	}
}
