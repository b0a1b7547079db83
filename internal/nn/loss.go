package nn

// MSE computes the mean squared error between predictions and targets and
// its gradient with respect to the predictions. The gradient is what a
// training loop feeds to Network.Backward; the network itself never
// computes losses.
func MSE(pred, target []float64) (loss float64, grad []float64, err error) {
	if len(pred) != len(target) {
		return 0, nil, &DimensionError{Op: "loss", Want: len(target), Got: len(pred)}
	}
	grad = make([]float64, len(pred))
	inv := 1 / float64(len(pred))
	for i := range pred {
		d := pred[i] - target[i]
		loss += d * d * inv
		grad[i] = 2 * d * inv
	}
	return loss, grad, nil
}
