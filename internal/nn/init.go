package nn

import (
	"math"
	"math/rand"
)

// Initializer fills a freshly allocated coefficient vector. fanIn is the
// input width of the layer the edge belongs to, so policies can scale
// variance with fan-in.
type Initializer func(rng *rand.Rand, fanIn int, coeffs []float64)

// Zeros initializes every coefficient to zero. With the base activation
// disabled this makes the whole network the zero function, which is handy
// as a known starting point in tests.
func Zeros() Initializer {
	return func(_ *rand.Rand, _ int, coeffs []float64) {
		for i := range coeffs {
			coeffs[i] = 0
		}
	}
}

// Constant initializes every coefficient to c.
func Constant(c float64) Initializer {
	return func(_ *rand.Rand, _ int, coeffs []float64) {
		for i := range coeffs {
			coeffs[i] = c
		}
	}
}

// Normal initializes coefficients from N(0, stddev²).
func Normal(stddev float64) Initializer {
	return func(rng *rand.Rand, _ int, coeffs []float64) {
		for i := range coeffs {
			coeffs[i] = rng.NormFloat64() * stddev
		}
	}
}

// ScaledNormal initializes coefficients from N(0, 1/fanIn), the scaling
// that keeps output variance roughly constant when a node sums fanIn edge
// activations. This is the default policy.
func ScaledNormal() Initializer {
	return func(rng *rand.Rand, fanIn int, coeffs []float64) {
		stddev := 1 / math.Sqrt(float64(fanIn))
		for i := range coeffs {
			coeffs[i] = rng.NormFloat64() * stddev
		}
	}
}
