package spline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(-1, 1, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, 3, g.Degree())
	assert.Equal(t, 5+3, g.NumBases())

	lo, hi := g.Domain()
	assert.InDelta(t, -1.0, lo, 1e-12)
	assert.InDelta(t, 1.0, hi, 1e-12)

	// 5 interior intervals plus 3 extension knots each side.
	knots := g.Knots()
	assert.Len(t, knots, 5+1+2*3)
	for i := 1; i < len(knots); i++ {
		assert.Greater(t, knots[i], knots[i-1])
	}
}

func TestNewGrid_Degree0(t *testing.T) {
	g, err := NewGrid(0, 1, 4, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumBases())
	assert.Len(t, g.Knots(), 5)
}

func TestNewGrid_Invalid(t *testing.T) {
	_, err := NewGrid(-1, 1, 0, 3)
	assert.Error(t, err, "zero intervals")

	_, err = NewGrid(1, -1, 5, 3)
	assert.Error(t, err, "empty range")

	_, err = NewGrid(1, 1, 5, 3)
	assert.Error(t, err, "degenerate range")

	_, err = NewGrid(-1, 1, 5, -1)
	assert.Error(t, err, "negative degree")
}

func TestNewGridFromKnots(t *testing.T) {
	g, err := NewGridFromKnots([]float64{0, 0.25, 0.5, 0.75, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumBases())

	_, err = NewGridFromKnots([]float64{0, 0.5, 0.5, 1}, 1)
	assert.Error(t, err, "repeated knot")

	_, err = NewGridFromKnots([]float64{0, 1}, 3)
	assert.Error(t, err, "too few knots for degree")
}

func TestGridSpan(t *testing.T) {
	g, err := NewGrid(0, 1, 4, 2)
	require.NoError(t, err)

	// Interior points land in their own interval; boundary and beyond are
	// clamped to valid interior intervals.
	lo, hi := g.Domain()
	assert.Equal(t, g.span(lo), g.degree)
	assert.Equal(t, g.span(hi), len(g.knots)-2-g.degree)
	assert.Equal(t, g.span(lo-10), g.degree)
	assert.Equal(t, g.span(hi+10), len(g.knots)-2-g.degree)
}
