package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wengert-ml/wengert/internal/backend/cpu"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// numericalGradient approximates df/dx with central differences.
func numericalGradient(f func(float64) float64, x, epsilon float64) float64 {
	return (f(x+epsilon) - f(x-epsilon)) / (2 * epsilon)
}

// evalScalar records z = (x + y) * x * y on a fresh graph and returns z.
func evalScalar(t *testing.T, xv, yv float64) (z float64, gradX, gradY float64) {
	t.Helper()
	g := New(cpu.New())

	rawX, err := tensor.FromSlice([]float64{xv}, tensor.Shape{1})
	require.NoError(t, err)
	rawY, err := tensor.FromSlice([]float64{yv}, tensor.Shape{1})
	require.NoError(t, err)

	x := g.Leaf(rawX)
	y := g.Leaf(rawY)
	out := x.Add(y).Mul(x).Mul(y)

	require.NoError(t, out.Forward())
	require.NoError(t, out.Backward(nil))

	value, err := out.Value()
	require.NoError(t, err)
	gx, err := x.Grad()
	require.NoError(t, err)
	gy, err := y.Grad()
	require.NoError(t, err)

	return value.AsFloat64()[0], gx.AsFloat64()[0], gy.AsFloat64()[0]
}

func TestGradientCheck_CompositeExpression(t *testing.T) {
	const epsilon = 1e-6

	points := []struct{ x, y float64 }{
		{1, 2},
		{-0.5, 3},
		{2.5, -1.25},
		{0, 1},
	}

	for _, p := range points {
		_, gradX, gradY := evalScalar(t, p.x, p.y)

		numX := numericalGradient(func(v float64) float64 {
			z, _, _ := evalScalar(t, v, p.y)
			return z
		}, p.x, epsilon)
		numY := numericalGradient(func(v float64) float64 {
			z, _, _ := evalScalar(t, p.x, v)
			return z
		}, p.y, epsilon)

		assert.InDelta(t, numX, gradX, 1e-4, "df/dx at (%v, %v)", p.x, p.y)
		assert.InDelta(t, numY, gradY, 1e-4, "df/dy at (%v, %v)", p.x, p.y)
	}
}

func TestGradientCheck_AnalyticForm(t *testing.T) {
	// z = (x + y) * x * y, so dz/dx = (2x + y) * y and dz/dy = (2y + x) * x.
	xv, yv := 1.5, -2.0
	_, gradX, gradY := evalScalar(t, xv, yv)

	assert.InDelta(t, (2*xv+yv)*yv, gradX, 1e-12)
	assert.InDelta(t, (2*yv+xv)*xv, gradY, 1e-12)
}
