package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wengert-ml/wengert/internal/backend/cpu"
	"github.com/wengert-ml/wengert/internal/graph/ops"
	"github.com/wengert-ml/wengert/internal/tensor"
)

func TestAdd_ForwardBackward(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	y, err := tensor.FromSlice([]float64{3, 4}, tensor.Shape{2})
	require.NoError(t, err)

	op := ops.NewAdd()
	out, err := op.Forward(backend, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, out.AsFloat64())

	grad, err := tensor.FromSlice([]float64{10, 20}, tensor.Shape{2})
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 20}, partials[0].AsFloat64(), "gradient passes through to x")
	assert.Equal(t, []float64{10, 20}, partials[1].AsFloat64(), "gradient passes through to y")
}

func TestMul_ForwardBackward(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	y, err := tensor.FromSlice([]float64{3, 4}, tensor.Shape{2})
	require.NoError(t, err)

	op := ops.NewMul()
	out, err := op.Forward(backend, x, y)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 8}, out.AsFloat64())

	grad, err := tensor.FromSlice([]float64{1, 1}, tensor.Shape{2})
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 4}, partials[0].AsFloat64(), "d(x*y)/dx = y")
	assert.Equal(t, []float64{1, 2}, partials[1].AsFloat64(), "d(x*y)/dy = x")
}

func TestMul_BackwardScalesWithIncomingGradient(t *testing.T) {
	backend := cpu.New()

	x, err := tensor.FromSlice([]float64{2}, tensor.Shape{1})
	require.NoError(t, err)

	// y = x * x, dy/dx through each slot is x; with grad 5 each slot gets 10.
	op := ops.NewMul()
	_, err = op.Forward(backend, x, x)
	require.NoError(t, err)

	grad, err := tensor.FromSlice([]float64{5}, tensor.Shape{1})
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)
	assert.Equal(t, []float64{10}, partials[0].AsFloat64())
	assert.Equal(t, []float64{10}, partials[1].AsFloat64())
}

func TestMatMul_ForwardBackward(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)
	b, err := tensor.FromSlice([]float64{1, 0, 0, 1, 1, 1}, tensor.Shape{3, 2})
	require.NoError(t, err)

	op := ops.NewMatMul()
	out, err := op.Forward(backend, a, b)
	require.NoError(t, err)
	assert.True(t, out.Shape().Equal(tensor.Shape{2, 2}))
	assert.Equal(t, []float64{4, 5, 10, 11}, out.AsFloat64())

	grad, err := tensor.Ones[float64](tensor.Shape{2, 2})
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)

	// grad @ bT with bT = [[1,0,1],[0,1,1]].
	require.NotNil(t, partials[0])
	assert.True(t, partials[0].Shape().Equal(tensor.Shape{2, 3}))
	assert.Equal(t, []float64{1, 1, 2, 1, 1, 2}, partials[0].AsFloat64())

	// aT @ grad.
	require.NotNil(t, partials[1])
	assert.True(t, partials[1].Shape().Equal(tensor.Shape{3, 2}))
	assert.Equal(t, []float64{5, 5, 7, 7, 9, 9}, partials[1].AsFloat64())
}

func TestMatMul_ForwardRejectsBadShapes(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{4})
	require.NoError(t, err)
	m, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	op := ops.NewMatMul()
	_, err = op.Forward(backend, a, m)
	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}
