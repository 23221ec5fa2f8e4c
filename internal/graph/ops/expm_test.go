package ops_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wengert-ml/wengert/internal/backend/cpu"
	"github.com/wengert-ml/wengert/internal/graph/ops"
	"github.com/wengert-ml/wengert/internal/tensor"
)

func TestExpM_Forward(t *testing.T) {
	backend := cpu.New()

	// Off-diagonal entries are exponentiated too, then masked away.
	a, err := tensor.FromSlice([]float64{0.5, 3, 7, 1.5}, tensor.Shape{2, 2})
	require.NoError(t, err)

	op := ops.NewExpM()
	out, err := op.Forward(backend, a)
	require.NoError(t, err)

	ov := out.AsFloat64()
	assert.InDelta(t, math.Exp(0.5), ov[0], 1e-12)
	assert.InDelta(t, 0, ov[1], 1e-12)
	assert.InDelta(t, 0, ov[2], 1e-12)
	assert.InDelta(t, math.Exp(1.5), ov[3], 1e-12)
}

func TestExpM_Forward_RejectsNonSquare(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3})
	require.NoError(t, err)

	op := ops.NewExpM()
	_, err = op.Forward(backend, a)
	var shapeErr *tensor.ShapeError
	assert.ErrorAs(t, err, &shapeErr)
}

// Diagonal matrices commute, so every commutator term vanishes and the
// backward pass reduces to gradA = forward_result @ grad exactly.
func TestExpM_Backward_Diagonal(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{0.5, 0, 0, 1.5}, tensor.Shape{2, 2})
	require.NoError(t, err)
	grad, err := tensor.FromSlice([]float64{2, 0, 0, 4}, tensor.Shape{2, 2})
	require.NoError(t, err)

	op := ops.NewExpM()
	_, err = op.Forward(backend, a)
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)
	require.NotNil(t, partials[0])
	assert.Nil(t, partials[1], "unary op must not feed the second slot")

	gv := partials[0].AsFloat64()
	assert.InDelta(t, 2*math.Exp(0.5), gv[0], 1e-12)
	assert.InDelta(t, 0, gv[1], 1e-12)
	assert.InDelta(t, 0, gv[2], 1e-12)
	assert.InDelta(t, 4*math.Exp(1.5), gv[3], 1e-12)
}

// A scalar multiple of the identity commutes with everything; the series
// collapses for any incoming gradient.
func TestExpM_Backward_ScalarIdentity(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{0.5, 0, 0, 0.5}, tensor.Shape{2, 2})
	require.NoError(t, err)
	grad, err := tensor.Ones[float64](tensor.Shape{2, 2})
	require.NoError(t, err)

	op := ops.NewExpM()
	_, err = op.Forward(backend, a)
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)

	e := math.Exp(0.5)
	for i, v := range partials[0].AsFloat64() {
		assert.InDelta(t, e, v, 1e-12, "entry %d", i)
	}
}

// Nilpotent case with a hand-expanded series. With a = E12 and grad = E21:
//
//	C2 = [a, grad] = diag(1, -1)
//	C3 = [a, C2]   = -2 E12
//	C4 = C5 = C6   = 0
//	total = grad - C2/2! + C3/3! = [[-1/2, -1/3], [1, 1/2]]
//
// The forward result is the identity, so gradA = total.
func TestExpM_Backward_Nilpotent(t *testing.T) {
	backend := cpu.New()

	a, err := tensor.FromSlice([]float64{0, 1, 0, 0}, tensor.Shape{2, 2})
	require.NoError(t, err)
	grad, err := tensor.FromSlice([]float64{0, 0, 1, 0}, tensor.Shape{2, 2})
	require.NoError(t, err)

	op := ops.NewExpM()
	_, err = op.Forward(backend, a)
	require.NoError(t, err)

	partials, err := op.Backward(backend, grad)
	require.NoError(t, err)

	gv := partials[0].AsFloat64()
	assert.InDelta(t, -0.5, gv[0], 1e-12)
	assert.InDelta(t, -1.0/3.0, gv[1], 1e-12)
	assert.InDelta(t, 1, gv[2], 1e-12)
	assert.InDelta(t, 0.5, gv[3], 1e-12)
}
