package graph

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wengert-ml/wengert/internal/backend/cpu"
	"github.com/wengert-ml/wengert/internal/tensor"
)

func leaf64(t *testing.T, g *Graph, data []float64, shape tensor.Shape) Tensor {
	t.Helper()
	raw, err := tensor.FromSlice(data, shape)
	require.NoError(t, err)
	return g.Leaf(raw)
}

func TestGraph_New(t *testing.T) {
	backend := cpu.New()
	g := New(backend)

	assert.Equal(t, 0, g.Size())
	assert.Equal(t, backend, g.Backend())
}

func TestGraph_LeafIndexing(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g, []float64{2}, tensor.Shape{1})
	z := x.Add(y)

	// Nodes are appended in order; dependencies always precede consumers.
	assert.Equal(t, 0, x.Index())
	assert.Equal(t, 1, y.Index())
	assert.Equal(t, 2, z.Index())
	assert.Equal(t, 3, g.Size())
}

func TestGraph_RecordingDoesNotEvaluate(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1, 2}, tensor.Shape{2})
	y := leaf64(t, g, []float64{3, 4}, tensor.Shape{2})
	z := x.Add(y)

	_, err := z.Value()
	assert.ErrorIs(t, err, tensor.ErrNotComputed)
}

func TestGraph_ForwardBackward(t *testing.T) {
	g := New(cpu.New())

	// z = (x + y) * x
	x := leaf64(t, g, []float64{1, 2}, tensor.Shape{2})
	y := leaf64(t, g, []float64{3, 4}, tensor.Shape{2})
	z := x.Add(y).Mul(x)

	require.NoError(t, z.Forward())

	value, err := z.Value()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 12}, value.AsFloat64())

	require.NoError(t, z.Backward(nil))

	// dz/dx = 2x + y, accumulated across both uses of x.
	gradX, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 8}, gradX.AsFloat64())

	// dz/dy = x.
	gradY, err := y.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2}, gradY.AsFloat64())
}

func TestGraph_BackwardWithSeed(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1, 2}, tensor.Shape{2})
	y := leaf64(t, g, []float64{3, 4}, tensor.Shape{2})
	z := x.Add(y)

	require.NoError(t, z.Forward())

	seed, err := tensor.FromSlice([]float64{10, 100}, tensor.Shape{2})
	require.NoError(t, err)
	require.NoError(t, z.Backward(seed))

	gradX, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 100}, gradX.AsFloat64())
}

func TestGraph_GradientAccumulation(t *testing.T) {
	g := New(cpu.New())

	// z = x * x, both slots feed the same leaf: dz/dx = 2x.
	x := leaf64(t, g, []float64{3}, tensor.Shape{1})
	z := x.Mul(x)

	require.NoError(t, z.Forward())
	require.NoError(t, z.Backward(nil))

	gradX, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{6}, gradX.AsFloat64())
}

func TestGraph_ForwardIsRepeatable(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1, 2}, tensor.Shape{2})
	y := leaf64(t, g, []float64{3, 4}, tensor.Shape{2})
	z := x.Mul(y)

	require.NoError(t, z.Forward())
	first, err := z.Value()
	require.NoError(t, err)

	require.NoError(t, z.Forward())
	second, err := z.Value()
	require.NoError(t, err)

	assert.Equal(t, first.AsFloat64(), second.AsFloat64())
}

func TestGraph_PartialForward(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g, []float64{2}, tensor.Shape{1})
	a := x.Add(y)
	b := a.Mul(x)

	// Forward up to a only; b stays unevaluated.
	require.NoError(t, a.Forward())

	_, err := a.Value()
	require.NoError(t, err)

	_, err = b.Value()
	assert.ErrorIs(t, err, tensor.ErrNotComputed)
}

func TestGraph_GradBeforeBackward(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g, []float64{2}, tensor.Shape{1})
	z := x.Add(y)

	require.NoError(t, z.Forward())

	_, err := x.Grad()
	assert.ErrorIs(t, err, tensor.ErrNoGradient)
}

func TestGraph_BackwardWithoutForward(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g, []float64{2}, tensor.Shape{1})
	z := x.Add(y)

	// The default seed needs the node's value, which forward never produced.
	err := z.Backward(nil)
	assert.ErrorIs(t, err, tensor.ErrNotComputed)
}

func TestGraph_UntouchedBranchGetsNoGradient(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g, []float64{2}, tensor.Shape{1})
	z := x.Add(y)
	w := x.Mul(x) // Recorded but not on the path to z.

	require.NoError(t, w.Forward())
	require.NoError(t, z.Forward())
	require.NoError(t, z.Backward(nil))

	_, err := w.Grad()
	assert.ErrorIs(t, err, tensor.ErrNoGradient)
}

func TestGraph_CrossGraphPanics(t *testing.T) {
	g1 := New(cpu.New())
	g2 := New(cpu.New())

	x := leaf64(t, g1, []float64{1}, tensor.Shape{1})
	y := leaf64(t, g2, []float64{2}, tensor.Shape{1})

	assert.Panics(t, func() { x.Add(y) })
}

func TestGraph_MatMulChain(t *testing.T) {
	g := New(cpu.New())

	a := leaf64(t, g, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	b := leaf64(t, g, []float64{0, 1, 1, 0}, tensor.Shape{2, 2})
	c := a.MatMul(b)

	require.NoError(t, c.Forward())

	value, err := c.Value()
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 1, 4, 3}, value.AsFloat64(), "right-multiplying by the swap matrix swaps columns")

	require.NoError(t, c.Backward(nil))

	// d(A@B)/dA = ones @ Bᵀ = ones for a permutation matrix B.
	gradA, err := a.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, gradA.AsFloat64())

	// d(A@B)/dB = Aᵀ @ ones.
	gradB, err := b.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 4, 6, 6}, gradB.AsFloat64())
}

func TestGraph_ExpM(t *testing.T) {
	g := New(cpu.New())

	// A scalar multiple of the identity commutes with any seed, so the
	// backward series collapses to forward_result @ seed.
	x := leaf64(t, g, []float64{0.5, 0, 0, 0.5}, tensor.Shape{2, 2})
	z := x.ExpM()

	require.NoError(t, z.Forward())

	value, err := z.Value()
	require.NoError(t, err)
	vv := value.AsFloat64()
	assert.InDelta(t, math.Exp(0.5), vv[0], 1e-12)
	assert.InDelta(t, 0, vv[1], 1e-12)
	assert.InDelta(t, 0, vv[2], 1e-12)
	assert.InDelta(t, math.Exp(0.5), vv[3], 1e-12)

	require.NoError(t, z.Backward(nil))

	gradX, err := x.Grad()
	require.NoError(t, err)
	for i, v := range gradX.AsFloat64() {
		assert.InDelta(t, math.Exp(0.5), v, 1e-12, "entry %d", i)
	}
}

func TestGraph_MixedExpression(t *testing.T) {
	g := New(cpu.New())

	// z = expm(x) * (x + y), element-wise product of two 2x2 results.
	x := leaf64(t, g, []float64{0.5, 0, 0, 1.5}, tensor.Shape{2, 2})
	y := leaf64(t, g, []float64{1, 2, 3, 4}, tensor.Shape{2, 2})
	z := x.ExpM().Mul(x.Add(y))

	require.NoError(t, z.Forward())

	value, err := z.Value()
	require.NoError(t, err)
	vv := value.AsFloat64()
	assert.InDelta(t, math.Exp(0.5)*1.5, vv[0], 1e-12)
	assert.InDelta(t, 0, vv[1], 1e-12)
	assert.InDelta(t, 0, vv[2], 1e-12)
	assert.InDelta(t, math.Exp(1.5)*5.5, vv[3], 1e-12)

	require.NoError(t, z.Backward(nil))

	// The additive path alone contributes expm(x) to y's gradient.
	gradY, err := y.Grad()
	require.NoError(t, err)
	gv := gradY.AsFloat64()
	assert.InDelta(t, math.Exp(0.5), gv[0], 1e-12)
	assert.InDelta(t, 0, gv[1], 1e-12)
	assert.InDelta(t, 0, gv[2], 1e-12)
	assert.InDelta(t, math.Exp(1.5), gv[3], 1e-12)
}

func TestGraph_ValueIsHostCopy(t *testing.T) {
	g := New(cpu.New())

	x := leaf64(t, g, []float64{1, 2}, tensor.Shape{2})
	y := leaf64(t, g, []float64{3, 4}, tensor.Shape{2})
	z := x.Add(y)

	require.NoError(t, z.Forward())

	v1, err := z.Value()
	require.NoError(t, err)
	v1.AsFloat64()[0] = 999

	v2, err := z.Value()
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 6}, v2.AsFloat64(), "reads must not expose internal state")
}

func TestGraph_Float32(t *testing.T) {
	g := New(cpu.New())

	rawX, err := tensor.FromSlice([]float32{1, 2}, tensor.Shape{2})
	require.NoError(t, err)
	rawY, err := tensor.FromSlice([]float32{3, 4}, tensor.Shape{2})
	require.NoError(t, err)

	x := g.Leaf(rawX)
	y := g.Leaf(rawY)
	z := x.Add(y).Mul(x)

	require.NoError(t, z.Forward())
	require.NoError(t, z.Backward(nil))

	gradX, err := x.Grad()
	require.NoError(t, err)
	assert.Equal(t, []float32{5, 8}, gradX.AsFloat32())
}
