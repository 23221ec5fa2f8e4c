package graph

import (
	"fmt"

	"github.com/wengert-ml/wengert/internal/graph/ops"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// Tensor is a lightweight, copyable handle on one graph node: a graph
// back-reference plus an index. All state lives in the node; several handles
// may alias the same node, and reusing a handle as an operand in more than
// one expression is the expected way to get gradient accumulation.
//
// Operator methods only ever build the tape, they never evaluate. Call
// Forward and Backward explicitly.
type Tensor struct {
	graph *Graph
	index int
}

// Graph returns the owning graph.
func (t Tensor) Graph() *Graph {
	return t.graph
}

// Index returns the handle's node index.
func (t Tensor) Index() int {
	return t.index
}

// sameGraph panics unless other belongs to the same graph. Combining handles
// from different graphs is a programming error, not a recoverable condition.
func (t Tensor) sameGraph(other Tensor) {
	if t.graph != other.graph {
		panic(fmt.Sprintf("graph: %v", tensor.ErrGraphMismatch))
	}
}

// Add appends an element-wise addition node and returns a handle to it.
func (t Tensor) Add(other Tensor) Tensor {
	t.sameGraph(other)
	idx := t.graph.appendBinary(t.index, other.index, ops.NewAdd())
	return Tensor{graph: t.graph, index: idx}
}

// Mul appends an element-wise multiplication node and returns a handle to it.
func (t Tensor) Mul(other Tensor) Tensor {
	t.sameGraph(other)
	idx := t.graph.appendBinary(t.index, other.index, ops.NewMul())
	return Tensor{graph: t.graph, index: idx}
}

// MatMul appends a 2-D matrix product node and returns a handle to it.
// Rank is checked when the node is evaluated, not when it is recorded.
func (t Tensor) MatMul(other Tensor) Tensor {
	t.sameGraph(other)
	idx := t.graph.appendBinary(t.index, other.index, ops.NewMatMul())
	return Tensor{graph: t.graph, index: idx}
}

// ExpM appends a diagonal matrix-exponential node and returns a handle to it.
func (t Tensor) ExpM() Tensor {
	idx := t.graph.appendUnary(t.index, ops.NewExpM())
	return Tensor{graph: t.graph, index: idx}
}

// Forward evaluates the graph from index 0 up to this handle's node,
// populating every node value along the way. Re-running forward without
// intervening graph mutation recomputes the same values.
func (t Tensor) Forward() error {
	return t.graph.forward(t.index)
}

// Backward seeds this node's gradient and propagates gradients to every
// transitive dependency. A nil seed defaults to a ones tensor shaped like
// this node's value, which requires Forward to have run.
func (t Tensor) Backward(seed *tensor.RawTensor) error {
	return t.graph.backward(t.index, seed)
}

// Value returns a host-readable copy of the node's value. Fails with
// tensor.ErrNotComputed if forward has not run for this index.
func (t Tensor) Value() (*tensor.RawTensor, error) {
	return t.graph.value(t.index)
}

// Grad returns a host-readable copy of the node's accumulated gradient.
// Fails with tensor.ErrNoGradient if backward has not reached this index.
func (t Tensor) Grad() (*tensor.RawTensor, error) {
	return t.graph.grad(t.index)
}
