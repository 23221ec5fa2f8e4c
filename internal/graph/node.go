package graph

import (
	"github.com/wengert-ml/wengert/internal/graph/ops"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// node is one entry in the Wengert list.
//
// deps holds the indices of the (at most two) nodes this node was computed
// from. A leaf's two dependency slots both equal its own index, and a unary
// node's second slot equals its own index; the self-reference is a "no
// dependency" marker, never dereferenced during traversal. By construction
// every real dependency index is strictly less than the node's own index,
// so creation order is a valid topological order.
//
// A node is written only by the graph that owns it: value exactly once per
// forward pass, grad and partials during a backward pass (grad is
// accumulated into when several consumers feed gradient back).
type node struct {
	deps     [2]int
	fn       ops.Function // nil for leaves
	value    *tensor.RawTensor
	grad     *tensor.RawTensor
	partials [2]*tensor.RawTensor
}

// isLeaf reports whether the node was created directly from a value.
func (n *node) isLeaf() bool {
	return n.fn == nil
}
