// Package ops defines the differentiable operation catalog for the graph engine.
//
// Each operation implements Function, the per-node forward/backward contract:
//   - Forward computes the node's value from its dependency values, storing
//     whatever context the backward pass will need.
//   - Backward maps the node's incoming gradient to per-dependency partial
//     gradients via the chain rule.
//
// Catalog:
//   - Add: element-wise addition (d(a+b)/da = 1, d(a+b)/db = 1)
//   - Mul: element-wise multiplication (d(a*b)/da = b, d(a*b)/db = a)
//   - MatMul: 2-D matrix product (d(A@B)/dA = grad@Bᵀ, d(A@B)/dB = Aᵀ@grad)
//   - ExpM: diagonal matrix exponential with a truncated commutator series
//     for the backward pass
package ops

import "github.com/wengert-ml/wengert/internal/tensor"

// Function is the common contract of every catalog entry. Concrete operations
// additionally implement Unary or Binary, which carry the arity-specific
// forward signature. A Function instance is scoped to exactly one graph node;
// its cached forward context must never be shared across nodes.
type Function interface {
	// Backward computes per-dependency partial gradients given the node's
	// incoming gradient. A nil entry means no gradient flows to that
	// dependency slot and must be treated as zero by the caller.
	Backward(b tensor.Backend, grad *tensor.RawTensor) ([2]*tensor.RawTensor, error)
}

// Unary is a single-operand operation, e.g. x.ExpM().
type Unary interface {
	Function
	Forward(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error)
}

// Binary is a two-operand operation, e.g. x.Add(y).
type Binary interface {
	Function
	Forward(b tensor.Backend, x, y *tensor.RawTensor) (*tensor.RawTensor, error)
}
