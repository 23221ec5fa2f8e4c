package ops

import "github.com/wengert-ml/wengert/internal/tensor"

// AddFn is element-wise addition: output = a + b.
//
// Backward: d(a+b)/da = d(a+b)/db = 1, so the incoming gradient passes
// through unchanged to both operands. No forward context is needed.
type AddFn struct{}

// NewAdd creates a new AddFn.
func NewAdd() *AddFn {
	return &AddFn{}
}

// Forward computes a + b element-wise.
func (op *AddFn) Forward(b tensor.Backend, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.Add(x, y)
}

// Backward passes the incoming gradient through to both dependency slots.
// Both slots share the same cell; accumulation downstream copies on first
// write, so the aliasing is safe.
func (op *AddFn) Backward(b tensor.Backend, grad *tensor.RawTensor) ([2]*tensor.RawTensor, error) {
	return [2]*tensor.RawTensor{grad.Share(), grad.Share()}, nil
}
