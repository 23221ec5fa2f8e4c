package ops

import "github.com/wengert-ml/wengert/internal/tensor"

// MulFn is element-wise multiplication: output = a * b.
//
// Backward: d(a*b)/da = b and d(a*b)/db = a, so both inputs are cached
// during forward.
type MulFn struct {
	xCtx *tensor.RawTensor
	yCtx *tensor.RawTensor
}

// NewMul creates a new MulFn with empty context.
func NewMul() *MulFn {
	return &MulFn{}
}

// Forward computes a * b element-wise and caches both operands.
func (op *MulFn) Forward(b tensor.Backend, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	op.xCtx = x.Share()
	op.yCtx = y.Share()
	return b.Mul(x, y)
}

// Backward computes [b*grad, a*grad].
func (op *MulFn) Backward(b tensor.Backend, grad *tensor.RawTensor) ([2]*tensor.RawTensor, error) {
	gradX, err := b.Mul(op.yCtx, grad)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}
	gradY, err := b.Mul(op.xCtx, grad)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}
	return [2]*tensor.RawTensor{gradX, gradY}, nil
}
