package ops

import "github.com/wengert-ml/wengert/internal/tensor"

// MatMulFn is the 2-D matrix product: output = a @ b.
//
// Backward: d(A@B)/dA = grad @ Bᵀ and d(A@B)/dB = Aᵀ @ grad. Both inputs
// are cached during forward. The backend rejects operands that are not
// rank-2.
type MatMulFn struct {
	xCtx *tensor.RawTensor
	yCtx *tensor.RawTensor
}

// NewMatMul creates a new MatMulFn with empty context.
func NewMatMul() *MatMulFn {
	return &MatMulFn{}
}

// Forward computes a @ b and caches both operands.
func (op *MatMulFn) Forward(b tensor.Backend, x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
	op.xCtx = x.Share()
	op.yCtx = y.Share()
	return b.MatMul(x, y)
}

// Backward computes [grad @ bᵀ, aᵀ @ grad].
func (op *MatMulFn) Backward(b tensor.Backend, grad *tensor.RawTensor) ([2]*tensor.RawTensor, error) {
	yT, err := b.Transpose(op.yCtx)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}
	gradX, err := b.MatMul(grad, yT)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}

	xT, err := b.Transpose(op.xCtx)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}
	gradY, err := b.MatMul(xT, grad)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}

	return [2]*tensor.RawTensor{gradX, gradY}, nil
}
