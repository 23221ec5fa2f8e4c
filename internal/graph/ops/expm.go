package ops

import "github.com/wengert-ml/wengert/internal/tensor"

// expmOrder is the truncation order of the commutator series used by the
// ExpM backward pass. Six terms is a fixed-order truncation with no adaptive
// stopping rule; the error is O(‖a‖⁶/6!) and grows with the operand norm.
const expmOrder = 6

// ExpMFn is the diagonal matrix exponential: output = eye ⊙ exp(a), the
// element-wise exponential masked to the diagonal.
//
// The backward pass implements a truncated power series for the derivative
// of the exponential map of a Lie group:
//
//	https://en.wikipedia.org/wiki/Derivative_of_the_exponential_map
//
// With C₁ = grad and Cₖ = [a, Cₖ₋₁] = a·Cₖ₋₁ − Cₖ₋₁·a:
//
//	total = grad − C₂/2! + C₃/3! − C₄/4! + C₅/5! − C₆/6!
//	grad_a = forward_result · total
//
// A general matrix exponential (scaling-and-squaring) is out of scope.
type ExpMFn struct {
	aCtx   *tensor.RawTensor
	resCtx *tensor.RawTensor
}

// NewExpM creates a new ExpMFn with empty context.
func NewExpM() *ExpMFn {
	return &ExpMFn{}
}

// Forward computes eye ⊙ exp(a), caching the input and the result.
func (op *ExpMFn) Forward(b tensor.Backend, x *tensor.RawTensor) (*tensor.RawTensor, error) {
	op.aCtx = x.Share()

	eye, err := b.EyeLike(x)
	if err != nil {
		return nil, err
	}
	ex, err := b.Exp(x)
	if err != nil {
		return nil, err
	}
	res, err := b.Mul(eye, ex)
	if err != nil {
		return nil, err
	}

	op.resCtx = res.Share()
	return res, nil
}

// Backward accumulates the truncated commutator series and left-multiplies
// by the forward result. The second slot is nil: ExpM is unary.
func (op *ExpMFn) Backward(b tensor.Backend, grad *tensor.RawTensor) ([2]*tensor.RawTensor, error) {
	a := op.aCtx

	commutator := func(x, y *tensor.RawTensor) (*tensor.RawTensor, error) {
		xy, err := b.MatMul(x, y)
		if err != nil {
			return nil, err
		}
		yx, err := b.MatMul(y, x)
		if err != nil {
			return nil, err
		}
		return b.Sub(xy, yx)
	}

	prev := grad.Share()
	total := grad.Share()
	factorial := 1

	for k := 2; k <= expmOrder; k++ {
		factorial *= k
		sign := 1
		if k%2 == 0 {
			sign = -1
		}

		c, err := commutator(a, prev)
		if err != nil {
			return [2]*tensor.RawTensor{}, err
		}
		prev = c

		divisor, err := b.FullLike(a, float64(sign*factorial))
		if err != nil {
			return [2]*tensor.RawTensor{}, err
		}
		term, err := b.Div(c, divisor)
		if err != nil {
			return [2]*tensor.RawTensor{}, err
		}
		total, err = b.Add(total, term)
		if err != nil {
			return [2]*tensor.RawTensor{}, err
		}
	}

	gradA, err := b.MatMul(op.resCtx, total)
	if err != nil {
		return [2]*tensor.RawTensor{}, err
	}
	return [2]*tensor.RawTensor{gradA, nil}, nil
}
