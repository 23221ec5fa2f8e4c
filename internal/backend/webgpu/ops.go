package webgpu

import (
	"fmt"

	"github.com/wengert-ml/wengert/internal/tensor"
)

// Add performs element-wise addition on GPU.
func (b *Backend) Add(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runBinaryOp(a, other, "add", addShader)
}

// Sub performs element-wise subtraction on GPU.
func (b *Backend) Sub(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runBinaryOp(a, other, "sub", subShader)
}

// Mul performs element-wise multiplication on GPU.
func (b *Backend) Mul(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runBinaryOp(a, other, "mul", mulShader)
}

// Div performs element-wise division on GPU.
func (b *Backend) Div(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runBinaryOp(a, other, "div", divShader)
}

// MatMul performs matrix multiplication on GPU.
func (b *Backend) MatMul(a, other *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runMatMul(a, other)
}

// Transpose performs 2D matrix transpose on GPU.
func (b *Backend) Transpose(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runTranspose(a)
}

// Exp computes the element-wise exponential on GPU.
func (b *Backend) Exp(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.runUnaryOp(a, "exp", expShader)
}

// EyeLike returns an identity matrix with a's shape. Constructors are filled
// host-side and consumed by the next dispatch; there is no dedicated kernel.
func (b *Backend) EyeLike(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	if a.DType() != tensor.Float32 {
		return nil, fmt.Errorf("webgpu: only float32 is supported, got %s", a.DType())
	}
	if err := tensor.CheckRank2("eye_like", a); err != nil {
		return nil, err
	}
	n := a.Shape()[0]
	if a.Shape()[1] != n {
		return nil, &tensor.ShapeError{Op: "eye_like", A: a.Shape(), Details: "operand must be square"}
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), tensor.WebGPU)
	if err != nil {
		return nil, err
	}
	rv := result.AsFloat32()
	for i := 0; i < n; i++ {
		rv[i*n+i] = 1
	}
	return result, nil
}

// OnesLike returns a tensor of ones with a's shape.
func (b *Backend) OnesLike(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	return b.FullLike(a, 1)
}

// FullLike returns a tensor with a's shape filled with the scalar v.
func (b *Backend) FullLike(a *tensor.RawTensor, v float64) (*tensor.RawTensor, error) {
	if a.DType() != tensor.Float32 {
		return nil, fmt.Errorf("webgpu: only float32 is supported, got %s", a.DType())
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), tensor.WebGPU)
	if err != nil {
		return nil, err
	}
	rv := result.AsFloat32()
	f := float32(v)
	for i := range rv {
		rv[i] = f
	}
	return result, nil
}

// ToHost materializes a host copy of the tensor for user-facing reads.
func (b *Backend) ToHost(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	result, err := tensor.NewRaw(a.Shape(), a.DType(), tensor.CPU)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), a.Data())
	return result, nil
}
