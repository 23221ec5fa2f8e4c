package cpu

import (
	"math"

	"github.com/wengert-ml/wengert/internal/parallel"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// Exp computes the element-wise exponential.
func (cpu *CPUBackend) Exp(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	n := a.NumElements()
	switch a.DType() {
	case tensor.Float32:
		av, rv := a.AsFloat32(), result.AsFloat32()
		parallel.ForChunks(n, func(s, e int) {
			for i := s; i < e; i++ {
				rv[i] = float32(math.Exp(float64(av[i])))
			}
		}, cpu.parallel)
	case tensor.Float64:
		av, rv := a.AsFloat64(), result.AsFloat64()
		parallel.ForChunks(n, func(s, e int) {
			for i := s; i < e; i++ {
				rv[i] = math.Exp(av[i])
			}
		}, cpu.parallel)
	}

	return result, nil
}

// EyeLike returns an identity matrix with a's shape. The input must be a
// square rank-2 tensor.
func (cpu *CPUBackend) EyeLike(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.CheckRank2("eye_like", a); err != nil {
		return nil, err
	}
	n := a.Shape()[0]
	if a.Shape()[1] != n {
		return nil, &tensor.ShapeError{Op: "eye_like", A: a.Shape(), Details: "operand must be square"}
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case tensor.Float32:
		rv := result.AsFloat32()
		for i := 0; i < n; i++ {
			rv[i*n+i] = 1
		}
	case tensor.Float64:
		rv := result.AsFloat64()
		for i := 0; i < n; i++ {
			rv[i*n+i] = 1
		}
	}

	return result, nil
}

// OnesLike returns a tensor of ones with a's shape.
func (cpu *CPUBackend) OnesLike(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.FullLike(a, 1)
}

// FullLike returns a tensor with a's shape filled with the scalar v.
func (cpu *CPUBackend) FullLike(a *tensor.RawTensor, v float64) (*tensor.RawTensor, error) {
	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case tensor.Float32:
		rv := result.AsFloat32()
		f := float32(v)
		for i := range rv {
			rv[i] = f
		}
	case tensor.Float64:
		rv := result.AsFloat64()
		for i := range rv {
			rv[i] = v
		}
	}

	return result, nil
}
