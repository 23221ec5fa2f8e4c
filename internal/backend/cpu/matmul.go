package cpu

import (
	"gonum.org/v1/gonum/mat"

	"github.com/wengert-ml/wengert/internal/tensor"
)

// MatMul performs matrix multiplication (M, K) @ (K, N) -> (M, N) through
// gonum's BLAS-backed mat.Dense. Only rank-2 operands are accepted.
func (cpu *CPUBackend) MatMul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.CheckRank2("matmul", a); err != nil {
		return nil, err
	}
	if err := tensor.CheckRank2("matmul", b); err != nil {
		return nil, err
	}

	m, k := a.Shape()[0], a.Shape()[1]
	kAlt, n := b.Shape()[0], b.Shape()[1]
	if k != kAlt {
		return nil, &tensor.ShapeError{Op: "matmul", A: a.Shape(), B: b.Shape(),
			Details: "inner dimensions must agree"}
	}

	var c mat.Dense
	c.Mul(asDense(a), asDense(b))

	result, err := tensor.NewRaw(tensor.Shape{m, n}, a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}
	fromDense(result, &c)
	return result, nil
}

// Transpose returns the matrix transpose of a rank-2 tensor.
func (cpu *CPUBackend) Transpose(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	if err := tensor.CheckRank2("transpose", a); err != nil {
		return nil, err
	}

	rows, cols := a.Shape()[0], a.Shape()[1]
	result, err := tensor.NewRaw(tensor.Shape{cols, rows}, a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	var t mat.Dense
	t.CloneFrom(asDense(a).T())
	fromDense(result, &t)
	return result, nil
}

// asDense views a rank-2 RawTensor as a gonum mat.Dense (float64 copy for
// float32 tensors; gonum operates on float64 only).
func asDense(t *tensor.RawTensor) *mat.Dense {
	rows, cols := t.Shape()[0], t.Shape()[1]
	switch t.DType() {
	case tensor.Float64:
		return mat.NewDense(rows, cols, t.AsFloat64())
	default:
		src := t.AsFloat32()
		data := make([]float64, len(src))
		for i, v := range src {
			data[i] = float64(v)
		}
		return mat.NewDense(rows, cols, data)
	}
}

// fromDense copies a mat.Dense into a preallocated RawTensor of matching shape.
func fromDense(dst *tensor.RawTensor, src *mat.Dense) {
	raw := src.RawMatrix()
	switch dst.DType() {
	case tensor.Float64:
		out := dst.AsFloat64()
		for i := 0; i < raw.Rows; i++ {
			copy(out[i*raw.Cols:(i+1)*raw.Cols], raw.Data[i*raw.Stride:i*raw.Stride+raw.Cols])
		}
	default:
		out := dst.AsFloat32()
		for i := 0; i < raw.Rows; i++ {
			for j := 0; j < raw.Cols; j++ {
				out[i*raw.Cols+j] = float32(raw.Data[i*raw.Stride+j])
			}
		}
	}
}
