// Package cpu implements the host backend over dense arrays, with gonum-backed
// linear algebra and chunked parallel element-wise kernels.
package cpu

import (
	"github.com/wengert-ml/wengert/internal/parallel"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// CPUBackend implements the tensor capability interface on the host.
type CPUBackend struct {
	device   tensor.Device
	parallel parallel.Config
}

// New creates a new CPU backend.
func New() *CPUBackend {
	return &CPUBackend{
		device:   tensor.CPU,
		parallel: parallel.DefaultConfig(),
	}
}

// Name returns the backend name.
func (cpu *CPUBackend) Name() string {
	return "CPU"
}

// Device returns the compute device.
func (cpu *CPUBackend) Device() tensor.Device {
	return cpu.device
}

// Add performs element-wise addition.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwiseBinary("add", a, b,
		func(x, y float32) float32 { return x + y },
		func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwiseBinary("sub", a, b,
		func(x, y float32) float32 { return x - y },
		func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwiseBinary("mul", a, b,
		func(x, y float32) float32 { return x * y },
		func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) (*tensor.RawTensor, error) {
	return cpu.elementwiseBinary("div", a, b,
		func(x, y float32) float32 { return x / y },
		func(x, y float64) float64 { return x / y })
}

// elementwiseBinary applies a shape-checked element-wise kernel over both
// supported dtypes, chunking across workers for large tensors.
func (cpu *CPUBackend) elementwiseBinary(
	op string,
	a, b *tensor.RawTensor,
	f32 func(x, y float32) float32,
	f64 func(x, y float64) float64,
) (*tensor.RawTensor, error) {
	if err := tensor.CheckSameShape(op, a, b); err != nil {
		return nil, err
	}

	result, err := tensor.NewRaw(a.Shape(), a.DType(), cpu.device)
	if err != nil {
		return nil, err
	}

	n := a.NumElements()
	switch a.DType() {
	case tensor.Float32:
		av, bv, rv := a.AsFloat32(), b.AsFloat32(), result.AsFloat32()
		parallel.ForChunks(n, func(s, e int) {
			for i := s; i < e; i++ {
				rv[i] = f32(av[i], bv[i])
			}
		}, cpu.parallel)
	case tensor.Float64:
		av, bv, rv := a.AsFloat64(), b.AsFloat64(), result.AsFloat64()
		parallel.ForChunks(n, func(s, e int) {
			for i := s; i < e; i++ {
				rv[i] = f64(av[i], bv[i])
			}
		}, cpu.parallel)
	}

	return result, nil
}

// ToHost returns a host copy of the tensor. CPU tensors are already resident,
// so this is a plain buffer copy.
func (cpu *CPUBackend) ToHost(a *tensor.RawTensor) (*tensor.RawTensor, error) {
	result, err := tensor.NewRaw(a.Shape(), a.DType(), tensor.CPU)
	if err != nil {
		return nil, err
	}
	copy(result.Data(), a.Data())
	return result, nil
}
