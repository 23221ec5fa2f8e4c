// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/wengert-ml/wengert/internal/tensor"
)

// RawTensor is the low-level tensor representation.
//
// RawTensor provides:
//   - Shape and type information via Shape(), DType(), Device()
//   - Type-safe data access via AsFloat32() and AsFloat64()
//   - Shared ownership via Share() and reference counting
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3}, tensor.Float32, tensor.CPU)
//	data := raw.AsFloat32() // Type-safe access
//	alias := raw.Share()    // Shares buffer via reference counting
type RawTensor = tensor.RawTensor

// Shape represents tensor dimensions.
type Shape = tensor.Shape

// DataType identifies a tensor element type.
type DataType = tensor.DataType

// Supported element types.
const (
	Float32 = tensor.Float32
	Float64 = tensor.Float64
)

// Device identifies where a tensor's backend runs its computation.
type Device = tensor.Device

// Supported devices.
const (
	CPU    = tensor.CPU
	WebGPU = tensor.WebGPU
)

// DType is the generic constraint for tensor element types.
type DType = tensor.DType

// Sentinel errors reported by graph and backend operations.
var (
	ErrNotComputed   = tensor.ErrNotComputed
	ErrNoGradient    = tensor.ErrNoGradient
	ErrGraphMismatch = tensor.ErrGraphMismatch
	ErrUnsupported   = tensor.ErrUnsupported
)

// ShapeError describes an operand shape rejected by an operation.
type ShapeError = tensor.ShapeError

// NewRaw allocates a zero-filled tensor with the given shape, element type
// and device tag.
func NewRaw(shape Shape, dtype DataType, device Device) (*RawTensor, error) {
	return tensor.NewRaw(shape, dtype, device)
}

// FromSlice creates a host RawTensor from a Go slice. The data is copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	return tensor.FromSlice(data, shape)
}

// Eye creates an n-by-n identity matrix on the host.
func Eye[T DType](n int) (*RawTensor, error) {
	return tensor.Eye[T](n)
}

// Ones creates a host tensor filled with ones.
func Ones[T DType](shape Shape) (*RawTensor, error) {
	return tensor.Ones[T](shape)
}
