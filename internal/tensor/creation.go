package tensor

import "fmt"

// FromSlice creates a host RawTensor from a Go slice.
//
// The data is copied; the returned tensor owns its buffer.
//
// Example:
//
//	x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice[T DType](data []T, shape Shape) (*RawTensor, error) {
	var dummy T
	dtype := inferDataType(dummy)

	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}

	raw, err := NewRaw(shape, dtype, CPU)
	if err != nil {
		return nil, err
	}

	switch dtype {
	case Float32:
		copy(raw.AsFloat32(), any(data).([]float32))
	case Float64:
		copy(raw.AsFloat64(), any(data).([]float64))
	}

	return raw, nil
}

// Eye creates an n-by-n identity matrix on the host.
func Eye[T DType](n int) (*RawTensor, error) {
	var dummy T
	raw, err := NewRaw(Shape{n, n}, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	switch raw.DType() {
	case Float32:
		data := raw.AsFloat32()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	case Float64:
		data := raw.AsFloat64()
		for i := 0; i < n; i++ {
			data[i*n+i] = 1
		}
	}

	return raw, nil
}

// Ones creates a host tensor filled with ones.
func Ones[T DType](shape Shape) (*RawTensor, error) {
	var dummy T
	raw, err := NewRaw(shape, inferDataType(dummy), CPU)
	if err != nil {
		return nil, err
	}

	switch raw.DType() {
	case Float32:
		data := raw.AsFloat32()
		for i := range data {
			data[i] = 1
		}
	case Float64:
		data := raw.AsFloat64()
		for i := range data {
			data[i] = 1
		}
	}

	return raw, nil
}
