// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the tensor value type and backend abstraction for
// the Wengert autodiff engine.
//
// # Overview
//
// This package provides:
//   - RawTensor, a shape-and-dtype-tagged numeric buffer with reference
//     counting for shared ownership
//   - Shape with stride computation and validation
//   - The Backend capability interface that compute backends implement
//   - Host-side constructors (FromSlice, Eye, Ones)
//
// # Basic Usage
//
//	import (
//	    "github.com/wengert-ml/wengert/tensor"
//	)
//
//	func main() {
//	    x, err := tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(x.Shape(), x.DType())
//	}
//
// # Supported Data Types
//
// The DType constraint covers float32 and float64. The CPU backend handles
// both; the WebGPU backend is float32 only.
//
// # Device Support
//
// Tensors are tagged with the device of the backend that produced them:
//   - CPU: pure Go implementation, gonum-backed matrix products
//   - WebGPU: zero-CGO GPU acceleration via WGSL compute shaders
//
// # Memory Management
//
// The underlying data buffer is reference-counted. Share returns an aliasing
// handle without copying; Release drops a reference.
//
// # Errors
//
// Operations report failures through a small set of sentinel errors
// (ErrNotComputed, ErrNoGradient, ErrGraphMismatch, ErrUnsupported) and the
// structured ShapeError, all usable with errors.Is and errors.As.
package tensor
