// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum-backed matrix multiplication and transpose
//   - Float32 and Float64 support
//   - Chunked parallel element-wise kernels
//
// # Basic Usage
//
//	import (
//	    "github.com/wengert-ml/wengert/backend/cpu"
//	    "github.com/wengert-ml/wengert/graph"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    g := graph.New(backend)
//	    x := g.Leaf(raw)
//	}
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation is
// isolated and does not share mutable state.
package cpu
