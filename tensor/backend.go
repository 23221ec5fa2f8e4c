// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/wengert-ml/wengert/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for graph nodes; the graph itself
// never touches element data.
//
// Implementations:
//   - backend/cpu: Pure Go with gonum-backed matrix products
//   - backend/webgpu: Cross-platform GPU compute via WebGPU
//
// Example:
//
//	import (
//	    "github.com/wengert-ml/wengert/backend/cpu"
//	    "github.com/wengert-ml/wengert/graph"
//	)
//
//	g := graph.New(cpu.New())
//	x := g.Leaf(raw) // Node evaluation uses backend.Add etc. under the hood
type Backend = tensor.Backend

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
