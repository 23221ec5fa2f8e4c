// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/wengert-ml/wengert/internal/backend/cpu"
	"github.com/wengert-ml/wengert/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of all tensor operations,
// with matrix products delegated to gonum.
type Backend = internalcpu.CPUBackend

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/wengert-ml/wengert/backend/cpu"
//	    "github.com/wengert-ml/wengert/graph"
//	)
//
//	func main() {
//	    g := graph.New(cpu.New())
//	}
func New() *Backend {
	return internalcpu.New()
}
