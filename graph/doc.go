// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph provides reverse-mode automatic differentiation over an
// explicit computation graph.
//
// # Overview
//
// A Graph is a Wengert list: an append-only, index-addressed tape of
// operations. Applying operators to Tensor handles records nodes; nothing is
// evaluated until Forward is called, and gradients flow when Backward walks
// the tape in reverse.
//
//   - Operator application records, never computes
//   - Forward evaluates nodes 0..target in index order
//   - Backward accumulates gradients target..0 via the chain rule
//   - Reusing a handle in several expressions sums its gradient contributions
//
// # Basic Usage
//
//	import (
//	    "github.com/wengert-ml/wengert/backend/cpu"
//	    "github.com/wengert-ml/wengert/graph"
//	    "github.com/wengert-ml/wengert/tensor"
//	)
//
//	func main() {
//	    g := graph.New(cpu.New())
//
//	    rawX, _ := tensor.FromSlice([]float64{1, 2}, tensor.Shape{2})
//	    rawY, _ := tensor.FromSlice([]float64{3, 4}, tensor.Shape{2})
//
//	    x := g.Leaf(rawX)
//	    y := g.Leaf(rawY)
//	    z := x.Add(y).Mul(x)
//
//	    if err := z.Forward(); err != nil {
//	        log.Fatal(err)
//	    }
//	    if err := z.Backward(nil); err != nil { // seed defaults to ones
//	        log.Fatal(err)
//	    }
//
//	    value, _ := z.Value()
//	    gradX, _ := x.Grad()
//	}
//
// # Operations
//
// Tensor handles support Add, Mul (element-wise), MatMul (2-D matrix
// product) and ExpM (diagonal matrix exponential with a truncated
// commutator-series gradient).
//
// # Backends
//
// The graph delegates all numeric work to a tensor.Backend. Pass cpu.New()
// for the pure Go backend or webgpu.New() for GPU compute.
package graph
