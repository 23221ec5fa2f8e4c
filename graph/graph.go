// Copyright 2025 Wengert ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package graph

import (
	"github.com/wengert-ml/wengert/internal/graph"
	"github.com/wengert-ml/wengert/tensor"
)

// Graph is an append-only computation graph. Create one with New, add leaves
// with Leaf, then build expressions through Tensor operator methods.
type Graph = graph.Graph

// Tensor is a lightweight, copyable handle on one graph node. Handles are
// created by Graph.Leaf and by operator methods; all state lives in the graph.
type Tensor = graph.Tensor

// New creates an empty graph whose nodes are computed by the given backend.
//
// Example:
//
//	g := graph.New(cpu.New())
//	x := g.Leaf(raw)
func New(backend tensor.Backend) *Graph {
	return graph.New(backend)
}
