// Package graph implements the computation graph (Wengert list) at the heart
// of the wengert autodiff engine.
//
// A Graph records tensor operations as they are applied to Tensor handles,
// evaluates the recorded list forward to produce values, and walks it
// backward to accumulate gradients via the chain rule.
//
// Usage:
//
//	backend := cpu.New()
//	g := graph.New(backend)
//
//	x := g.Leaf(rawX)
//	y := g.Leaf(rawY)
//	z := x.Add(y).Mul(x)
//
//	if err := z.Forward(); err != nil { ... }
//	if err := z.Backward(nil); err != nil { ... } // seed defaults to ones
//
//	value, err := z.Value()
//	gradX, err := x.Grad()
package graph

import (
	"fmt"
	"sync"

	"github.com/wengert-ml/wengert/internal/graph/ops"
	"github.com/wengert-ml/wengert/internal/tensor"
)

// Graph is an append-only, index-addressed computation graph. It is the sole
// authority for creating nodes and for running forward/backward traversal;
// Tensor handles carry no data of their own.
//
// All node mutation happens under an exclusive lock, value/gradient reads
// under a shared lock. Graph construction itself is expected to be
// single-threaded; the lock makes interleaved reads safe, it does not define
// an ordering for concurrent forward calls over overlapping index ranges.
type Graph struct {
	mu      sync.RWMutex
	nodes   []*node
	backend tensor.Backend
}

// New creates an empty graph whose nodes are computed by the given backend.
func New(backend tensor.Backend) *Graph {
	return &Graph{
		nodes:   make([]*node, 0, 64),
		backend: backend,
	}
}

// Backend returns the backend this graph computes with.
func (g *Graph) Backend() tensor.Backend {
	return g.backend
}

// Size returns the current node count. The next appended node gets this index.
func (g *Graph) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.nodes)
}

// Leaf appends a leaf node holding the given value and returns a handle to it.
func (g *Graph) Leaf(value *tensor.RawTensor) Tensor {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.nodes)
	g.nodes = append(g.nodes, &node{
		deps:  [2]int{idx, idx},
		value: value.Share(),
	})
	return Tensor{graph: g, index: idx}
}

// appendBinary records a derived node with two dependencies. Used only by
// operator application; always appends at the current length and returns
// that index.
func (g *Graph) appendBinary(a, b int, fn ops.Function) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.nodes)
	g.nodes = append(g.nodes, &node{
		deps: [2]int{a, b},
		fn:   fn,
	})
	return idx
}

// appendUnary records a derived node with one dependency; the second slot
// self-references to mark it unused.
func (g *Graph) appendUnary(a int, fn ops.Function) int {
	g.mu.Lock()
	defer g.mu.Unlock()

	idx := len(g.nodes)
	g.nodes = append(g.nodes, &node{
		deps: [2]int{a, idx},
		fn:   fn,
	})
	return idx
}

// forward evaluates nodes 0..target in increasing index order. Dependency
// indices are always below the node's own index, so every dependency value
// is already populated when a node is visited.
func (g *Graph) forward(target int) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := 0; i <= target; i++ {
		n := g.nodes[i]
		if n.isLeaf() {
			continue
		}

		x := g.nodes[n.deps[0]].value
		if x == nil {
			return fmt.Errorf("forward: node %d: dependency %d has no value: %w",
				i, n.deps[0], tensor.ErrNotComputed)
		}

		var (
			value *tensor.RawTensor
			err   error
		)
		switch fn := n.fn.(type) {
		case ops.Binary:
			if n.deps[1] == i {
				return fmt.Errorf("forward: node %d: binary operation on unary node: %w",
					i, tensor.ErrUnsupported)
			}
			y := g.nodes[n.deps[1]].value
			if y == nil {
				return fmt.Errorf("forward: node %d: dependency %d has no value: %w",
					i, n.deps[1], tensor.ErrNotComputed)
			}
			value, err = fn.Forward(g.backend, x, y)
		case ops.Unary:
			if n.deps[1] != i {
				return fmt.Errorf("forward: node %d: unary operation on binary node: %w",
					i, tensor.ErrUnsupported)
			}
			value, err = fn.Forward(g.backend, x)
		default:
			return fmt.Errorf("forward: node %d: %w", i, tensor.ErrUnsupported)
		}
		if err != nil {
			return fmt.Errorf("forward: node %d: %w", i, err)
		}
		n.value = value
	}
	return nil
}

// backward seeds the target node's gradient and walks target..0 in
// decreasing index order, computing each visited node's partials and
// accumulating them into its dependencies. A node with no gradient simply
// contributes nothing downstream; only the target itself must be seeded.
func (g *Graph) backward(target int, seed *tensor.RawTensor) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	tn := g.nodes[target]
	if seed == nil {
		if tn.value == nil {
			return fmt.Errorf("backward: node %d: %w", target, tensor.ErrNotComputed)
		}
		ones, err := g.backend.OnesLike(tn.value)
		if err != nil {
			return fmt.Errorf("backward: seed: %w", err)
		}
		seed = ones
	}
	tn.grad = seed.Share()

	for i := target; i >= 0; i-- {
		n := g.nodes[i]
		if n.isLeaf() || n.grad == nil {
			continue
		}

		partials, err := n.fn.Backward(g.backend, n.grad)
		if err != nil {
			return fmt.Errorf("backward: node %d: %w", i, err)
		}
		n.partials = partials

		for j := 0; j < 2; j++ {
			dep := n.deps[j]
			if dep == i || partials[j] == nil {
				continue
			}
			d := g.nodes[dep]
			if d.grad == nil {
				d.grad = partials[j].Share()
				continue
			}
			// The same tensor feeds several consumers: each
			// contributes an additive term by the chain rule.
			sum, err := g.backend.Add(d.grad, partials[j])
			if err != nil {
				return fmt.Errorf("backward: node %d: accumulate into %d: %w", i, dep, err)
			}
			d.grad = sum
		}
	}
	return nil
}

// value returns a host copy of a node's value.
func (g *Graph) value(index int) (*tensor.RawTensor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.nodes[index].value
	if v == nil {
		return nil, tensor.ErrNotComputed
	}
	return g.backend.ToHost(v)
}

// grad returns a host copy of a node's accumulated gradient.
func (g *Graph) grad(index int) (*tensor.RawTensor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	v := g.nodes[index].grad
	if v == nil {
		return nil, tensor.ErrNoGradient
	}
	return g.backend.ToHost(v)
}
