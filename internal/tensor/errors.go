package tensor

import (
	"errors"
	"fmt"
)

// Usage errors: the caller asked for something before the relevant pass ran,
// or combined handles that do not belong together. These are distinct from
// shape errors so callers can tell "not yet computed" from a genuine failure.
var (
	// ErrNotComputed is returned when reading a value before forward ran
	// for the node's index.
	ErrNotComputed = errors.New("value not computed: run the forward pass first")

	// ErrNoGradient is returned when reading a gradient before backward ran
	// for the node's index.
	ErrNoGradient = errors.New("gradient not computed: run the backward pass first")

	// ErrGraphMismatch reports an operation combining tensors from
	// different graphs.
	ErrGraphMismatch = errors.New("tensors belong to different graphs")

	// ErrUnsupported reports an operation whose arity does not match the
	// node's recorded dependencies (unary function on a binary node or
	// vice versa).
	ErrUnsupported = errors.New("operation arity does not match node dependencies")
)

// ShapeError provides detailed information about operand shape or rank
// mismatches in a forward computation.
type ShapeError struct {
	Op      string // Operation name (e.g., "matmul", "add")
	A, B    Shape  // Operand shapes (B may be nil for unary ops)
	Details string // Additional details
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	if e.B != nil {
		return fmt.Sprintf("%s: shapes %v and %v: %s", e.Op, e.A, e.B, e.Details)
	}
	return fmt.Sprintf("%s: shape %v: %s", e.Op, e.A, e.Details)
}

// CheckSameShape reports a ShapeError unless a and b have identical shapes.
// Exported for backend implementations.
func CheckSameShape(op string, a, b *RawTensor) error {
	if !a.Shape().Equal(b.Shape()) {
		return &ShapeError{Op: op, A: a.Shape(), B: b.Shape(), Details: "operand shapes must match"}
	}
	return nil
}

// CheckRank2 reports a ShapeError unless t is a rank-2 tensor.
func CheckRank2(op string, t *RawTensor) error {
	if len(t.Shape()) != 2 {
		return &ShapeError{Op: op, A: t.Shape(), Details: "operand must be rank-2"}
	}
	return nil
}
