package tensor

// Backend defines the capability interface that all compute backends must
// implement. The graph engine calls only into this set; it is agnostic to
// how elements are stored or where they live.
//
// Implementations:
//   - backend/cpu: host dense arrays, gonum-backed linear algebra
//   - backend/webgpu: GPU compute via WGSL shaders
//
// All tensors used together in one expression must come from the same
// backend instance; mixing devices inside one graph is not supported.
type Backend interface {
	// Element-wise binary operations. Operand shapes must match; a
	// *ShapeError is returned otherwise.
	Add(a, b *RawTensor) (*RawTensor, error)
	Sub(a, b *RawTensor) (*RawTensor, error)
	Mul(a, b *RawTensor) (*RawTensor, error)
	Div(a, b *RawTensor) (*RawTensor, error)

	// Matrix operations, defined only for rank-2 operands.
	MatMul(a, b *RawTensor) (*RawTensor, error)
	Transpose(a *RawTensor) (*RawTensor, error)

	// Element-wise math.
	Exp(a *RawTensor) (*RawTensor, error)

	// Shape-preserving constructors.
	EyeLike(a *RawTensor) (*RawTensor, error)              // identity matrix with a's shape
	OnesLike(a *RawTensor) (*RawTensor, error)             // ones with a's shape
	FullLike(a *RawTensor, v float64) (*RawTensor, error)  // constant fill with a's shape

	// ToHost materializes a backend-independent host copy, used for
	// user-facing value/gradient reads.
	ToHost(a *RawTensor) (*RawTensor, error)

	// Metadata.
	Name() string
	Device() Device
}
