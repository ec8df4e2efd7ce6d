package tensor

// Backend defines the dense-array capability a Context computes with.
//
// The tensor layer validates shapes and arguments before calling a kernel, so
// kernels may assume well-formed inputs and panic on internal invariant
// violations. Kernels never modify their inputs: every result is a freshly
// allocated RawTensor.
//
// Implementations:
//   - CPU: pure Go on top of gonum (internal/backend/cpu)
type Backend interface {
	// Construction
	FromSlice(data []float64, shape Shape) (*RawTensor, error)        // copies data
	RandNormal(shape Shape, mean, std float64) (*RawTensor, error)    // i.i.d. normal samples
	RandUniform(shape Shape, low, high float64) (*RawTensor, error)   // i.i.d. samples on [low, high)

	// Element-wise binary operations (equal shapes)
	Add(a, b *RawTensor) *RawTensor
	Sub(a, b *RawTensor) *RawTensor
	Mul(a, b *RawTensor) *RawTensor
	Div(a, b *RawTensor) *RawTensor

	// MatMul contracts the last two axes: [..., M, K] @ [..., K, N] -> [..., M, N].
	MatMul(a, b *RawTensor) *RawTensor

	// Scalar operations
	MulScalar(x *RawTensor, scalar float64) *RawTensor
	Pow(x *RawTensor, exponent float64) *RawTensor

	// Reductions over normalized, unique axes; reduced axes are removed.
	Sum(x *RawTensor, axes []int) *RawTensor
	Mean(x *RawTensor, axes []int) *RawTensor

	// Shape operations
	Transpose(x *RawTensor, axes []int) *RawTensor // axes is a full permutation
	Expand(x *RawTensor, shape Shape) *RawTensor   // broadcast to shape

	// Activation functions
	Sigmoid(x *RawTensor) *RawTensor
	ReLU(x *RawTensor) *RawTensor

	// Metadata
	Name() string
}
