package tensor

import "fmt"

// Tensor is an immutable node of a computation graph.
//
// A Tensor couples a dense payload with a unique identity, a gradient-tracking
// flag and, for derived tensors, the Operator that produced it. Tensors are
// shared by pointer: any number of downstream operators may reference the
// same operand. Nothing mutates a Tensor after construction, so the graph is
// acyclic and safe to read from several goroutines.
//
// Example:
//
//	a, _ := ctx.FromSlice([]float64{1, 2, -2, 1}, Shape{2, 2}, true)
//	b, _ := ctx.FromSlice([]float64{2, -5, 1, 6}, Shape{2, 2}, false)
//	c, _ := a.Add(b) // [3, -3, -1, 7], requires grad, op: Add(a, b)
type Tensor struct {
	id           uint64
	raw          *RawTensor
	requiresGrad bool
	op           Operator // nil for leaves
	ctx          *Context
}

// ID returns the tensor's unique identity.
func (t *Tensor) ID() uint64 {
	return t.id
}

// NDim returns the number of dimensions.
func (t *Tensor) NDim() int {
	return t.raw.NDim()
}

// Len returns the total number of elements.
func (t *Tensor) Len() int {
	return t.raw.NumElements()
}

// Shape returns a copy of the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// IsEmpty reports whether the tensor holds no elements.
func (t *Tensor) IsEmpty() bool {
	return t.raw.IsEmpty()
}

// RequiresGrad reports whether gradient tracking is requested for this tensor.
func (t *Tensor) RequiresGrad() bool {
	return t.requiresGrad
}

// Data returns the underlying storage.
func (t *Tensor) Data() *RawTensor {
	return t.raw
}

// Values returns a copy of the payload in row-major order.
func (t *Tensor) Values() []float64 {
	return t.raw.Values()
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	return t.raw.At(indices...)
}

// Op returns the operator that produced the tensor, or nil for a leaf.
func (t *Tensor) Op() Operator {
	return t.op
}

// IsLeaf reports whether the tensor was created directly rather than by an
// operation.
func (t *Tensor) IsLeaf() bool {
	return t.op == nil
}

// Context returns the context the tensor was built in.
func (t *Tensor) Context() *Context {
	return t.ctx
}

// String returns a human-readable summary of the tensor.
func (t *Tensor) String() string {
	if t.op == nil {
		return fmt.Sprintf("Tensor#%d%v", t.id, t.raw.shape)
	}
	return fmt.Sprintf("Tensor#%d%v (%s)", t.id, t.raw.shape, t.op.Kind())
}
