package tensor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RawTensor is the dense storage behind a Tensor: a row-major float64 payload
// together with its shape and strides.
//
// A RawTensor is never modified after construction. Backends allocate a fresh
// slice for every result and hand it over with NewRaw.
type RawTensor struct {
	data   []float64 // Row-major payload, len == shape.NumElements()
	shape  Shape     // Tensor dimensions
	stride []int     // Memory strides (row-major)
}

// NewRaw wraps data as a RawTensor of the given shape.
//
// NewRaw takes ownership of data: the caller must not modify the slice
// afterwards. Fails if the shape has a negative dimension or if len(data)
// does not match the number of elements of shape.
func NewRaw(shape Shape, data []float64) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if n := shape.NumElements(); n != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, n, len(data))
	}

	return &RawTensor{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns a copy of the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape.Clone()
}

// Strides returns a copy of the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return append([]int(nil), r.stride...)
}

// NDim returns the number of dimensions.
func (r *RawTensor) NDim() int {
	return len(r.shape)
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return len(r.data)
}

// IsEmpty reports whether the tensor holds no elements.
func (r *RawTensor) IsEmpty() bool {
	return len(r.data) == 0
}

// RawData returns the payload of r without copying.
//
// WARNING: the slice is shared with every Tensor referencing this storage.
// Backends read operands through it; nothing may write to it. The public
// tensor package does not re-export RawData, so only code in this module
// can reach the shared slice.
func RawData(r *RawTensor) []float64 {
	return r.data
}

// Values returns a copy of the payload in row-major order.
func (r *RawTensor) Values() []float64 {
	return append([]float64(nil), r.data...)
}

// At returns the element at the given indices.
// Panics if the number of indices or any index is out of bounds.
func (r *RawTensor) At(indices ...int) float64 {
	if len(indices) != len(r.shape) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(r.shape), len(indices)))
	}

	offset := 0
	for i, idx := range indices {
		if idx < 0 || idx >= r.shape[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, r.shape[i]))
		}
		offset += idx * r.stride[i]
	}
	return r.data[offset]
}

// Mean returns the arithmetic mean of all elements.
// The second result is false for an empty tensor.
func (r *RawTensor) Mean() (float64, bool) {
	if len(r.data) == 0 {
		return 0, false
	}
	return stat.Mean(r.data, nil), true
}

// Equal reports whether both tensors have the same shape and exactly equal
// elements.
func (r *RawTensor) Equal(other *RawTensor) bool {
	if other == nil {
		return false
	}
	return r.shape.Equal(other.shape) && floats.Equal(r.data, other.data)
}

// String returns a human-readable summary of the storage.
func (r *RawTensor) String() string {
	return fmt.Sprintf("RawTensor%v", r.shape)
}
