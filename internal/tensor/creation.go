package tensor

import (
	"github.com/pkg/errors"
)

// FromSlice creates a leaf tensor from a flat row-major slice.
// The slice is copied into the tensor's storage.
//
// Backend failures (length mismatch, negative dimension) are returned wrapped,
// not translated into ShapeMismatchError.
//
// Example:
//
//	t, err := ctx.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, false)
func (c *Context) FromSlice(values []float64, shape Shape, requiresGrad bool) (*Tensor, error) {
	raw, err := c.backend.FromSlice(values, shape)
	if err != nil {
		return nil, errors.Wrap(err, "from slice")
	}
	return c.New(raw, nil, requiresGrad), nil
}

// Randn creates a leaf tensor with elements drawn from the standard normal
// distribution (mean 0, variance 1).
//
// Example:
//
//	w, err := ctx.Randn(Shape{784, 128}, true)
func (c *Context) Randn(shape Shape, requiresGrad bool) (*Tensor, error) {
	raw, err := c.backend.RandNormal(shape, 0, 1)
	if err != nil {
		return nil, errors.Wrap(err, "randn")
	}
	return c.New(raw, nil, requiresGrad), nil
}

// RandUniform creates a leaf tensor with elements drawn uniformly from
// [low, high). Fails if low >= high or either bound is not finite.
//
// Example:
//
//	b, err := ctx.RandUniform(-1, 1, Shape{128}, true)
func (c *Context) RandUniform(low, high float64, shape Shape, requiresGrad bool) (*Tensor, error) {
	raw, err := c.backend.RandUniform(shape, low, high)
	if err != nil {
		return nil, errors.Wrapf(err, "rand uniform [%v, %v)", low, high)
	}
	return c.New(raw, nil, requiresGrad), nil
}

// Full creates a leaf tensor filled with value.
//
// Example:
//
//	t, err := ctx.Full(Shape{3, 3}, 3.14, false)
func (c *Context) Full(shape Shape, value float64, requiresGrad bool) (*Tensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, errors.Wrap(err, "full")
	}
	values := make([]float64, shape.NumElements())
	for i := range values {
		values[i] = value
	}
	raw, err := NewRaw(shape, values)
	if err != nil {
		return nil, errors.Wrap(err, "full")
	}
	return c.New(raw, nil, requiresGrad), nil
}

// Zeros creates a leaf tensor filled with zeros.
func (c *Context) Zeros(shape Shape, requiresGrad bool) (*Tensor, error) {
	return c.Full(shape, 0, requiresGrad)
}

// Ones creates a leaf tensor filled with ones.
func (c *Context) Ones(shape Shape, requiresGrad bool) (*Tensor, error) {
	return c.Full(shape, 1, requiresGrad)
}
