package tensor

import (
	"fmt"
	"sort"
)

// Structural and scalar operations. All of them follow the element-wise
// contract: validate arguments, compute through the backend, inherit the
// gradient flag of the single tensor operand and record the operator.

// ============================================================================
// Scalar Operations
// ============================================================================

// MulScalar multiplies each element of the tensor by a scalar value.
//
// Example:
//
//	y := x.MulScalar(2.5)
func (t *Tensor) MulScalar(scalar float64) *Tensor {
	data := t.ctx.backend.MulScalar(t.raw, scalar)
	op := &ScalarOp{kind: OpScalarMul, x: t, scalar: scalar}
	return t.ctx.New(data, op, t.requiresGrad)
}

// Pow raises each element of the tensor to the given exponent.
// Results follow math.Pow (negative bases with fractional exponents give NaN).
//
// Example:
//
//	y := x.Pow(2) // x²
func (t *Tensor) Pow(exponent float64) *Tensor {
	data := t.ctx.backend.Pow(t.raw, exponent)
	op := &ScalarOp{kind: OpPow, x: t, scalar: exponent}
	return t.ctx.New(data, op, t.requiresGrad)
}

// ============================================================================
// Reductions
// ============================================================================

// Sum reduces the tensor by summation over the given axes.
//
// Axes may be negative (-1 = last axis) and must be unique. Without axes the
// tensor is reduced over every axis into a scalar. Reduced axes are removed
// from the result shape.
//
// Example:
//
//	x, _ := ctx.FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3}, false)
//	rows, _ := x.Sum(1)   // [6, 15], shape [2]
//	total, _ := x.Sum()   // 21, shape []
func (t *Tensor) Sum(axes ...int) (*Tensor, error) {
	resolved, err := resolveReduceAxes(OpSum, axes, t.NDim())
	if err != nil {
		return nil, err
	}

	data := t.ctx.backend.Sum(t.raw, resolved)
	op := &DimsOp{kind: OpSum, x: t, dims: resolved}
	return t.ctx.New(data, op, t.requiresGrad), nil
}

// Mean reduces the tensor by averaging over the given axes.
// Axis rules are the same as for Sum. Reducing over an empty axis yields NaN.
func (t *Tensor) Mean(axes ...int) (*Tensor, error) {
	resolved, err := resolveReduceAxes(OpMean, axes, t.NDim())
	if err != nil {
		return nil, err
	}

	data := t.ctx.backend.Mean(t.raw, resolved)
	op := &DimsOp{kind: OpMean, x: t, dims: resolved}
	return t.ctx.New(data, op, t.requiresGrad), nil
}

// resolveReduceAxes normalizes, validates and sorts reduction axes.
func resolveReduceAxes(kind OpKind, axes []int, ndim int) ([]int, error) {
	if len(axes) == 0 {
		all := make([]int, ndim)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}

	seen := make([]bool, ndim)
	resolved := make([]int, 0, len(axes))
	for _, ax := range axes {
		n, ok := normalizeAxis(ax, ndim)
		if !ok {
			return nil, &AxisError{Op: kind, Axis: ax, NDim: ndim, Reason: "out of range"}
		}
		if seen[n] {
			return nil, &AxisError{Op: kind, Axis: ax, NDim: ndim, Reason: "duplicate"}
		}
		seen[n] = true
		resolved = append(resolved, n)
	}
	sort.Ints(resolved)
	return resolved, nil
}

// ============================================================================
// Shape Operations
// ============================================================================

// Transpose permutes the tensor's dimensions.
//
// If axes is empty, all dimensions are reversed (for 2D, the standard
// transpose). Otherwise axes must be a permutation of every dimension;
// negative axes are allowed.
//
// Example:
//
//	x, _ := ctx.Randn(Shape{2, 3, 4}, false)
//	y, _ := x.Transpose(2, 0, 1) // Shape: [4, 2, 3]
func (t *Tensor) Transpose(axes ...int) (*Tensor, error) {
	perm, err := resolvePermutation(axes, t.NDim())
	if err != nil {
		return nil, err
	}

	data := t.ctx.backend.Transpose(t.raw, perm)
	op := &DimsOp{kind: OpTranspose, x: t, dims: perm}
	return t.ctx.New(data, op, t.requiresGrad), nil
}

// resolvePermutation validates a transpose permutation.
func resolvePermutation(axes []int, ndim int) ([]int, error) {
	if len(axes) == 0 {
		perm := make([]int, ndim)
		for i := range perm {
			perm[i] = ndim - 1 - i
		}
		return perm, nil
	}

	if len(axes) != ndim {
		return nil, &AxisError{
			Op:     OpTranspose,
			Axis:   len(axes),
			NDim:   ndim,
			Reason: fmt.Sprintf("permutation has %d axes, want %d", len(axes), ndim),
		}
	}

	seen := make([]bool, ndim)
	perm := make([]int, ndim)
	for i, ax := range axes {
		n, ok := normalizeAxis(ax, ndim)
		if !ok {
			return nil, &AxisError{Op: OpTranspose, Axis: ax, NDim: ndim, Reason: "out of range"}
		}
		if seen[n] {
			return nil, &AxisError{Op: OpTranspose, Axis: ax, NDim: ndim, Reason: "duplicate"}
		}
		seen[n] = true
		perm[i] = n
	}
	return perm, nil
}

// BroadcastTo expands the tensor to the target shape using NumPy rules:
// shapes are aligned from the right and every source dimension must equal
// the target dimension or be 1. Failure returns a *BroadcastError.
//
// Example:
//
//	bias, _ := ctx.FromSlice([]float64{1, 2, 3}, Shape{3}, true)
//	b, _ := bias.BroadcastTo(Shape{4, 3}) // each row is [1, 2, 3]
func (t *Tensor) BroadcastTo(shape Shape) (*Tensor, error) {
	if shape.Validate() != nil || !t.raw.shape.CanBroadcastTo(shape) {
		return nil, &BroadcastError{From: t.Shape(), To: shape.Clone()}
	}

	target := shape.Clone()
	data := t.ctx.backend.Expand(t.raw, target)
	op := &DimsOp{kind: OpBroadcast, x: t, dims: []int(target)}
	return t.ctx.New(data, op, t.requiresGrad), nil
}

// ============================================================================
// Activation Functions
// ============================================================================

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) element-wise.
func (t *Tensor) Sigmoid() *Tensor {
	data := t.ctx.backend.Sigmoid(t.raw)
	return t.ctx.New(data, &UnaryOp{kind: OpSigmoid, x: t}, t.requiresGrad)
}

// ReLU applies max(0, x) element-wise.
func (t *Tensor) ReLU() *Tensor {
	data := t.ctx.backend.ReLU(t.raw)
	return t.ctx.New(data, &UnaryOp{kind: OpReLU, x: t}, t.requiresGrad)
}
