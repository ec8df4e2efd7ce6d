package tensor

// Add performs element-wise addition.
//
// Shapes must be identical; no implicit broadcasting is performed (use
// BroadcastTo first). On mismatch a *ShapeMismatchError is returned and no
// result is produced.
//
// Example:
//
//	a, _ := ctx.FromSlice([]float64{1, 2, -2, 1}, Shape{2, 2}, false)
//	b, _ := ctx.FromSlice([]float64{2, -5, 1, 6}, Shape{2, 2}, false)
//	c, err := a.Add(b) // [3, -3, -1, 7]
func (t *Tensor) Add(other *Tensor) (*Tensor, error) {
	return t.elementwise(OpAdd, other, t.ctx.backend.Add)
}

// Sub performs element-wise subtraction. Shapes must be identical.
func (t *Tensor) Sub(other *Tensor) (*Tensor, error) {
	return t.elementwise(OpSub, other, t.ctx.backend.Sub)
}

// Mul performs element-wise multiplication. Shapes must be identical.
func (t *Tensor) Mul(other *Tensor) (*Tensor, error) {
	return t.elementwise(OpMul, other, t.ctx.backend.Mul)
}

// Div performs element-wise division. Shapes must be identical.
// Division by zero follows IEEE 754 (±Inf or NaN).
func (t *Tensor) Div(other *Tensor) (*Tensor, error) {
	return t.elementwise(OpDiv, other, t.ctx.backend.Div)
}

// elementwise is the shared contract of the four element-wise operators:
// exact shape check, backend kernel, OR of gradient flags, BinaryOp tag.
func (t *Tensor) elementwise(kind OpKind, other *Tensor, kernel func(a, b *RawTensor) *RawTensor) (*Tensor, error) {
	if !t.raw.shape.Equal(other.raw.shape) {
		return nil, &ShapeMismatchError{Op: kind, Lhs: t.Shape(), Rhs: other.Shape()}
	}

	data := kernel(t.raw, other.raw)
	op := &BinaryOp{kind: kind, lhs: t, rhs: other}
	return t.ctx.New(data, op, t.requiresGrad || other.requiresGrad), nil
}

// MatMul performs matrix multiplication over the last two axes.
//
// Requirements:
//   - Both operands have the same rank, at least 2
//   - Leading (batch) dimensions are identical
//   - (…, M, K) @ (…, K, N) → (…, M, N)
//
// Batch dimensions are not broadcast. Any violation, or a result too large
// to address, returns a *ShapeMismatchError.
//
// Example:
//
//	a, _ := ctx.Randn(Shape{3, 4}, false)
//	b, _ := ctx.Randn(Shape{4, 5}, false)
//	c, err := a.MatMul(b) // Shape: [3, 5]
func (t *Tensor) MatMul(other *Tensor) (*Tensor, error) {
	if !matMulCompatible(t.raw.shape, other.raw.shape) {
		return nil, &ShapeMismatchError{Op: OpMatMul, Lhs: t.Shape(), Rhs: other.Shape()}
	}

	data := t.ctx.backend.MatMul(t.raw, other.raw)
	op := &BinaryOp{kind: OpMatMul, lhs: t, rhs: other}
	return t.ctx.New(data, op, t.requiresGrad || other.requiresGrad), nil
}

// matMulCompatible checks the contraction and batch dimensions of a @ b.
func matMulCompatible(a, b Shape) bool {
	n := len(a)
	if n < 2 || len(b) != n {
		return false
	}
	if !a[:n-2].Equal(b[:n-2]) {
		return false
	}
	if a[n-1] != b[n-2] {
		return false
	}
	// The result takes its batch and row dims from a and its columns from b,
	// which can overflow even when both operands are valid.
	out := append(a[:n-1].Clone(), b[n-1])
	return out.Validate() == nil
}
