package tensor_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

type binaryFunc func(a, b *tensor.Tensor) (*tensor.Tensor, error)

var elementwiseOps = []struct {
	kind tensor.OpKind
	fn   binaryFunc
}{
	{tensor.OpAdd, (*tensor.Tensor).Add},
	{tensor.OpSub, (*tensor.Tensor).Sub},
	{tensor.OpMul, (*tensor.Tensor).Mul},
	{tensor.OpDiv, (*tensor.Tensor).Div},
}

func TestAdd(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, []float64{1, 2, -2, 1}, tensor.Shape{2, 2}, false)
	b := fromSlice(t, ctx, []float64{2, -5, 1, 6}, tensor.Shape{2, 2}, false)

	c, err := a.Add(b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{3, -3, -1, 7}, c.Values())
	assert.False(t, c.RequiresGrad())
	assert.False(t, c.IsLeaf())
}

func TestElementwiseValues(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, []float64{6, -4, 3}, tensor.Shape{3}, false)
	b := fromSlice(t, ctx, []float64{2, 8, -3}, tensor.Shape{3}, false)

	expected := map[tensor.OpKind][]float64{
		tensor.OpAdd: {8, 4, 0},
		tensor.OpSub: {4, -12, 6},
		tensor.OpMul: {12, -32, -9},
		tensor.OpDiv: {3, -0.5, -1},
	}

	for _, op := range elementwiseOps {
		t.Run(op.kind.String(), func(t *testing.T) {
			c, err := op.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, expected[op.kind], c.Values())
		})
	}
}

func TestElementwiseShapeMismatch(t *testing.T) {
	ctx := newTestContext(t)
	a, err := ctx.Randn(tensor.Shape{7, 2}, false)
	require.NoError(t, err)
	b, err := ctx.Randn(tensor.Shape{2, 7}, false)
	require.NoError(t, err)

	for _, op := range elementwiseOps {
		t.Run(op.kind.String(), func(t *testing.T) {
			issued := ctx.IDs().Issued()

			c, err := op.fn(a, b)
			require.Error(t, err)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, tensor.ErrShapeMismatch))

			var mismatch *tensor.ShapeMismatchError
			require.True(t, errors.As(err, &mismatch))
			assert.Equal(t, op.kind, mismatch.Op)
			assert.Equal(t, tensor.Shape{7, 2}, mismatch.Lhs)
			assert.Equal(t, tensor.Shape{2, 7}, mismatch.Rhs)

			// No result was produced
			assert.Equal(t, issued, ctx.IDs().Issued())
		})
	}
}

func TestElementwiseSameElementCountStillMismatch(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, filled(4, 1), tensor.Shape{4}, false)
	b := fromSlice(t, ctx, filled(4, 1), tensor.Shape{2, 2}, false)

	_, err := a.Add(b)
	assert.ErrorIs(t, err, tensor.ErrShapeMismatch)
}

func TestGradientFlagPropagation(t *testing.T) {
	ctx := newTestContext(t)

	tests := []struct {
		lhs, rhs bool
		expected bool
	}{
		{false, false, false},
		{true, false, true},
		{false, true, true},
		{true, true, true},
	}

	for _, tt := range tests {
		a := fromSlice(t, ctx, []float64{1, 2}, tensor.Shape{1, 2}, tt.lhs)
		b := fromSlice(t, ctx, []float64{3, 4}, tensor.Shape{1, 2}, tt.rhs)
		m := fromSlice(t, ctx, []float64{1, 1}, tensor.Shape{2, 1}, tt.rhs)

		for _, op := range elementwiseOps {
			c, err := op.fn(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.RequiresGrad(), "%s(%v, %v)", op.kind, tt.lhs, tt.rhs)
		}

		c, err := a.MatMul(m)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, c.RequiresGrad(), "MatMul(%v, %v)", tt.lhs, tt.rhs)
	}
}

func TestOperandsUnchanged(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, []float64{1, 2, -2, 1}, tensor.Shape{2, 2}, true)
	b := fromSlice(t, ctx, []float64{2, -5, 1, 6}, tensor.Shape{2, 2}, false)

	for _, op := range elementwiseOps {
		_, err := op.fn(a, b)
		require.NoError(t, err)
	}
	_, err := a.MatMul(b)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2, -2, 1}, a.Values())
	assert.Equal(t, []float64{2, -5, 1, 6}, b.Values())
	assert.True(t, a.RequiresGrad())
	assert.False(t, b.RequiresGrad())
	assert.True(t, a.IsLeaf())
	assert.True(t, b.IsLeaf())
}

func TestBinaryProvenance(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, []float64{1, 2, 3, 4}, tensor.Shape{2, 2}, true)
	b := fromSlice(t, ctx, []float64{4, 3, 2, 1}, tensor.Shape{2, 2}, false)

	c, err := b.Sub(a)
	require.NoError(t, err)

	op, ok := c.Op().(*tensor.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, tensor.OpSub, op.Kind())
	assert.Same(t, b, op.Lhs())
	assert.Same(t, a, op.Rhs())

	operands := op.Operands()
	require.Len(t, operands, 2)
	assert.Same(t, b, operands[0])
	assert.Same(t, a, operands[1])
}

func TestSelfOperand(t *testing.T) {
	ctx := newTestContext(t)
	a := fromSlice(t, ctx, []float64{1, 2, 3}, tensor.Shape{3}, true)

	c, err := a.Mul(a)
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 4, 9}, c.Values())
	op := c.Op().(*tensor.BinaryOp)
	assert.Same(t, op.Lhs(), op.Rhs())
}

func TestMatMul(t *testing.T) {
	ctx := newTestContext(t)

	a := fromSlice(t, ctx, []float64{1, 2, 3, 4, 5, 6}, tensor.Shape{2, 3}, false)
	b := fromSlice(t, ctx, []float64{7, 8, 9, 10, 11, 12}, tensor.Shape{3, 2}, true)

	c, err := a.MatMul(b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2}, c.Shape())
	assert.Equal(t, []float64{58, 64, 139, 154}, c.Values())
	assert.True(t, c.RequiresGrad())
	assert.Equal(t, tensor.OpMatMul, c.Op().Kind())
}

func TestMatMulBatched(t *testing.T) {
	ctx := newTestContext(t)
	a, err := ctx.Ones(tensor.Shape{4, 2, 3}, false)
	require.NoError(t, err)
	b, err := ctx.Full(tensor.Shape{4, 3, 5}, 2, false)
	require.NoError(t, err)

	c, err := a.MatMul(b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{4, 2, 5}, c.Shape())
	for _, v := range c.Values() {
		assert.Equal(t, 6.0, v)
	}
}

func TestMatMulShapeMismatch(t *testing.T) {
	ctx := newTestContext(t)

	tests := []struct {
		name     string
		lhs, rhs tensor.Shape
	}{
		{"InnerDims", tensor.Shape{2, 3}, tensor.Shape{2, 3}},
		{"Rank1", tensor.Shape{3}, tensor.Shape{3}},
		{"RankDiffers", tensor.Shape{2, 2, 3}, tensor.Shape{3, 4}},
		{"BatchDiffers", tensor.Shape{2, 2, 3}, tensor.Shape{3, 3, 4}},
		{"ResultOverflows", tensor.Shape{1 << 40, 0}, tensor.Shape{0, 1 << 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ctx.Zeros(tt.lhs, false)
			require.NoError(t, err)
			b, err := ctx.Zeros(tt.rhs, false)
			require.NoError(t, err)

			_, err = a.MatMul(b)
			var mismatch *tensor.ShapeMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, tensor.OpMatMul, mismatch.Op)
			assert.Equal(t, tt.lhs, mismatch.Lhs)
			assert.Equal(t, tt.rhs, mismatch.Rhs)
		})
	}
}

func TestEmptyOperands(t *testing.T) {
	ctx := newTestContext(t)
	a, err := ctx.Zeros(tensor.Shape{0, 3}, false)
	require.NoError(t, err)
	b, err := ctx.Ones(tensor.Shape{0, 3}, true)
	require.NoError(t, err)

	c, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, c.IsEmpty())
	assert.Equal(t, tensor.Shape{0, 3}, c.Shape())
	assert.True(t, c.RequiresGrad())
}
