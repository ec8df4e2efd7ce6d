package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New(Config{Seed: 42})
}

// Helper to create a raw tensor from values.
func raw(t *testing.T, shape tensor.Shape, values ...float64) *tensor.RawTensor {
	t.Helper()
	r, err := tensor.NewRaw(shape, values)
	require.NoError(t, err)
	return r
}

func seq(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = float64(i + 1)
	}
	return out
}

func TestCPUBackend_New(t *testing.T) {
	backend := New(Config{})
	require.NotNil(t, backend)
	assert.Equal(t, "CPU", backend.Name())
}

func TestCPUBackend_FromSlice(t *testing.T) {
	backend := newTestBackend()

	src := []float64{1, 2, 3, 4, 5, 6}
	r, err := backend.FromSlice(src, tensor.Shape{2, 3})
	require.NoError(t, err)

	src[0] = 100
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, r.Values())
	assert.Equal(t, tensor.Shape{2, 3}, r.Shape())

	_, err = backend.FromSlice([]float64{1, 2, 3}, tensor.Shape{2, 2})
	assert.Error(t, err)

	_, err = backend.FromSlice(nil, tensor.Shape{-1, 2})
	assert.Error(t, err)

	_, err = backend.FromSlice(nil, tensor.Shape{1 << 62, 4})
	assert.ErrorContains(t, err, "overflows int")

	empty, err := backend.FromSlice(nil, tensor.Shape{0, 3})
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())
}

func TestCPUBackend_Elementwise(t *testing.T) {
	backend := newTestBackend()
	a := raw(t, tensor.Shape{2, 2}, 1, 2, -2, 1)
	b := raw(t, tensor.Shape{2, 2}, 2, -5, 1, 4)

	tests := []struct {
		name     string
		fn       func(a, b *tensor.RawTensor) *tensor.RawTensor
		expected []float64
	}{
		{"Add", backend.Add, []float64{3, -3, -1, 5}},
		{"Sub", backend.Sub, []float64{-1, 7, -3, -3}},
		{"Mul", backend.Mul, []float64{2, -10, -2, 4}},
		{"Div", backend.Div, []float64{0.5, -0.4, -2, 0.25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.fn(a, b)
			assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
			assert.InDeltaSlice(t, tt.expected, result.Values(), 1e-12)
		})
	}

	// Operands are never written to
	assert.Equal(t, []float64{1, 2, -2, 1}, a.Values())
	assert.Equal(t, []float64{2, -5, 1, 4}, b.Values())
}

func TestCPUBackend_DivByZero(t *testing.T) {
	backend := newTestBackend()
	a := raw(t, tensor.Shape{3}, 1, -1, 0)
	b := raw(t, tensor.Shape{3}, 0, 0, 0)

	result := backend.Div(a, b).Values()
	assert.True(t, math.IsInf(result[0], 1))
	assert.True(t, math.IsInf(result[1], -1))
	assert.True(t, math.IsNaN(result[2]))
}

func TestCPUBackend_ElementwisePanicsOnMismatch(t *testing.T) {
	backend := newTestBackend()
	a := raw(t, tensor.Shape{2, 7}, seq(14)...)
	b := raw(t, tensor.Shape{7, 2}, seq(14)...)

	assert.Panics(t, func() { backend.Add(a, b) })
}

func TestCPUBackend_MatMul(t *testing.T) {
	backend := newTestBackend()

	t.Run("2D", func(t *testing.T) {
		// [[1, 2], [3, 4]] @ [[5, 6], [7, 8]] = [[19, 22], [43, 50]]
		a := raw(t, tensor.Shape{2, 2}, 1, 2, 3, 4)
		b := raw(t, tensor.Shape{2, 2}, 5, 6, 7, 8)

		result := backend.MatMul(a, b)
		assert.Equal(t, tensor.Shape{2, 2}, result.Shape())
		assert.Equal(t, []float64{19, 22, 43, 50}, result.Values())
	})

	t.Run("NonSquare", func(t *testing.T) {
		// [2, 3] @ [3, 1]
		a := raw(t, tensor.Shape{2, 3}, 1, 2, 3, 4, 5, 6)
		b := raw(t, tensor.Shape{3, 1}, 1, 0, -1)

		result := backend.MatMul(a, b)
		assert.Equal(t, tensor.Shape{2, 1}, result.Shape())
		assert.Equal(t, []float64{-2, -2}, result.Values())
	})

	t.Run("Batched", func(t *testing.T) {
		// Batch 0 multiplies by identity, batch 1 by 2·identity.
		a := raw(t, tensor.Shape{2, 2, 2}, 1, 2, 3, 4, 1, 2, 3, 4)
		b := raw(t, tensor.Shape{2, 2, 2}, 1, 0, 0, 1, 2, 0, 0, 2)

		result := backend.MatMul(a, b)
		assert.Equal(t, tensor.Shape{2, 2, 2}, result.Shape())
		assert.Equal(t, []float64{1, 2, 3, 4, 2, 4, 6, 8}, result.Values())
	})

	t.Run("ZeroInner", func(t *testing.T) {
		a := raw(t, tensor.Shape{2, 0})
		b := raw(t, tensor.Shape{0, 3})

		result := backend.MatMul(a, b)
		assert.Equal(t, tensor.Shape{2, 3}, result.Shape())
		assert.Equal(t, make([]float64, 6), result.Values())
	})

	t.Run("ZeroOuter", func(t *testing.T) {
		a := raw(t, tensor.Shape{0, 2})
		b := raw(t, tensor.Shape{2, 3}, seq(6)...)

		result := backend.MatMul(a, b)
		assert.Equal(t, tensor.Shape{0, 3}, result.Shape())
		assert.True(t, result.IsEmpty())
	})

	t.Run("Mismatch", func(t *testing.T) {
		a := raw(t, tensor.Shape{2, 3}, seq(6)...)
		assert.Panics(t, func() { backend.MatMul(a, a) })
	})
}

func TestCPUBackend_Scalar(t *testing.T) {
	backend := newTestBackend()
	x := raw(t, tensor.Shape{4}, 1, -2, 3, 0.5)

	assert.Equal(t, []float64{2.5, -5, 7.5, 1.25}, backend.MulScalar(x, 2.5).Values())
	assert.InDeltaSlice(t, []float64{1, 4, 9, 0.25}, backend.Pow(x, 2).Values(), 1e-12)
	assert.Equal(t, []float64{1, 2, 3, 0.5}, backend.Pow(raw(t, tensor.Shape{4}, 1, 4, 9, 0.25), 0.5).Values())
	assert.True(t, math.IsNaN(backend.Pow(raw(t, tensor.Shape{1}, -8), 1.0/3).Values()[0]))
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := newTestBackend()

	t.Run("2D", func(t *testing.T) {
		// [[1, 2, 3], [4, 5, 6]] -> [[1, 4], [2, 5], [3, 6]]
		x := raw(t, tensor.Shape{2, 3}, seq(6)...)

		result := backend.Transpose(x, []int{1, 0})
		assert.Equal(t, tensor.Shape{3, 2}, result.Shape())
		assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, result.Values())
	})

	t.Run("3D", func(t *testing.T) {
		x := raw(t, tensor.Shape{2, 3, 4}, seq(24)...)

		result := backend.Transpose(x, []int{2, 0, 1})
		assert.Equal(t, tensor.Shape{4, 2, 3}, result.Shape())
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				for k := 0; k < 4; k++ {
					assert.Equal(t, x.At(i, j, k), result.At(k, i, j))
				}
			}
		}
	})

	t.Run("InvalidPermutation", func(t *testing.T) {
		x := raw(t, tensor.Shape{2, 3}, seq(6)...)
		assert.Panics(t, func() { backend.Transpose(x, []int{0, 0}) })
		assert.Panics(t, func() { backend.Transpose(x, []int{0}) })
	})
}

func TestCPUBackend_Expand(t *testing.T) {
	backend := newTestBackend()

	tests := []struct {
		name     string
		input    *tensor.RawTensor
		target   tensor.Shape
		expected []float64
	}{
		{
			name:     "RowVector",
			input:    raw(t, tensor.Shape{3}, 1, 2, 3),
			target:   tensor.Shape{2, 3},
			expected: []float64{1, 2, 3, 1, 2, 3},
		},
		{
			name:     "ColumnVector",
			input:    raw(t, tensor.Shape{2, 1}, 1, 2),
			target:   tensor.Shape{2, 3},
			expected: []float64{1, 1, 1, 2, 2, 2},
		},
		{
			name:     "Scalar",
			input:    raw(t, tensor.Shape{}, 7),
			target:   tensor.Shape{2, 2},
			expected: []float64{7, 7, 7, 7},
		},
		{
			name:     "Identity",
			input:    raw(t, tensor.Shape{2}, 1, 2),
			target:   tensor.Shape{2},
			expected: []float64{1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := backend.Expand(tt.input, tt.target)
			assert.Equal(t, tt.target, result.Shape())
			assert.Equal(t, tt.expected, result.Values())
		})
	}

	assert.Panics(t, func() {
		backend.Expand(raw(t, tensor.Shape{2}, 1, 2), tensor.Shape{3, 4})
	})
}

func TestCPUBackend_Activations(t *testing.T) {
	backend := newTestBackend()
	x := raw(t, tensor.Shape{5}, -2, -0.5, 0, 0.5, 2)

	assert.Equal(t, []float64{0, 0, 0, 0.5, 2}, backend.ReLU(x).Values())

	sig := backend.Sigmoid(x).Values()
	assert.InDelta(t, 0.5, sig[2], 1e-12)
	assert.InDelta(t, 0.8807970779778823, sig[4], 1e-12)
	assert.InDelta(t, 1.0, sig[0]+sig[4], 1e-12)
	for _, v := range sig {
		assert.True(t, v > 0 && v < 1)
	}
}

func TestCPUBackend_WorkersAgree(t *testing.T) {
	seq := New(Config{Seed: 3, Workers: 1})
	par := New(Config{Seed: 3, Workers: 4})

	// Large enough to be split into chunks.
	const n = 3 * 4096
	x, err := seq.RandNormal(tensor.Shape{n}, 0, 1)
	require.NoError(t, err)
	y, err := seq.RandUniform(tensor.Shape{n}, 0.5, 2)
	require.NoError(t, err)

	assert.True(t, seq.Add(x, y).Equal(par.Add(x, y)))
	assert.True(t, seq.Div(x, y).Equal(par.Div(x, y)))
	assert.True(t, seq.MulScalar(x, 3).Equal(par.MulScalar(x, 3)))
	assert.True(t, seq.Pow(y, 1.5).Equal(par.Pow(y, 1.5)))
	assert.True(t, seq.Sigmoid(x).Equal(par.Sigmoid(x)))
	assert.True(t, seq.ReLU(x).Equal(par.ReLU(x)))

	a, err := seq.RandNormal(tensor.Shape{8, 3, 5}, 0, 1)
	require.NoError(t, err)
	b, err := seq.RandNormal(tensor.Shape{8, 5, 2}, 0, 1)
	require.NoError(t, err)
	assert.True(t, seq.MatMul(a, b).Equal(par.MatMul(a, b)))
}
