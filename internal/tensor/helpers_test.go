package tensor_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matchbox-ml/matchbox/internal/backend/cpu"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Test helpers

func newTestContext(t *testing.T) *tensor.Context {
	t.Helper()
	return tensor.NewContext(cpu.New(cpu.Config{Seed: 42}))
}

func fromSlice(t *testing.T, ctx *tensor.Context, values []float64, shape tensor.Shape, requiresGrad bool) *tensor.Tensor {
	t.Helper()
	x, err := ctx.FromSlice(values, shape, requiresGrad)
	require.NoError(t, err)
	return x
}

func filled(n int, v float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}
