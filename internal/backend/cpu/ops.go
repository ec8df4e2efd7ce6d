package cpu

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/matchbox-ml/matchbox/internal/parallel"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Add performs element-wise addition of two equally shaped tensors.
func (cpu *CPUBackend) Add(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("add", a, b, floats.AddTo)
}

// Sub performs element-wise subtraction of two equally shaped tensors.
func (cpu *CPUBackend) Sub(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("sub", a, b, floats.SubTo)
}

// Mul performs element-wise multiplication of two equally shaped tensors.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("mul", a, b, floats.MulTo)
}

// Div performs element-wise division of two equally shaped tensors.
func (cpu *CPUBackend) Div(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.elementwise("div", a, b, floats.DivTo)
}

// elementwise allocates the result and applies a gonum kernel of the form
// kernel(dst, s, t), chunk by chunk.
func (cpu *CPUBackend) elementwise(op string, a, b *tensor.RawTensor, kernel func(dst, s, t []float64) []float64) *tensor.RawTensor {
	shape := a.Shape()
	if !shape.Equal(b.Shape()) {
		panic(fmt.Sprintf("%s: shape mismatch %v vs %v", op, shape, b.Shape()))
	}

	src, other := tensor.RawData(a), tensor.RawData(b)
	dst := make([]float64, len(src))
	parallel.For(len(dst), cpu.par, func(start, end int) {
		kernel(dst[start:end], src[start:end], other[start:end])
	})
	return newResult(op, shape, dst)
}
