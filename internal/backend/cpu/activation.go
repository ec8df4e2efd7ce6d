package cpu

import (
	"math"

	"github.com/matchbox-ml/matchbox/internal/parallel"
	"github.com/matchbox-ml/matchbox/internal/tensor"
)

// Sigmoid applies σ(x) = 1 / (1 + exp(-x)) element-wise.
func (cpu *CPUBackend) Sigmoid(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("sigmoid", x, func(v float64) float64 {
		return 1 / (1 + math.Exp(-v))
	})
}

// ReLU applies max(0, x) element-wise.
func (cpu *CPUBackend) ReLU(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.unary("relu", x, func(v float64) float64 {
		if v > 0 {
			return v
		}
		return 0
	})
}

// unary maps fn over x into a new tensor of the same shape.
func (cpu *CPUBackend) unary(op string, x *tensor.RawTensor, fn func(float64) float64) *tensor.RawTensor {
	src := tensor.RawData(x)
	dst := make([]float64, len(src))
	parallel.For(len(dst), cpu.par, func(start, end int) {
		for i := start; i < end; i++ {
			dst[i] = fn(src[i])
		}
	})
	return newResult(op, x.Shape(), dst)
}
